package notifier

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/repository"
)

type recordingMailer struct {
	subjects []string
	bodies   []string
}

func (m *recordingMailer) Send(_ context.Context, subject, htmlBody string) error {
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, htmlBody)
	return nil
}

type stubMarkets struct{ rows []*entity.Market }

func (s *stubMarkets) ListMarkets(context.Context) ([]*entity.Market, error) { return s.rows, nil }
func (s *stubMarkets) FindByName(context.Context, string) (*entity.Market, error) {
	return nil, common.ErrMarketNotFound
}
func (s *stubMarkets) FindByHandle(context.Context, string) (*entity.Market, error) {
	return nil, common.ErrMarketNotFound
}
func (s *stubMarkets) CreateMarket(context.Context, string, string, string) (*entity.Market, error) {
	return nil, common.ErrInternal
}

type stubPromotions struct{ byMarket map[uuid.UUID][]*entity.Promotion }

func (s *stubPromotions) FindByWindow(context.Context, uuid.UUID, time.Time, time.Time) (*entity.Promotion, error) {
	return nil, common.ErrNotFound
}
func (s *stubPromotions) Create(context.Context, *repository.CreatePromotionRequest) (*entity.Promotion, error) {
	return nil, common.ErrInternal
}
func (s *stubPromotions) ListActive(context.Context, time.Time) ([]*entity.Promotion, error) {
	return nil, nil
}
func (s *stubPromotions) ListByMarket(_ context.Context, id uuid.UUID, _, _ *time.Time) ([]*entity.Promotion, error) {
	return s.byMarket[id], nil
}

type stubPosts struct{ byPromo map[uuid.UUID][]*entity.Post }

func (s *stubPosts) FindByCode(context.Context, string) (*entity.Post, error) {
	return nil, common.ErrNotFound
}
func (s *stubPosts) Create(context.Context, *repository.CreatePostRequest) (*entity.Post, error) {
	return nil, common.ErrInternal
}
func (s *stubPosts) ListByPromotion(_ context.Context, id uuid.UUID) ([]*entity.Post, error) {
	return s.byPromo[id], nil
}

type stubProducts struct{ byPost map[uuid.UUID][]*entity.Product }

func (s *stubProducts) Create(context.Context, *repository.CreateProductRequest) (*entity.Product, error) {
	return nil, common.ErrInternal
}
func (s *stubProducts) ListByPost(_ context.Context, id uuid.UUID) ([]*entity.Product, error) {
	return s.byPost[id], nil
}

func TestSendDigestRendersActivePromotions(t *testing.T) {
	marketID, promoID, postID := uuid.New(), uuid.New(), uuid.New()
	day := time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)

	svc := NewService(
		&stubMarkets{rows: []*entity.Market{{ID: marketID, Handle: "mercadobom", Name: "Mercado Bom Preço"}}},
		&stubPromotions{byMarket: map[uuid.UUID][]*entity.Promotion{
			marketID: {{
				ID:        promoID,
				MarketID:  marketID,
				Title:     "Ofertas da Semana",
				StartDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			}},
		}},
		&stubPosts{byPromo: map[uuid.UUID][]*entity.Post{
			promoID: {{ID: postID, PromotionID: promoID, Code: "Cx1abc"}},
		}},
		&stubProducts{byPost: map[uuid.UUID][]*entity.Product{
			postID: {{ID: uuid.New(), PostID: postID, Description: "Arroz 5kg", Price: 22.9, Category: "Grocery"}},
		}},
		&recordingMailer{},
		nil,
	)
	mailer := svc.Mailer.(*recordingMailer)

	if err := svc.SendDigest(context.Background(), day); err != nil {
		t.Fatalf("SendDigest: %v", err)
	}
	if len(mailer.bodies) != 1 {
		t.Fatalf("sent %d mails", len(mailer.bodies))
	}
	if !strings.Contains(mailer.subjects[0], "16/01/2025") {
		t.Errorf("subject = %q", mailer.subjects[0])
	}
	body := mailer.bodies[0]
	for _, want := range []string{"Mercado Bom Preço", "Ofertas da Semana", "15/01/2025 a 20/01/2025", "Arroz 5kg", "R$ 22.90"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSendDigestEmptyDayStillSends(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(
		&stubMarkets{},
		&stubPromotions{},
		&stubPosts{},
		&stubProducts{},
		mailer,
		nil,
	)
	if err := svc.SendDigest(context.Background(), time.Now()); err != nil {
		t.Fatalf("SendDigest: %v", err)
	}
	if len(mailer.bodies) != 1 || !strings.Contains(mailer.bodies[0], "Nenhuma promoção ativa") {
		t.Fatalf("empty digest not sent: %v", mailer.bodies)
	}
}
