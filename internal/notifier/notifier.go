// Package notifier sends the daily digest of active promotions by mail.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/repository"
)

// Mailer is the delivery boundary. The provided implementation speaks SMTP;
// tests substitute a recorder.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

type Service struct {
	Markets    repository.MarketRepository
	Promotions repository.PromotionRepository
	Posts      repository.PostRepository
	Products   repository.ProductRepository
	Mailer     Mailer
	Logger     *slog.Logger
}

func NewService(
	markets repository.MarketRepository,
	promotions repository.PromotionRepository,
	posts repository.PostRepository,
	products repository.ProductRepository,
	mailer Mailer,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Markets:    markets,
		Promotions: promotions,
		Posts:      posts,
		Products:   products,
		Mailer:     mailer,
		Logger:     logger,
	}
}

type digestProduct struct {
	Description string
	Price       string
	Category    string
}

type digestPromotion struct {
	Title    string
	Window   string
	Products []digestProduct
}

type digestMarket struct {
	Name       string
	Promotions []digestPromotion
}

type digestData struct {
	Day     string
	Markets []digestMarket
}

var digestTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif">
<h2>Promoções ativas em {{.Day}}</h2>
{{if not .Markets}}<p>Nenhuma promoção ativa hoje.</p>{{end}}
{{range .Markets}}
<h3>{{.Name}}</h3>
{{range .Promotions}}
<p><strong>{{if .Title}}{{.Title}}{{else}}Promoção{{end}}</strong> ({{.Window}})</p>
<ul>
{{range .Products}}<li>{{.Description}} — {{.Price}} <em>{{.Category}}</em></li>
{{end}}</ul>
{{end}}
{{end}}
</body>
</html>
`))

// SendDigest mails the promotions whose validity window contains day. A day
// with no active promotions still sends, so a silent scraper failure upstream
// is visible to the recipient.
func (s *Service) SendDigest(ctx context.Context, day time.Time) error {
	data, total, err := s.buildDigest(ctx, day)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	subject := fmt.Sprintf("Promoções do dia %s", data.Day)
	if err := s.Mailer.Send(ctx, subject, buf.String()); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	s.Logger.Info("notify.digest.sent", "day", data.Day, "promotions", total)
	return nil
}

func (s *Service) buildDigest(ctx context.Context, day time.Time) (digestData, int, error) {
	data := digestData{Day: day.Format("02/01/2006")}

	markets, err := s.Markets.ListMarkets(ctx)
	if err != nil {
		return data, 0, fmt.Errorf("list markets: %w", err)
	}

	total := 0
	for _, m := range markets {
		promos, err := s.Promotions.ListByMarket(ctx, m.ID, &day, &day)
		if err != nil {
			return data, 0, fmt.Errorf("list promotions for %s: %w", m.Handle, err)
		}
		if len(promos) == 0 {
			continue
		}
		dm := digestMarket{Name: m.Name}
		for _, p := range promos {
			dp, err := s.buildPromotion(ctx, p)
			if err != nil {
				return data, 0, err
			}
			dm.Promotions = append(dm.Promotions, dp)
			total++
		}
		data.Markets = append(data.Markets, dm)
	}
	return data, total, nil
}

func (s *Service) buildPromotion(ctx context.Context, p *entity.Promotion) (digestPromotion, error) {
	dp := digestPromotion{
		Title: p.Title,
		Window: fmt.Sprintf("%s a %s",
			p.StartDate.Format("02/01/2006"), p.EndDate.Format("02/01/2006")),
	}
	posts, err := s.Posts.ListByPromotion(ctx, p.ID)
	if err != nil {
		return dp, fmt.Errorf("list posts: %w", err)
	}
	for _, post := range posts {
		products, err := s.Products.ListByPost(ctx, post.ID)
		if err != nil {
			return dp, fmt.Errorf("list products: %w", err)
		}
		for _, prod := range products {
			dp.Products = append(dp.Products, digestProduct{
				Description: prod.Description,
				Price:       fmt.Sprintf("R$ %.2f", prod.Price),
				Category:    prod.Category,
			})
		}
	}
	return dp, nil
}
