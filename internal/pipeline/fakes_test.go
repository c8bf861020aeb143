package processor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/repository"
	"github.com/promowatch/promo-tracker/internal/utils"
)

// memDB is a single in-memory store shared by the fake repositories so tests
// can assert on the final row sets.
type memDB struct {
	markets  []*entity.Market
	promos   []*entity.Promotion
	posts    []*entity.Post
	products []*entity.Product

	failPromoCreate error
	failPostCreate  error
}

func newMemDB() *memDB { return &memDB{} }

func (db *memDB) addMarket(handle, name string) *entity.Market {
	m := &entity.Market{ID: uuid.New(), Handle: handle, Name: name}
	db.markets = append(db.markets, m)
	return m
}

type fakeMarketRepo struct{ db *memDB }

func (r *fakeMarketRepo) ListMarkets(context.Context) ([]*entity.Market, error) {
	return r.db.markets, nil
}

func (r *fakeMarketRepo) FindByName(_ context.Context, name string) (*entity.Market, error) {
	for _, m := range r.db.markets {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, common.ErrMarketNotFound
}

func (r *fakeMarketRepo) FindByHandle(_ context.Context, handle string) (*entity.Market, error) {
	for _, m := range r.db.markets {
		if m.Handle == handle {
			return m, nil
		}
	}
	return nil, common.ErrMarketNotFound
}

func (r *fakeMarketRepo) CreateMarket(_ context.Context, handle, name, location string) (*entity.Market, error) {
	m := &entity.Market{ID: uuid.New(), Handle: handle, Name: name, Location: location}
	r.db.markets = append(r.db.markets, m)
	return m, nil
}

type fakePromotionRepo struct{ db *memDB }

func (r *fakePromotionRepo) FindByWindow(_ context.Context, marketID uuid.UUID, start, end time.Time) (*entity.Promotion, error) {
	start, end = utils.Midnight(start), utils.Midnight(end)
	for _, p := range r.db.promos {
		if p.MarketID == marketID && p.StartDate.Equal(start) && p.EndDate.Equal(end) {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakePromotionRepo) Create(_ context.Context, req *repository.CreatePromotionRequest) (*entity.Promotion, error) {
	if r.db.failPromoCreate != nil {
		return nil, r.db.failPromoCreate
	}
	p := &entity.Promotion{
		ID:        uuid.New(),
		MarketID:  req.MarketID,
		Title:     req.Title,
		StartDate: utils.Midnight(req.StartDate),
		EndDate:   utils.Midnight(req.EndDate),
	}
	r.db.promos = append(r.db.promos, p)
	return p, nil
}

func (r *fakePromotionRepo) ListActive(_ context.Context, day time.Time) ([]*entity.Promotion, error) {
	d := utils.Midnight(day)
	var out []*entity.Promotion
	for _, p := range r.db.promos {
		if !p.StartDate.After(d) && !p.EndDate.Before(d) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePromotionRepo) ListByMarket(_ context.Context, marketID uuid.UUID, from, to *time.Time) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, p := range r.db.promos {
		if p.MarketID != marketID {
			continue
		}
		if from != nil && p.EndDate.Before(utils.Midnight(*from)) {
			continue
		}
		if to != nil && p.StartDate.After(utils.Midnight(*to)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakePostRepo struct{ db *memDB }

func (r *fakePostRepo) FindByCode(_ context.Context, code string) (*entity.Post, error) {
	for _, p := range r.db.posts {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakePostRepo) Create(_ context.Context, req *repository.CreatePostRequest) (*entity.Post, error) {
	if r.db.failPostCreate != nil {
		return nil, r.db.failPostCreate
	}
	for _, p := range r.db.posts {
		if p.Code == req.Code {
			return nil, errors.New("unique constraint: post code")
		}
	}
	p := &entity.Post{
		ID:          uuid.New(),
		PromotionID: req.PromotionID,
		Code:        req.Code,
		Caption:     req.Caption,
		OCRText:     req.OCRText,
		PublishedAt: req.PublishedAt,
		ExtractedAt: req.ExtractedAt,
	}
	r.db.posts = append(r.db.posts, p)
	return p, nil
}

func (r *fakePostRepo) ListByPromotion(_ context.Context, promotionID uuid.UUID) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range r.db.posts {
		if p.PromotionID == promotionID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ db *memDB }

func (r *fakeProductRepo) Create(_ context.Context, req *repository.CreateProductRequest) (*entity.Product, error) {
	p := &entity.Product{
		ID:          uuid.New(),
		PostID:      req.PostID,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	r.db.products = append(r.db.products, p)
	return p, nil
}

func (r *fakeProductRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.db.products {
		if p.PostID == postID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newPersistStage(db *memDB) *PersistStage {
	return NewPersistStage(
		&fakeMarketRepo{db: db},
		&fakePromotionRepo{db: db},
		&fakePostRepo{db: db},
		&fakeProductRepo{db: db},
		nil,
	)
}
