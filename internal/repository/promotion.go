package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promowatch/promo-tracker/gen/ent"
	"github.com/promowatch/promo-tracker/gen/ent/promotion"
	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/utils"
)

// CreatePromotionRequest wraps parameters for creating a promotion row.
type CreatePromotionRequest struct {
	MarketID  uuid.UUID
	Title     string
	StartDate time.Time
	EndDate   time.Time
}

type PromotionRepository interface {
	// FindByWindow looks up the unique promotion for the natural key
	// (market, startDate, endDate). Returns common.ErrNotFound when absent.
	FindByWindow(ctx context.Context, marketID uuid.UUID, startDate, endDate time.Time) (*entity.Promotion, error)
	Create(ctx context.Context, req *CreatePromotionRequest) (*entity.Promotion, error)
	// ListActive returns promotions whose inclusive validity window contains day.
	ListActive(ctx context.Context, day time.Time) ([]*entity.Promotion, error)
	ListByMarket(ctx context.Context, marketID uuid.UUID, from, to *time.Time) ([]*entity.Promotion, error)
}

type promotionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPromotionRepository(client *ent.Client, logger *slog.Logger) PromotionRepository {
	return &promotionRepository{
		client: client,
		logger: logger,
	}
}

func (r *promotionRepository) FindByWindow(ctx context.Context, marketID uuid.UUID, startDate, endDate time.Time) (*entity.Promotion, error) {
	p, err := r.client.Promotion.Query().
		Where(
			promotion.MarketID(marketID),
			promotion.StartDate(utils.Midnight(startDate)),
			promotion.EndDate(utils.Midnight(endDate)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToPromotion(p), nil
}

func (r *promotionRepository) Create(ctx context.Context, req *CreatePromotionRequest) (*entity.Promotion, error) {
	builder := r.client.Promotion.Create().
		SetMarketID(req.MarketID).
		SetStartDate(utils.Midnight(req.StartDate)).
		SetEndDate(utils.Midnight(req.EndDate))
	if req.Title != "" {
		builder = builder.SetTitle(req.Title)
	}
	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create promotion",
			"market_id", req.MarketID,
			"start_date", req.StartDate,
			"end_date", req.EndDate,
			"error", err)
		return nil, err
	}
	return utils.ToPromotion(p), nil
}

func (r *promotionRepository) ListActive(ctx context.Context, day time.Time) ([]*entity.Promotion, error) {
	d := utils.Midnight(day)
	promos, err := r.client.Promotion.Query().
		Where(
			promotion.StartDateLTE(d),
			promotion.EndDateGTE(d),
		).
		Order(promotion.ByStartDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list active promotions", "day", d, "error", err)
		return nil, err
	}

	result := make([]*entity.Promotion, len(promos))
	for i, p := range promos {
		result[i] = utils.ToPromotion(p)
	}
	return result, nil
}

func (r *promotionRepository) ListByMarket(ctx context.Context, marketID uuid.UUID, from, to *time.Time) ([]*entity.Promotion, error) {
	q := r.client.Promotion.Query().Where(promotion.MarketID(marketID))
	if from != nil {
		q = q.Where(promotion.EndDateGTE(utils.Midnight(*from)))
	}
	if to != nil {
		q = q.Where(promotion.StartDateLTE(utils.Midnight(*to)))
	}
	promos, err := q.Order(promotion.ByStartDate()).All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Promotion, len(promos))
	for i, p := range promos {
		result[i] = utils.ToPromotion(p)
	}
	return result, nil
}
