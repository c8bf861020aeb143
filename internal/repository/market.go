package repository

import (
	"context"
	"log/slog"

	"github.com/promowatch/promo-tracker/gen/ent"
	"github.com/promowatch/promo-tracker/gen/ent/market"
	"github.com/promowatch/promo-tracker/internal/common"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/utils"
)

type MarketRepository interface {
	ListMarkets(ctx context.Context) ([]*entity.Market, error)
	FindByName(ctx context.Context, name string) (*entity.Market, error)
	FindByHandle(ctx context.Context, handle string) (*entity.Market, error)
	CreateMarket(ctx context.Context, handle, name, location string) (*entity.Market, error)
}

type marketRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMarketRepository(client *ent.Client, logger *slog.Logger) MarketRepository {
	return &marketRepository{
		client: client,
		logger: logger,
	}
}

func (r *marketRepository) ListMarkets(ctx context.Context) ([]*entity.Market, error) {
	markets, err := r.client.Market.
		Query().
		Order(market.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Market, len(markets))
	for i, m := range markets {
		result[i] = utils.ToMarket(m)
	}
	return result, nil
}

func (r *marketRepository) FindByName(ctx context.Context, name string) (*entity.Market, error) {
	m, err := r.client.Market.Query().
		Where(market.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrMarketNotFound
		}
		return nil, err
	}
	return utils.ToMarket(m), nil
}

func (r *marketRepository) FindByHandle(ctx context.Context, handle string) (*entity.Market, error) {
	m, err := r.client.Market.Query().
		Where(market.Handle(handle)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrMarketNotFound
		}
		return nil, err
	}
	return utils.ToMarket(m), nil
}

func (r *marketRepository) CreateMarket(ctx context.Context, handle, name, location string) (*entity.Market, error) {
	builder := r.client.Market.Create().
		SetHandle(handle).
		SetName(name)
	if location != "" {
		builder = builder.SetLocation(location)
	}
	m, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create market", "handle", handle, "error", err)
		return nil, err
	}
	return utils.ToMarket(m), nil
}
