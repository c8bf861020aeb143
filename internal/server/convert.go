package server

import (
	"time"

	promospb "github.com/promowatch/promo-tracker/gen/proto/promos/v1"
	"github.com/promowatch/promo-tracker/internal/entity"
)

func toPBMarket(m *entity.Market) *promospb.Market {
	return &promospb.Market{
		Id:        m.ID.String(),
		Handle:    m.Handle,
		Name:      m.Name,
		Location:  m.Location,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBPromotion(p *entity.Promotion) *promospb.Promotion {
	return &promospb.Promotion{
		Id:        p.ID.String(),
		MarketId:  p.MarketID.String(),
		Title:     p.Title,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
