package server

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promowatch/promo-tracker/internal/entity"
)

func TestToPBPromotionFormatsDates(t *testing.T) {
	id := uuid.New()
	marketID := uuid.New()
	p := &entity.Promotion{
		ID:        id,
		MarketID:  marketID,
		Title:     "Ofertas da semana",
		StartDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC),
	}

	pb := toPBPromotion(p)
	if pb.Id != id.String() || pb.MarketId != marketID.String() {
		t.Errorf("ids = %q / %q", pb.Id, pb.MarketId)
	}
	if pb.StartDate != "2025-01-15" || pb.EndDate != "2025-01-20" {
		t.Errorf("window = %q..%q", pb.StartDate, pb.EndDate)
	}
	if pb.CreatedAt != "2025-01-15T09:30:00Z" {
		t.Errorf("created_at = %q", pb.CreatedAt)
	}
}

func TestToPBMarket(t *testing.T) {
	m := &entity.Market{
		ID:        uuid.New(),
		Handle:    "mercadobom",
		Name:      "Mercado Bom Preço",
		Location:  "Fortaleza",
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
	}

	pb := toPBMarket(m)
	if pb.Handle != "mercadobom" || pb.Name != "Mercado Bom Preço" || pb.Location != "Fortaleza" {
		t.Errorf("fields = %q / %q / %q", pb.Handle, pb.Name, pb.Location)
	}
	if pb.CreatedAt != "2025-01-01T12:00:00Z" || pb.UpdatedAt != "2025-01-02T12:00:00Z" {
		t.Errorf("timestamps = %q / %q", pb.CreatedAt, pb.UpdatedAt)
	}
}
