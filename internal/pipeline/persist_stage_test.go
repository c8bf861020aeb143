package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/promos"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleCandidate() promos.CandidatePromotion {
	return promos.CandidatePromotion{
		MarketName: "Mercado Bom Preço",
		Title:      "Ofertas da Semana",
		StartDate:  day(2025, time.January, 15),
		EndDate:    day(2025, time.January, 20),
		Posts: []promos.CandidatePost{
			{
				Code:        "Cx1abc",
				Caption:     "Confira!",
				Text:        "ARROZ 5KG R$ 22,90",
				PublishedAt: day(2025, time.January, 14),
				Products: []promos.CandidateProduct{
					{Description: "Arroz 5kg", Price: "R$ 22,90", Category: constants.Grocery},
					{Description: "Feijão 1kg", Price: "R$ 1.234,56", Category: constants.Grocery},
				},
			},
			{
				Code:        "Cx2def",
				Caption:     "",
				Text:        "CARNE BOVINA",
				PublishedAt: day(2025, time.January, 15),
				Products: []promos.CandidateProduct{
					{Description: "Picanha kg", Price: "imperdível", Category: constants.Meat},
				},
			},
		},
	}
}

func TestPersistCreatesFullGraph(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")
	stage := newPersistStage(db)

	res := stage.Run(context.Background(), []promos.CandidatePromotion{sampleCandidate()})

	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	if res.PromotionsCreated != 1 || res.PostsCreated != 2 || res.ProductsCreated != 3 {
		t.Fatalf("counts = %+v", res)
	}
	if res.PromotionsReused != 0 || res.PostsSkipped != 0 {
		t.Fatalf("unexpected reuse on first run: %+v", res)
	}

	if len(db.promos) != 1 {
		t.Fatalf("promotions rows = %d", len(db.promos))
	}
	promo := db.promos[0]
	if !promo.StartDate.Equal(day(2025, time.January, 15)) || !promo.EndDate.Equal(day(2025, time.January, 20)) {
		t.Errorf("window = %v..%v", promo.StartDate, promo.EndDate)
	}
	if promo.Title != "Ofertas da Semana" {
		t.Errorf("title = %q", promo.Title)
	}

	prices := map[string]float64{}
	for _, p := range db.products {
		prices[p.Description] = p.Price
	}
	if prices["Arroz 5kg"] != 22.90 {
		t.Errorf("Arroz price = %v", prices["Arroz 5kg"])
	}
	if prices["Feijão 1kg"] != 1234.56 {
		t.Errorf("Feijão price = %v", prices["Feijão 1kg"])
	}
	// unparsable price persists as zero rather than dropping the product
	if got, ok := prices["Picanha kg"]; !ok || got != 0 {
		t.Errorf("Picanha price = %v (present=%v)", got, ok)
	}
}

func TestPersistRerunCreatesNothing(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")
	stage := newPersistStage(db)

	first := stage.Run(context.Background(), []promos.CandidatePromotion{sampleCandidate()})
	if len(first.Errors) != 0 {
		t.Fatalf("first run errors: %v", first.Errors)
	}

	second := stage.Run(context.Background(), []promos.CandidatePromotion{sampleCandidate()})
	if len(second.Errors) != 0 {
		t.Fatalf("second run errors: %v", second.Errors)
	}
	if second.PromotionsCreated != 0 || second.PostsCreated != 0 || second.ProductsCreated != 0 {
		t.Fatalf("second run created rows: %+v", second)
	}
	if second.PromotionsReused != 1 || second.PostsSkipped != 2 {
		t.Fatalf("second run = %+v, want reuse 1 / skip 2", second)
	}

	if len(db.promos) != 1 || len(db.posts) != 2 || len(db.products) != 3 {
		t.Fatalf("rows after rerun = %d/%d/%d", len(db.promos), len(db.posts), len(db.products))
	}
}

func TestPersistDistinctWindowsAreSeparateRows(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")
	stage := newPersistStage(db)

	a := sampleCandidate()
	b := sampleCandidate()
	b.EndDate = day(2025, time.January, 21)
	b.Posts = []promos.CandidatePost{{Code: "Cx9zzz", Text: "x", PublishedAt: day(2025, time.January, 16)}}

	res := stage.Run(context.Background(), []promos.CandidatePromotion{a, b})
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	if res.PromotionsCreated != 2 {
		t.Fatalf("promotions created = %d, want 2 (different end dates)", res.PromotionsCreated)
	}
}

func TestPersistUnknownMarketIsolatesCandidate(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")
	stage := newPersistStage(db)

	ghost := sampleCandidate()
	ghost.MarketName = "Mercado Fantasma"
	ghost.Posts = []promos.CandidatePost{{Code: "Cx8ghz", Text: "x", PublishedAt: day(2025, time.January, 16)}}

	res := stage.Run(context.Background(), []promos.CandidatePromotion{ghost, sampleCandidate()})

	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", res.Errors)
	}
	if res.Errors[0].Stage != constants.StagePersist {
		t.Errorf("error stage = %v", res.Errors[0].Stage)
	}
	if res.PromotionsCreated != 1 || res.PostsCreated != 2 {
		t.Fatalf("known-market candidate not persisted: %+v", res)
	}
	if len(db.posts) != 2 {
		t.Fatalf("ghost market rows leaked: %d posts", len(db.posts))
	}
}

func TestPersistPromotionCreateFailureIsolated(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")
	stage := newPersistStage(db)

	// pre-create the first candidate so its window is found, then break create
	ok := stage.Run(context.Background(), []promos.CandidatePromotion{sampleCandidate()})
	if len(ok.Errors) != 0 {
		t.Fatalf("setup errors: %v", ok.Errors)
	}
	db.failPromoCreate = errors.New("connection reset")

	fresh := sampleCandidate()
	fresh.EndDate = day(2025, time.January, 25)
	res := stage.Run(context.Background(), []promos.CandidatePromotion{fresh, sampleCandidate()})

	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want one for the failed create", res.Errors)
	}
	if res.PromotionsReused != 1 || res.PostsSkipped != 2 {
		t.Fatalf("surviving candidate not processed: %+v", res)
	}
}
