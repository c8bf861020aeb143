package processor

import (
	"context"
	"testing"
	"time"

	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/scraper"
)

// A caption full of promotional language over a non-catalog photo must not
// make the post a catalog: only the text recognized from the images counts.
func TestScrapeStageClassifiesImageTextOnly(t *testing.T) {
	sc := &fakeScraper{feeds: map[string][]scraper.RawPost{
		"mercadobom": {
			{
				Code: "Cx9sff", MarketHandle: "mercadobom",
				Caption:     "Promoção oferta desconto imperdível, corre pra loja!",
				PublishedAt: day(2025, time.January, 14),
				ImageURLs:   []string{"https://cdn.example/staff.jpg"},
			},
			{
				Code: "Cx1abc", MarketHandle: "mercadobom",
				Caption:     "", // bare post, catalog art speaks for itself
				PublishedAt: day(2025, time.January, 14),
				ImageURLs:   []string{"https://cdn.example/p1.jpg"},
			},
		},
	}}
	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://cdn.example/staff.jpg": []byte("img-staff"),
		"https://cdn.example/p1.jpg":    []byte("img-cat"),
	}}
	ocrx := &fakeOCR{texts: map[string]string{
		"img-staff": "nossa equipe reunida na inauguração",
		"img-cat":   "OFERTA ARROZ 5KG R$ 22,90",
	}}

	stage := NewScrapeStage(sc, fetcher, ocrx, nil)
	market := &entity.Market{Handle: "mercadobom", Name: "Mercado Bom Preço"}

	kept, stats, err := stage.Run(context.Background(), market)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Catalogs != 1 || stats.NonCatalogs != 1 {
		t.Fatalf("stats = %+v, want 1 catalog / 1 non-catalog", stats)
	}
	if len(kept) != 1 || kept[0].Code != "Cx1abc" {
		t.Fatalf("kept = %+v, want only Cx1abc", kept)
	}
	// the caption still rides along on the kept post for aggregation
	if kept[0].Caption != "" {
		t.Errorf("caption = %q", kept[0].Caption)
	}
}
