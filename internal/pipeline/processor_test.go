package processor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/llm"
	"github.com/promowatch/promo-tracker/internal/ocr"
	"github.com/promowatch/promo-tracker/internal/promos"
	"github.com/promowatch/promo-tracker/internal/scraper"
)

type fakeScraper struct {
	feeds map[string][]scraper.RawPost
	err   error
}

func (f *fakeScraper) FetchPosts(_ context.Context, handle string) ([]scraper.RawPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.feeds[handle], nil
}

type fakeFetcher struct {
	images map[string][]byte
}

func (f *fakeFetcher) FetchImage(_ context.Context, url string) ([]byte, error) {
	data, ok := f.images[url]
	if !ok {
		return nil, errors.New("404")
	}
	return data, nil
}

type fakeOCR struct {
	texts map[string]string // keyed by image bytes
}

func (f *fakeOCR) ExtractBytes(_ context.Context, data []byte, _ string) (ocr.ExtractionResult, error) {
	return ocr.ExtractionResult{Text: f.texts[string(data)], Method: "image-ocr"}, nil
}

type fakeExtractor struct {
	byHandle map[string][]promos.CandidatePromotion
	errFor   string
	requests []llm.ExtractRequest
}

func (f *fakeExtractor) ExtractPromotions(_ context.Context, req llm.ExtractRequest) (llm.ExtractResult, error) {
	f.requests = append(f.requests, req)
	if req.MarketHandle == f.errFor {
		return llm.ExtractResult{}, errors.New("model returned prose")
	}
	return llm.ExtractResult{
		Candidates: f.byHandle[req.MarketHandle],
		Usage:      llm.Usage{PromptTokens: 100, CompletionTokens: 50},
	}, nil
}

type fakeNotifier struct {
	sent []time.Time
	err  error
}

func (f *fakeNotifier) SendDigest(_ context.Context, dayArg time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, dayArg)
	return nil
}

func TestProcessorFullRun(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")
	db.addMarket("superofertas", "Super Ofertas")

	sc := &fakeScraper{feeds: map[string][]scraper.RawPost{
		"mercadobom": {
			{
				Code: "Cx1abc", MarketHandle: "mercadobom",
				Caption:     "Ofertas válidas até domingo!",
				PublishedAt: day(2025, time.January, 14),
				ImageURLs:   []string{"https://cdn.example/p1.jpg"},
			},
			{
				Code: "Cx2cat", MarketHandle: "mercadobom",
				Caption:     "Nosso gatinho da loja",
				PublishedAt: day(2025, time.January, 14),
				ImageURLs:   []string{"https://cdn.example/cat.jpg"},
			},
		},
		"superofertas": {},
	}}
	fetcher := &fakeFetcher{images: map[string][]byte{
		"https://cdn.example/p1.jpg":  []byte("img1"),
		"https://cdn.example/cat.jpg": []byte("img2"),
	}}
	ocrx := &fakeOCR{texts: map[string]string{
		"img1": "OFERTA ARROZ 5KG R$ 22,90 PROMOÇÃO",
		"img2": "miau",
	}}
	ex := &fakeExtractor{byHandle: map[string][]promos.CandidatePromotion{
		"mercadobom": {sampleCandidate()},
	}}
	notif := &fakeNotifier{}

	p := NewProcessor(
		&fakeMarketRepo{db: db},
		NewScrapeStage(sc, fetcher, ocrx, nil),
		NewExtractStage(ex, nil),
		newPersistStage(db),
		notif,
		nil,
	)

	report, err := p.Run(context.Background(), RunOptions{TargetDate: day(2025, time.January, 15)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.Success {
		t.Fatalf("report not successful: %+v", report)
	}
	if len(report.Errors) != 0 {
		t.Fatalf("errors: %v", report.Errors)
	}
	if report.Markets != 2 || report.PostsFetched != 2 || report.CatalogPosts != 1 {
		t.Errorf("scrape counts = %+v", report)
	}
	if report.Candidates != 1 || report.Merged != 1 {
		t.Errorf("extract counts = %+v", report)
	}
	if report.PromotionsCreated != 1 || report.PostsCreated != 2 || report.ProductsCreated != 3 {
		t.Errorf("persist counts = %+v", report)
	}
	if report.PromptTokens != 100 || report.CompletionTokens != 50 {
		t.Errorf("usage = %d/%d", report.PromptTokens, report.CompletionTokens)
	}
	if !report.NotifySent || len(notif.sent) != 1 {
		t.Errorf("digest not sent: %+v", report)
	}

	// only the catalog post reaches the extractor, with the delimiter in place
	if len(ex.requests) != 1 {
		t.Fatalf("extract requests = %d (empty feed must be skipped)", len(ex.requests))
	}
	req := ex.requests[0]
	if req.MarketHandle != "mercadobom" || len(req.Posts) != 1 || req.Posts[0].Code != "Cx1abc" {
		t.Errorf("extract request = %+v", req)
	}
	if !strings.Contains(req.AggregatedText, "### POST Cx1abc") {
		t.Errorf("aggregated text missing delimiter: %q", req.AggregatedText)
	}
	if !req.TargetDate.Equal(day(2025, time.January, 15)) {
		t.Errorf("target date = %v", req.TargetDate)
	}

	// identical second run creates nothing new
	rerun, err := p.Run(context.Background(), RunOptions{TargetDate: day(2025, time.January, 15)})
	if err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if rerun.PromotionsCreated != 0 || rerun.PostsCreated != 0 || rerun.ProductsCreated != 0 {
		t.Fatalf("rerun created rows: %+v", rerun)
	}
	if rerun.PromotionsReused != 1 || rerun.PostsSkipped != 2 {
		t.Fatalf("rerun = %+v, want reuse 1 / skip 2", rerun)
	}
	if len(db.promos) != 1 || len(db.posts) != 2 || len(db.products) != 3 {
		t.Fatalf("rows after rerun = %d/%d/%d", len(db.promos), len(db.posts), len(db.products))
	}
}

func TestProcessorExtractErrorIsNonFatal(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")

	sc := &fakeScraper{feeds: map[string][]scraper.RawPost{
		"mercadobom": {{
			Code: "Cx1abc", MarketHandle: "mercadobom",
			Caption:     "Oferta promoção desconto",
			PublishedAt: day(2025, time.January, 14),
			ImageURLs:   []string{"https://cdn.example/p1.jpg"},
		}},
	}}
	fetcher := &fakeFetcher{images: map[string][]byte{"https://cdn.example/p1.jpg": []byte("img1")}}
	ocrx := &fakeOCR{texts: map[string]string{"img1": "OFERTA ARROZ R$ 9,99"}}
	ex := &fakeExtractor{errFor: "mercadobom"}

	p := NewProcessor(
		&fakeMarketRepo{db: db},
		NewScrapeStage(sc, fetcher, ocrx, nil),
		NewExtractStage(ex, nil),
		newPersistStage(db),
		nil,
		nil,
	)

	report, err := p.Run(context.Background(), RunOptions{TargetDate: day(2025, time.January, 15)})
	if err != nil {
		t.Fatalf("Run must not fail on extract errors: %v", err)
	}
	if len(report.Errors) != 1 || report.Errors[0].Stage != constants.StageExtract {
		t.Fatalf("errors = %v", report.Errors)
	}
	if report.Success {
		t.Error("nothing progressed, success must be false")
	}
	if len(db.promos) != 0 {
		t.Errorf("rows persisted despite extract failure: %d", len(db.promos))
	}
}

func TestProcessorScrapeFailureSkipsMarket(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")

	sc := &fakeScraper{err: errors.New("rate limited")}
	p := NewProcessor(
		&fakeMarketRepo{db: db},
		NewScrapeStage(sc, &fakeFetcher{}, &fakeOCR{}, nil),
		NewExtractStage(&fakeExtractor{}, nil),
		newPersistStage(db),
		nil,
		nil,
	)

	report, err := p.Run(context.Background(), RunOptions{TargetDate: day(2025, time.January, 15)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Errors) != 1 || report.Errors[0].Stage != constants.StageScrape {
		t.Fatalf("errors = %v", report.Errors)
	}
}

func TestProcessorNotifyFailureRecorded(t *testing.T) {
	db := newMemDB()
	db.addMarket("mercadobom", "Mercado Bom Preço")

	sc := &fakeScraper{feeds: map[string][]scraper.RawPost{"mercadobom": nil}}
	notif := &fakeNotifier{err: errors.New("smtp: connection refused")}
	p := NewProcessor(
		&fakeMarketRepo{db: db},
		NewScrapeStage(sc, &fakeFetcher{}, &fakeOCR{}, nil),
		NewExtractStage(&fakeExtractor{}, nil),
		newPersistStage(db),
		notif,
		nil,
	)

	report, err := p.Run(context.Background(), RunOptions{TargetDate: day(2025, time.January, 15)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.NotifySent {
		t.Error("NotifySent must be false")
	}
	if len(report.Errors) != 1 || report.Errors[0].Stage != constants.StageNotify {
		t.Fatalf("errors = %v", report.Errors)
	}

	// SkipNotify suppresses the boundary entirely
	report, _ = p.Run(context.Background(), RunOptions{TargetDate: day(2025, time.January, 15), SkipNotify: true})
	if len(report.Errors) != 0 {
		t.Fatalf("skip-notify run errors = %v", report.Errors)
	}
}
