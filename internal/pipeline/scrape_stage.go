package processor

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/aggregator"
	"github.com/promowatch/promo-tracker/internal/classifier"
	"github.com/promowatch/promo-tracker/internal/entity"
	"github.com/promowatch/promo-tracker/internal/ocr"
	"github.com/promowatch/promo-tracker/internal/scraper"
)

// TextExtractor is the OCR seam the scrape stage needs; *ocr.Extractor
// satisfies it.
type TextExtractor interface {
	ExtractBytes(ctx context.Context, data []byte, ext string) (ocr.ExtractionResult, error)
}

type ScrapeStage struct {
	Scraper scraper.Scraper
	Images  scraper.ImageFetcher
	OCR     TextExtractor
	Logger  *slog.Logger
}

func NewScrapeStage(sc scraper.Scraper, img scraper.ImageFetcher, ocrx TextExtractor, logger *slog.Logger) *ScrapeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScrapeStage{Scraper: sc, Images: img, OCR: ocrx, Logger: logger}
}

// ScrapeStats summarizes one market's pass through scrape, OCR and
// classification.
type ScrapeStats struct {
	PostsFetched int
	ImagesOCRed  int
	Catalogs     int
	NonCatalogs  int
	Errors       []StageError
}

// Run fetches a market's feed, OCRs every image of every post, and keeps the
// posts classified as promotional catalogs. Per-image OCR failures degrade to
// whatever text the other images produced; a feed fetch failure fails the
// whole market.
func (s *ScrapeStage) Run(ctx context.Context, market *entity.Market) ([]aggregator.CatalogPost, ScrapeStats, error) {
	var stats ScrapeStats

	raw, err := s.Scraper.FetchPosts(ctx, market.Handle)
	if err != nil {
		return nil, stats, fmt.Errorf("fetch posts for %s: %w", market.Handle, err)
	}
	stats.PostsFetched = len(raw)

	var kept []aggregator.CatalogPost
	for _, post := range raw {
		text, n, errs := s.ocrPost(ctx, post)
		stats.ImagesOCRed += n
		stats.Errors = append(stats.Errors, errs...)

		// classification looks at the recognized image text only; captions
		// routinely carry promotional language over non-catalog photos
		if !classifier.IsCatalog(text) {
			stats.NonCatalogs++
			s.Logger.Debug("scrape.post.not_catalog", "code", post.Code, "handle", market.Handle)
			continue
		}
		stats.Catalogs++
		kept = append(kept, aggregator.CatalogPost{
			Code:         post.Code,
			MarketHandle: market.Handle,
			MarketName:   market.Name,
			Caption:      post.Caption,
			Text:         text,
			PublishedAt:  post.PublishedAt,
		})
	}

	s.Logger.Info("scrape.market.done",
		"handle", market.Handle,
		"fetched", stats.PostsFetched,
		"catalogs", stats.Catalogs,
		"ocr_errors", len(stats.Errors),
	)
	return kept, stats, nil
}

func (s *ScrapeStage) ocrPost(ctx context.Context, post scraper.RawPost) (string, int, []StageError) {
	var parts []string
	var errs []StageError
	done := 0
	for _, u := range post.ImageURLs {
		ext := imageExt(u)
		if !constants.IsImageExt(ext) {
			continue
		}
		data, err := s.Images.FetchImage(ctx, u)
		if err != nil {
			errs = append(errs, StageError{Stage: constants.StageOCR, Subject: post.Code, Err: err.Error()})
			continue
		}
		res, err := s.OCR.ExtractBytes(ctx, data, ext)
		if err != nil {
			errs = append(errs, StageError{Stage: constants.StageOCR, Subject: post.Code, Err: err.Error()})
			continue
		}
		done++
		if res.Text != "" {
			parts = append(parts, res.Text)
		}
	}
	return strings.Join(parts, "\n"), done, errs
}

func imageExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return constants.NormalizeExt(path.Ext(rawURL))
	}
	ext := constants.NormalizeExt(path.Ext(u.Path))
	if ext == "" {
		// CDN urls often carry no extension; tesseract sniffs the format anyway
		ext = "jpg"
	}
	return ext
}
