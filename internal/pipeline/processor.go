package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/aggregator"
	"github.com/promowatch/promo-tracker/internal/promos"
	"github.com/promowatch/promo-tracker/internal/repository"
)

// Notifier delivers the daily digest after a run. The processor treats it as
// a boundary: delivery failure is recorded, never fatal.
type Notifier interface {
	SendDigest(ctx context.Context, day time.Time) error
}

// StageError is one non-fatal error recorded during a run.
type StageError struct {
	Stage   constants.Stage
	Subject string
	Err     string
}

func (e StageError) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Stage, e.Subject, e.Err)
}

type RunOptions struct {
	TargetDate time.Time
	SkipNotify bool
}

// RunReport summarizes a full pipeline run.
type RunReport struct {
	TargetDate time.Time
	Duration   time.Duration

	Markets      int
	PostsFetched int
	ImagesOCRed  int
	CatalogPosts int
	Candidates   int
	Merged       int

	PromotionsCreated int
	PromotionsReused  int
	PostsCreated      int
	PostsSkipped      int
	ProductsCreated   int

	PromptTokens     int
	CompletionTokens int

	NotifySent bool
	Errors     []StageError

	// Success is true when the run had no errors, or when at least one item
	// still made it through the persist stage.
	Success bool
}

// Processor runs the whole ingestion sequence for one target date.
type Processor struct {
	Markets  repository.MarketRepository
	Scrape   *ScrapeStage
	Extract  *ExtractStage
	Persist  *PersistStage
	Notifier Notifier
	Logger   *slog.Logger
}

func NewProcessor(
	markets repository.MarketRepository,
	scrape *ScrapeStage,
	extract *ExtractStage,
	persist *PersistStage,
	notifier Notifier,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Markets:  markets,
		Scrape:   scrape,
		Extract:  extract,
		Persist:  persist,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Run executes scrape, OCR, classification, extraction, merge, persist and
// notification for every registered market. Stages run sequentially; a
// failure inside one market or candidate is recorded and the run continues.
// Only an unreachable store fails the run outright.
func (p *Processor) Run(ctx context.Context, opts RunOptions) (RunReport, error) {
	start := time.Now()
	target := opts.TargetDate
	if target.IsZero() {
		target = time.Now().UTC()
	}
	report := RunReport{TargetDate: target}

	p.Logger.Info("run.start", "target_date", target.Format("2006-01-02"))

	markets, err := p.Markets.ListMarkets(ctx)
	if err != nil {
		return report, fmt.Errorf("list markets: %w", err)
	}
	report.Markets = len(markets)

	// scrape + ocr + classify, one market at a time
	var catalogPosts []aggregator.CatalogPost
	for _, m := range markets {
		posts, stats, err := p.Scrape.Run(ctx, m)
		report.PostsFetched += stats.PostsFetched
		report.ImagesOCRed += stats.ImagesOCRed
		report.Errors = append(report.Errors, stats.Errors...)
		if err != nil {
			report.Errors = append(report.Errors, StageError{
				Stage:   constants.StageScrape,
				Subject: m.Handle,
				Err:     err.Error(),
			})
			continue
		}
		catalogPosts = append(catalogPosts, posts...)
	}
	report.CatalogPosts = len(catalogPosts)

	// aggregate + extract per market
	var candidates []promos.CandidatePromotion
	for _, block := range aggregator.GroupByMarket(catalogPosts) {
		cands, usage, err := p.Extract.Run(ctx, block, target)
		report.PromptTokens += usage.PromptTokens
		report.CompletionTokens += usage.CompletionTokens
		if err != nil {
			report.Errors = append(report.Errors, StageError{
				Stage:   constants.StageExtract,
				Subject: block.MarketHandle,
				Err:     err.Error(),
			})
			continue
		}
		candidates = append(candidates, cands...)
	}
	report.Candidates = len(candidates)

	merged := promos.MergeByPeriod(candidates)
	report.Merged = len(merged)

	res := p.Persist.Run(ctx, merged)
	report.PromotionsCreated = res.PromotionsCreated
	report.PromotionsReused = res.PromotionsReused
	report.PostsCreated = res.PostsCreated
	report.PostsSkipped = res.PostsSkipped
	report.ProductsCreated = res.ProductsCreated
	report.Errors = append(report.Errors, res.Errors...)

	if p.Notifier != nil && !opts.SkipNotify {
		if err := p.Notifier.SendDigest(ctx, target); err != nil {
			report.Errors = append(report.Errors, StageError{
				Stage:   constants.StageNotify,
				Subject: target.Format("2006-01-02"),
				Err:     err.Error(),
			})
		} else {
			report.NotifySent = true
		}
	}

	progressed := res.PromotionsCreated + res.PromotionsReused + res.PostsCreated + res.PostsSkipped + res.ProductsCreated
	report.Success = len(report.Errors) == 0 || progressed > 0
	report.Duration = time.Since(start)

	p.Logger.Info("run.done",
		"target_date", target.Format("2006-01-02"),
		"markets", report.Markets,
		"catalog_posts", report.CatalogPosts,
		"candidates", report.Candidates,
		"merged", report.Merged,
		"promotions_created", report.PromotionsCreated,
		"posts_created", report.PostsCreated,
		"products_created", report.ProductsCreated,
		"errors", len(report.Errors),
		"success", report.Success,
		"elapsed_ms", report.Duration.Milliseconds(),
	)
	return report, nil
}
