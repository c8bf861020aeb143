package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/aggregator"
	"github.com/promowatch/promo-tracker/internal/llm"
	"github.com/promowatch/promo-tracker/internal/promos"
)

type ExtractStage struct {
	Extractor llm.PromotionExtractor
	Logger    *slog.Logger
}

func NewExtractStage(ex llm.PromotionExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Extractor: ex, Logger: logger}
}

// Run sends one market's aggregated catalog text to the extractor and returns
// the candidate promotions. The call is not retried; the caller records the
// error and moves on to the next market.
func (e *ExtractStage) Run(ctx context.Context, block aggregator.MarketBlock, target time.Time) ([]promos.CandidatePromotion, llm.Usage, error) {
	srcPosts := make([]llm.SourcePost, len(block.Posts))
	for i, p := range block.Posts {
		srcPosts[i] = llm.SourcePost{
			Code:        p.Code,
			Caption:     p.Caption,
			Text:        p.Text,
			PublishedAt: p.PublishedAt,
		}
	}

	res, err := e.Extractor.ExtractPromotions(ctx, llm.ExtractRequest{
		MarketName:        block.MarketName,
		MarketHandle:      block.MarketHandle,
		AggregatedText:    block.Text,
		Posts:             srcPosts,
		TargetDate:        target,
		AllowedCategories: constants.AsStringSlice(),
	})
	if err != nil {
		return nil, res.Usage, fmt.Errorf("extract %s: %w", block.MarketHandle, err)
	}

	e.Logger.Info("extract.market.done",
		"handle", block.MarketHandle,
		"candidates", len(res.Candidates),
		"prompt_tokens", res.Usage.PromptTokens,
		"completion_tokens", res.Usage.CompletionTokens,
	)
	return res.Candidates, res.Usage, nil
}
