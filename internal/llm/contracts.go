package llm

import (
	"context"
	"time"

	"github.com/promowatch/promo-tracker/internal/promos"
)

// SourcePost carries the original post data so parsed promotions can be
// re-associated by post code after a single combined prompt.
type SourcePost struct {
	Code        string
	Caption     string
	Text        string
	PublishedAt time.Time
}

// ExtractRequest is one market's aggregated extraction unit.
type ExtractRequest struct {
	MarketName        string
	MarketHandle      string
	AggregatedText    string
	Posts             []SourcePost
	TargetDate        time.Time // default start date when the catalog shows none
	AllowedCategories []string
}

// Usage is optional token accounting reported by the backend.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// ExtractResult is the parsed outcome plus the raw model output for auditing.
type ExtractResult struct {
	Candidates []promos.CandidatePromotion
	Raw        []byte
	Usage      Usage
}

// PromotionExtractor is the language-model boundary the pipeline depends on.
type PromotionExtractor interface {
	ExtractPromotions(ctx context.Context, req ExtractRequest) (ExtractResult, error)
}
