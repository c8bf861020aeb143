package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/promowatch/promo-tracker/constants"
	"github.com/promowatch/promo-tracker/internal/promos"
	"github.com/promowatch/promo-tracker/internal/utils"
)

// flexString accepts the model emitting either a JSON string or a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type productDoc struct {
	Description string     `json:"description"`
	Price       flexString `json:"price"`
	Category    string     `json:"category"`
}

type postDoc struct {
	PostCode string       `json:"post_code"`
	Products []productDoc `json:"products"`
}

type promotionDoc struct {
	MarketName string    `json:"market_name"`
	Title      string    `json:"title"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Posts      []postDoc `json:"posts"`
}

// StripCodeFences removes Markdown code-fence markers around a model response.
// Models regularly wrap JSON in ```json ... ``` despite being told not to.
func StripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.Index(t, "\n"); i >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		t = t[i+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

// ParseCandidates turns raw model output into candidate promotions.
// The response must be a JSON array after fence stripping; anything else is an
// error — the caller treats it as "zero promotions for this market".
// Per-element degradation is silent-but-logged: malformed dates fall back to
// the target date, unknown categories fall back to Other, and posts whose
// code does not match any delimiter from the aggregation are dropped.
func ParseCandidates(raw []byte, req ExtractRequest, logger *slog.Logger) ([]promos.CandidatePromotion, error) {
	if logger == nil {
		logger = slog.Default()
	}

	content := StripCodeFences(string(raw))
	var docs []promotionDoc
	if err := json.Unmarshal([]byte(content), &docs); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}

	source := make(map[string]SourcePost, len(req.Posts))
	for _, p := range req.Posts {
		source[p.Code] = p
	}

	target := utils.Midnight(req.TargetDate)
	out := make([]promos.CandidatePromotion, 0, len(docs))
	for _, doc := range docs {
		start, end := resolveWindow(doc.StartDate, doc.EndDate, target, logger)

		marketName := doc.MarketName
		if marketName == "" {
			marketName = req.MarketName
		}

		cand := promos.CandidatePromotion{
			MarketName: marketName,
			Title:      doc.Title,
			StartDate:  start,
			EndDate:    end,
		}
		for _, pd := range doc.Posts {
			src, ok := source[pd.PostCode]
			if !ok {
				logger.Warn("llm.parse.unknown_post_code",
					"market", req.MarketHandle, "post_code", pd.PostCode)
				continue
			}
			cp := promos.CandidatePost{
				Code:        src.Code,
				Caption:     src.Caption,
				Text:        src.Text,
				PublishedAt: src.PublishedAt,
			}
			for _, prod := range pd.Products {
				if strings.TrimSpace(prod.Description) == "" {
					continue
				}
				cat, known := constants.Canonicalize(prod.Category)
				if !known && prod.Category != "" {
					logger.Warn("llm.parse.unknown_category",
						"market", req.MarketHandle, "category", prod.Category)
				}
				cp.Products = append(cp.Products, promos.CandidateProduct{
					Description: strings.TrimSpace(prod.Description),
					Price:       strings.TrimSpace(string(prod.Price)),
					Category:    cat,
				})
			}
			cand.Posts = append(cand.Posts, cp)
		}
		out = append(out, cand)
	}
	return out, nil
}

// resolveWindow applies the documented date fallbacks: absent dates default to
// the target date with a one-day duration; malformed dates fail closed to the
// target date with zero duration.
func resolveWindow(startStr, endStr string, target time.Time, logger *slog.Logger) (time.Time, time.Time) {
	start := target
	startMalformed := false
	if s := strings.TrimSpace(startStr); s != "" {
		if d, err := utils.ParseBRDate(s); err == nil {
			start = d
		} else {
			startMalformed = true
			logger.Warn("llm.parse.bad_start_date", "value", s)
		}
	}

	end := start.AddDate(0, 0, 1)
	if startMalformed {
		end = start
	}
	if s := strings.TrimSpace(endStr); s != "" {
		if d, err := utils.ParseBRDate(s); err == nil {
			end = d
		} else {
			end = start
			logger.Warn("llm.parse.bad_end_date", "value", s)
		}
	}
	if end.Before(start) {
		end = start
	}
	return start, end
}
