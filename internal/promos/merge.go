package promos

import (
	"github.com/promowatch/promo-tracker/internal/utils"
)

// MergeByPeriod collapses candidate promotions that share the same market and
// validity window into one candidate with the post lists concatenated. The
// grouping key is the pair of ISO-normalized date strings, so equality is
// exact-string equality, not interval overlap: two windows that overlap but
// are not identical stay separate promotions. Post codes are NOT deduplicated
// here; the persister resolves duplicates at its own boundary.
//
// Merging an already-merged list is a no-op, so re-running the merger is safe.
func MergeByPeriod(candidates []CandidatePromotion) []CandidatePromotion {
	type key struct {
		market string
		start  string
		end    string
	}

	order := make([]key, 0, len(candidates))
	grouped := make(map[key]*CandidatePromotion)

	for _, c := range candidates {
		k := key{
			market: c.MarketName,
			start:  utils.ISODate(c.StartDate),
			end:    utils.ISODate(c.EndDate),
		}
		if existing, ok := grouped[k]; ok {
			existing.Posts = append(existing.Posts, c.Posts...)
			if existing.Title == "" {
				existing.Title = c.Title
			}
			continue
		}
		merged := c
		merged.Posts = append([]CandidatePost(nil), c.Posts...)
		grouped[k] = &merged
		order = append(order, k)
	}

	out := make([]CandidatePromotion, 0, len(order))
	for _, k := range order {
		out = append(out, *grouped[k])
	}
	return out
}
