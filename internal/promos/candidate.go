// Package promos holds the unpersisted candidate model produced by the
// structured extractor and the merge step that runs before persistence.
package promos

import (
	"time"

	"github.com/promowatch/promo-tracker/constants"
)

// CandidateProduct is one advertised product line. Price stays a string until
// the persister converts it; conversion failures persist as zero.
type CandidateProduct struct {
	Description string
	Price       string
	Category    constants.Category
}

// CandidatePost is one social-media post inside a candidate promotion,
// re-associated with its original code and OCR text.
type CandidatePost struct {
	Code        string
	Caption     string
	Text        string
	PublishedAt time.Time
	Products    []CandidateProduct
}

// CandidatePromotion is an extractor-produced promotion pending merge and
// persistence. Dates are inclusive calendar dates at midnight UTC.
type CandidatePromotion struct {
	MarketName string
	Title      string
	StartDate  time.Time
	EndDate    time.Time
	Posts      []CandidatePost
}
