// Package aggregator groups classified catalog posts by market and joins
// their text into one extraction unit per market. Pure grouping — no semantic
// transformation happens here.
package aggregator

import (
	"fmt"
	"strings"
	"time"
)

// PostDelimiter prefixes each post's sub-block inside an aggregated text so
// the extractor can attribute products back to the originating post.
const PostDelimiter = "### POST"

// CatalogPost is one classified post ready for aggregation.
type CatalogPost struct {
	Code         string
	MarketHandle string
	MarketName   string
	Caption      string
	Text         string // combined per-image OCR text
	PublishedAt  time.Time
}

// MarketBlock is one market's combined extraction unit.
type MarketBlock struct {
	MarketHandle string
	MarketName   string
	Posts        []CatalogPost
	Text         string
}

// GroupByMarket builds one text block per market, post order preserved as
// classified (insertion order, not re-sorted). Each sub-block is delimited
// with the post code so attribution survives a single combined prompt.
func GroupByMarket(posts []CatalogPost) []MarketBlock {
	order := make([]string, 0, len(posts))
	byMarket := make(map[string][]CatalogPost)
	for _, p := range posts {
		if _, seen := byMarket[p.MarketHandle]; !seen {
			order = append(order, p.MarketHandle)
		}
		byMarket[p.MarketHandle] = append(byMarket[p.MarketHandle], p)
	}

	blocks := make([]MarketBlock, 0, len(order))
	for _, handle := range order {
		group := byMarket[handle]
		var b strings.Builder
		for i, p := range group {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "%s %s\n", PostDelimiter, p.Code)
			b.WriteString(p.Text)
		}
		blocks = append(blocks, MarketBlock{
			MarketHandle: handle,
			MarketName:   group[0].MarketName,
			Posts:        group,
			Text:         b.String(),
		})
	}
	return blocks
}
