package scraper

import (
	"context"
	"time"
)

// RawPost is one feed item as scraped, before OCR or classification.
// Videos are excluded at the source; ImageURLs carries every still frame of
// the post (carousel posts have several).
type RawPost struct {
	Code         string
	MarketHandle string
	Caption      string
	PublishedAt  time.Time
	ImageURLs    []string
}

// Scraper fetches the recent posts of one market profile.
type Scraper interface {
	FetchPosts(ctx context.Context, handle string) ([]RawPost, error)
}

// ImageFetcher downloads a post image for OCR.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}
