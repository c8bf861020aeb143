package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/promowatch/promo-tracker/internal/common"
)

const igAppID = "936619743392459"

// Client scrapes public Instagram profile feeds through the web-profile JSON
// endpoint. An authenticated sessionid cookie raises the rate limits but is
// not required for public profiles.
type Client struct {
	cfg common.ScraperConfig
	log *slog.Logger
}

func NewClient(cfg common.ScraperConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.instagram.com"
	}
	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = 12
	}
	return &Client{cfg: cfg, log: logger}
}

func (c *Client) newCollector() *colly.Collector {
	opts := []colly.CollectorOption{
		colly.AllowURLRevisit(),
	}
	if c.cfg.UserAgent != "" {
		opts = append(opts, colly.UserAgent(c.cfg.UserAgent))
	}
	col := colly.NewCollector(opts...)
	if c.cfg.Timeout > 0 {
		col.SetRequestTimeout(c.cfg.Timeout)
	}
	col.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "*/*")
		r.Headers.Set("X-IG-App-ID", igAppID)
		if c.cfg.SessionID != "" {
			r.Headers.Set("Cookie", "sessionid="+c.cfg.SessionID)
		}
	})
	return col
}

// FetchPosts returns the most recent image posts of one profile, newest first,
// capped at MaxPosts. Video posts and video carousel frames are dropped.
func (c *Client) FetchPosts(ctx context.Context, handle string) ([]RawPost, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return nil, common.NewAppError("SCRAPE_ERROR", "empty profile handle", common.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("%s/api/v1/users/web_profile_info/?username=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.QueryEscape(handle))

	var body []byte
	var fetchErr error
	col := c.newCollector()
	col.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	col.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("profile feed %s: status %d: %w", handle, r.StatusCode, err)
	})

	start := time.Now()
	if err := col.Visit(endpoint); err != nil {
		return nil, fmt.Errorf("profile feed %s: %w", handle, err)
	}
	col.Wait()
	if fetchErr != nil {
		return nil, fetchErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts, err := parseProfileFeed(body, handle)
	if err != nil {
		return nil, fmt.Errorf("profile feed %s: %w", handle, err)
	}
	if len(posts) > c.cfg.MaxPosts {
		posts = posts[:c.cfg.MaxPosts]
	}
	c.log.Info("scrape.feed.ok",
		"handle", handle,
		"posts", len(posts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return posts, nil
}

// FetchImage downloads one post image.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	var body []byte
	var fetchErr error
	col := c.newCollector()
	col.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	col.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("image %s: status %d: %w", imageURL, r.StatusCode, err)
	})
	if err := col.Visit(imageURL); err != nil {
		return nil, fmt.Errorf("image %s: %w", imageURL, err)
	}
	col.Wait()
	if fetchErr != nil {
		return nil, fetchErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("image %s: empty body", imageURL)
	}
	return body, nil
}

// feed wire shapes, trimmed to the fields we read
type feedEnvelope struct {
	Data struct {
		User struct {
			TimelineMedia struct {
				Edges []struct {
					Node feedNode `json:"node"`
				} `json:"edges"`
			} `json:"edge_owner_to_timeline_media"`
		} `json:"user"`
	} `json:"data"`
}

type feedNode struct {
	Shortcode  string `json:"shortcode"`
	IsVideo    bool   `json:"is_video"`
	DisplayURL string `json:"display_url"`
	TakenAt    int64  `json:"taken_at_timestamp"`
	Caption    struct {
		Edges []struct {
			Node struct {
				Text string `json:"text"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"edge_media_to_caption"`
	Sidecar struct {
		Edges []struct {
			Node struct {
				IsVideo    bool   `json:"is_video"`
				DisplayURL string `json:"display_url"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"edge_sidecar_to_children"`
}

func parseProfileFeed(body []byte, handle string) ([]RawPost, error) {
	var env feedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	var posts []RawPost
	for _, edge := range env.Data.User.TimelineMedia.Edges {
		n := edge.Node
		if n.Shortcode == "" {
			continue
		}
		var urls []string
		if len(n.Sidecar.Edges) > 0 {
			for _, child := range n.Sidecar.Edges {
				if child.Node.IsVideo || child.Node.DisplayURL == "" {
					continue
				}
				urls = append(urls, child.Node.DisplayURL)
			}
		} else if !n.IsVideo && n.DisplayURL != "" {
			urls = append(urls, n.DisplayURL)
		}
		if len(urls) == 0 {
			continue
		}
		var caption string
		if len(n.Caption.Edges) > 0 {
			caption = n.Caption.Edges[0].Node.Text
		}
		posts = append(posts, RawPost{
			Code:         n.Shortcode,
			MarketHandle: handle,
			Caption:      caption,
			PublishedAt:  time.Unix(n.TakenAt, 0).UTC(),
			ImageURLs:    urls,
		})
	}
	return posts, nil
}
