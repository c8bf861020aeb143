package scraper

import (
	"testing"
	"time"
)

const sampleFeed = `{
  "data": {
    "user": {
      "edge_owner_to_timeline_media": {
        "edges": [
          {
            "node": {
              "shortcode": "Cx1abc",
              "is_video": false,
              "display_url": "https://cdn.example/p1.jpg",
              "taken_at_timestamp": 1737000000,
              "edge_media_to_caption": {
                "edges": [{"node": {"text": "Ofertas da semana!"}}]
              }
            }
          },
          {
            "node": {
              "shortcode": "Cx2vid",
              "is_video": true,
              "display_url": "https://cdn.example/v1.jpg",
              "taken_at_timestamp": 1737000100
            }
          },
          {
            "node": {
              "shortcode": "Cx3car",
              "is_video": false,
              "display_url": "https://cdn.example/cover.jpg",
              "taken_at_timestamp": 1737000200,
              "edge_sidecar_to_children": {
                "edges": [
                  {"node": {"is_video": false, "display_url": "https://cdn.example/c1.jpg"}},
                  {"node": {"is_video": true, "display_url": "https://cdn.example/c2.mp4"}},
                  {"node": {"is_video": false, "display_url": "https://cdn.example/c3.jpg"}}
                ]
              }
            }
          }
        ]
      }
    }
  }
}`

func TestParseProfileFeed(t *testing.T) {
	posts, err := parseProfileFeed([]byte(sampleFeed), "mercadobom")
	if err != nil {
		t.Fatalf("parseProfileFeed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("posts = %d, want 2 (video excluded)", len(posts))
	}

	p := posts[0]
	if p.Code != "Cx1abc" || p.MarketHandle != "mercadobom" {
		t.Errorf("post 0 = %+v", p)
	}
	if p.Caption != "Ofertas da semana!" {
		t.Errorf("caption = %q", p.Caption)
	}
	if got := p.PublishedAt; !got.Equal(time.Unix(1737000000, 0)) {
		t.Errorf("published_at = %v", got)
	}
	if len(p.ImageURLs) != 1 || p.ImageURLs[0] != "https://cdn.example/p1.jpg" {
		t.Errorf("image urls = %v", p.ImageURLs)
	}

	car := posts[1]
	if car.Code != "Cx3car" {
		t.Fatalf("post 1 = %+v", car)
	}
	if len(car.ImageURLs) != 2 {
		t.Errorf("carousel urls = %v, want video frame dropped", car.ImageURLs)
	}
}

func TestParseProfileFeedBadJSON(t *testing.T) {
	if _, err := parseProfileFeed([]byte("<html>login</html>"), "x"); err == nil {
		t.Fatal("expected decode error")
	}
}
