package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a persisted social-media post for data transfer between layers.
type Post struct {
	ID          uuid.UUID `json:"id"`
	PromotionID uuid.UUID `json:"promotion_id"`
	Code        string    `json:"code"`
	Caption     string    `json:"caption,omitempty"`
	OCRText     string    `json:"ocr_text,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	ExtractedAt time.Time `json:"extracted_at"`
}
