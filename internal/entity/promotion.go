package entity

import (
	"time"

	"github.com/google/uuid"
)

// Promotion represents a persisted promotion for data transfer between layers.
// StartDate and EndDate are inclusive calendar dates (midnight UTC).
type Promotion struct {
	ID        uuid.UUID `json:"id"`
	MarketID  uuid.UUID `json:"market_id"`
	Title     string    `json:"title,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
