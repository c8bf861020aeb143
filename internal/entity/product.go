package entity

import (
	"github.com/google/uuid"
)

// Product represents a persisted product for data transfer between layers.
type Product struct {
	ID          uuid.UUID `json:"id"`
	PostID      uuid.UUID `json:"post_id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
}
