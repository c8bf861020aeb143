package entity

import (
	"time"

	"github.com/google/uuid"
)

// Market represents a supermarket account for data transfer between layers.
type Market struct {
	ID        uuid.UUID `json:"id"`
	Handle    string    `json:"handle"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
