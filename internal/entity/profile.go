package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a profile for data transfer between layers.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
