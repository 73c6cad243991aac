package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a fused contact for data transfer between layers.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Name      *string   `json:"name,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	JobTitle  *string   `json:"job_title,omitempty"`
	Website   *string   `json:"website,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
