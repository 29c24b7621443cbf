package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a client of the firm. Phone is stored normalized
// (10 raw digits); formatting happens at the response boundary.
// Version guards concurrent updates.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	LawyerID  uuid.UUID `json:"lawyerId"`
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// OpenMattersCount is computed per request, never stored.
	OpenMattersCount int `json:"openMattersCount"`
}
