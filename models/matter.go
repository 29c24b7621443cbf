package models

import (
	"time"

	"github.com/google/uuid"
)

// MatterStatus is the lifecycle state of a matter.
type MatterStatus string

const (
	MatterOpen   MatterStatus = "Open"
	MatterClosed MatterStatus = "Closed"
	MatterOnHold MatterStatus = "OnHold"
)

// Valid reports whether s is one of the known statuses.
func (s MatterStatus) Valid() bool {
	switch s {
	case MatterOpen, MatterClosed, MatterOnHold:
		return true
	}
	return false
}

// Matter represents a legal case or engagement belonging to a customer.
// CloseDate is non-nil iff Status == MatterClosed; the matter service
// maintains that invariant on every transition.
type Matter struct {
	ID          uuid.UUID    `json:"id"`
	CustomerID  uuid.UUID    `json:"customerId"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	OpenDate    time.Time    `json:"openDate"`
	CloseDate   *time.Time   `json:"closeDate,omitempty"`
	Status      MatterStatus `json:"status"`
	Version     int64        `json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
