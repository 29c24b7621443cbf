package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. The cookie carries an opaque
// token; only its SHA-256 hash is stored here.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its sliding window.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
