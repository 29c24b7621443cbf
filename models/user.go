package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what a user may do. Every user holds exactly one role.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleLawyer Role = "Lawyer"
)

// User represents a lawyer or admin account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	FirmName     string    `json:"firmName"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
