package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`         // Primary key
	Username     string    `json:"username" db:"username"`       // Unique username
	Email        string    `json:"email" db:"email"`             // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`         // Hashed credential, never serialized
	Role         string    `json:"role" db:"role"`               // USER or ADMIN
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// IsAdmin reports whether the user holds the admin role.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor identifies the authenticated caller of a lifecycle operation.
// It is supplied by the auth middleware, never constructed by handlers.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
