package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation status values. CONFIRMED and CANCELLED are terminal.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

// ReservationHoldPeriod is how long a pending reservation stays valid.
const ReservationHoldPeriod = 7 * 24 * time.Hour

// ReservationDB represents a reservation row in the database
type ReservationDB struct {
	ReservationID   uuid.UUID `json:"reservation_id" db:"reservation_id"`     // Primary key
	UserID          uuid.UUID `json:"user_id" db:"user_id"`                   // Reserving user
	BookID          uuid.UUID `json:"book_id" db:"book_id"`                   // Reserved book
	ReservationDate time.Time `json:"reservation_date" db:"reservation_date"` // Set at creation
	Status          string    `json:"status" db:"status"`                     // PENDING, CONFIRMED or CANCELLED
	ExpiryDate      time.Time `json:"expiry_date" db:"expiry_date"`           // reservation_date + hold period by default
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// IsExpired reports whether the hold period has elapsed at the given time.
// Expiry is advisory: it is never enforced by a background transition.
func (r *ReservationDB) IsExpired(now time.Time) bool {
	return now.After(r.ExpiryDate)
}
