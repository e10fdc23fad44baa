package models

import (
	"time"

	"github.com/google/uuid"
)

// BookDB represents a catalog book row in the database
type BookDB struct {
	BookID          uuid.UUID  `json:"book_id" db:"book_id"`                             // Primary key
	Title           string     `json:"title" db:"title"`                                 // Book title
	Author          string     `json:"author" db:"author"`                               // Book author
	ISBN            *string    `json:"isbn,omitempty" db:"isbn"`                         // Optional unique ISBN
	Publisher       *string    `json:"publisher,omitempty" db:"publisher"`               // Optional publisher
	PublicationDate *time.Time `json:"publication_date,omitempty" db:"publication_date"` // Optional publication date
	TotalCopies     int        `json:"total_copies" db:"total_copies"`                   // Copies owned by the library
	AvailableCopies int        `json:"available_copies" db:"available_copies"`           // Copies not currently on loan
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`                       // Creation timestamp
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`                       // Last update timestamp
}

// IsAvailable reports whether at least one copy can be lent out.
func (b *BookDB) IsAvailable() bool {
	return b.AvailableCopies > 0
}
