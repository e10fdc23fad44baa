package models

import (
	"time"

	"github.com/google/uuid"
)

// Loan status values. RETURNED is terminal; OVERDUE is derived from the
// due date and an overdue loan can still be returned.
const (
	LoanActive   = "ACTIVE"
	LoanReturned = "RETURNED"
	LoanOverdue  = "OVERDUE"
)

// LoanPeriod is the default borrowing window.
const LoanPeriod = 14 * 24 * time.Hour

// LoanDB represents a loan row in the database
type LoanDB struct {
	LoanID     uuid.UUID  `json:"loan_id" db:"loan_id"`                   // Primary key
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`                   // Borrowing user
	BookID     uuid.UUID  `json:"book_id" db:"book_id"`                   // Borrowed book
	LoanDate   time.Time  `json:"loan_date" db:"loan_date"`               // Set at creation
	DueDate    time.Time  `json:"due_date" db:"due_date"`                 // loan_date + loan period by default
	ReturnDate *time.Time `json:"return_date,omitempty" db:"return_date"` // Set on return
	Status     string     `json:"status" db:"status"`                     // ACTIVE, RETURNED or OVERDUE
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// IsOverdue reports whether the loan is outstanding past its due date.
func (l *LoanDB) IsOverdue(now time.Time) bool {
	if l.Status == LoanReturned {
		return false
	}
	return now.After(l.DueDate)
}
