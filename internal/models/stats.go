package models

// DashboardStats holds the admin dashboard counters.
type DashboardStats struct {
	TotalBooks          int64 `json:"total_books" db:"total_books"`
	TotalUsers          int64 `json:"total_users" db:"total_users"`
	PendingReservations int64 `json:"pending_reservations" db:"pending_reservations"`
	ActiveLoans         int64 `json:"active_loans" db:"active_loans"`
	OverdueLoans        int64 `json:"overdue_loans" db:"overdue_loans"`
}
