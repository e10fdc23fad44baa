package models

// Circulation event types published to Kafka.
const (
	EventLoanFulfilled = "loan_fulfilled"
	EventLoanReturned  = "loan_returned"
)

// CirculationEvent is the message published for every successful
// fulfillment and return.
type CirculationEvent struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	Timestamp     int64  `json:"timestamp"`
	LoanID        string `json:"loan_id"`
	ReservationID string `json:"reservation_id,omitempty"`
	UserID        string `json:"user_id"`
	BookID        string `json:"book_id"`
}
