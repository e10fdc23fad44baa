package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

// Error variables
var (
	ErrBookUnavailable             = errors.New("no copies available")
	ErrDuplicateReservation        = errors.New("user already has a pending reservation for this book")
	ErrReservationNotFound         = errors.New("reservation not found")
	ErrReservationNotPending       = errors.New("reservation is not pending")
	ErrReservationAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrLoanNotFound                = errors.New("loan not found")
	ErrLoanAlreadyReturned         = errors.New("loan is already returned")
)

// ReservationReader defines read-only operations for reservations.
type ReservationReader interface {
	GetByID(ctx context.Context, reservationID uuid.UUID) (*models.ReservationDB, error)
	GetPendingByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*models.ReservationDB, error)
	ListAll(ctx context.Context) ([]models.ReservationDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReservationDB, error)
}

// ReservationWriter defines write operations for reservations.
type ReservationWriter interface {
	Save(ctx context.Context, reservation models.ReservationDB) (*models.ReservationDB, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status string) error
}

// LoanReader defines read-only operations for loans.
type LoanReader interface {
	GetByID(ctx context.Context, loanID uuid.UUID) (*models.LoanDB, error)
	ListAll(ctx context.Context) ([]models.LoanDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LoanDB, error)
}

// LoanWriter defines write operations for loans.
type LoanWriter interface {
	Save(ctx context.Context, loan models.LoanDB) (*models.LoanDB, error)
	MarkReturned(ctx context.Context, loanID uuid.UUID, returnDate time.Time) (*models.LoanDB, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// InventoryWriter mutates a book's available-copy count. These are the
// only two copy-count paths besides the admin capacity adjustment.
type InventoryWriter interface {
	DecrementAvailable(ctx context.Context, bookID uuid.UUID) (int, error)
	IncrementAvailable(ctx context.Context, bookID uuid.UUID) (int, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CirculationService is the single authority for copy-count
// bookkeeping and reservation/loan state transitions. Every method
// runs inside the caller's transaction, so a failure rolls back all
// of its writes together.
type CirculationService struct {
	reservationReader ReservationReader
	reservationWriter ReservationWriter
	loanReader        LoanReader
	loanWriter        LoanWriter
	bookReader        BookReader
	inventory         InventoryWriter
	kafkaWriter       KafkaWriter
	now               func() time.Time
}

// NewCirculationService creates a new CirculationService.
func NewCirculationService(
	reservationReader ReservationReader,
	reservationWriter ReservationWriter,
	loanReader LoanReader,
	loanWriter LoanWriter,
	bookReader BookReader,
	inventory InventoryWriter,
	kafkaWriter KafkaWriter,
) *CirculationService {
	return &CirculationService{
		reservationReader: reservationReader,
		reservationWriter: reservationWriter,
		loanReader:        loanReader,
		loanWriter:        loanWriter,
		bookReader:        bookReader,
		inventory:         inventory,
		kafkaWriter:       kafkaWriter,
		now:               time.Now,
	}
}

// publishEvent publishes a circulation event to Kafka. Publishing is
// fire-and-forget: a broker failure is logged and never fails the
// lifecycle operation.
func (svc *CirculationService) publishEvent(ctx context.Context, event models.CirculationEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal circulation event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish circulation event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Circulation event published to Kafka", "event_id", event.EventID, "event_type", event.EventType)
	}
}

// CreateReservation places a pending claim on a book. Reserving never
// touches the copy count; only fulfillment does.
func (svc *CirculationService) CreateReservation(ctx context.Context, actor models.Actor, bookID uuid.UUID) (*models.ReservationDB, error) {
	book, err := svc.bookReader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if !book.IsAvailable() {
		return nil, ErrBookUnavailable
	}

	existing, err := svc.reservationReader.GetPendingByUserAndBook(ctx, actor.UserID, bookID)
	if err != nil {
		logger.Log.Errorw("failed to check existing reservation", "bookID", bookID, "userID", actor.UserID, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReservation
	}

	now := svc.now()
	reservation := models.ReservationDB{
		UserID:          actor.UserID,
		BookID:          bookID,
		ReservationDate: now,
		Status:          models.ReservationPending,
		ExpiryDate:      now.Add(models.ReservationHoldPeriod),
	}

	stored, err := svc.reservationWriter.Save(ctx, reservation)
	if err != nil {
		logger.Log.Errorw("failed to save reservation", "bookID", bookID, "userID", actor.UserID, "error", err)
		return nil, err
	}

	return stored, nil
}

// CancelReservation moves a reservation to CANCELLED. Allowed for the
// owning user or an admin; cancelling twice is an error, not a no-op.
func (svc *CirculationService) CancelReservation(ctx context.Context, actor models.Actor, reservationID uuid.UUID) (*models.ReservationDB, error) {
	reservation, err := svc.reservationReader.GetByID(ctx, reservationID)
	if err != nil {
		logger.Log.Errorw("failed to get reservation", "reservationID", reservationID, "error", err)
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}

	if err := requireOwnerOrAdmin(actor, reservation.UserID); err != nil {
		return nil, err
	}

	if reservation.Status == models.ReservationCancelled {
		return nil, ErrReservationAlreadyCancelled
	}

	if err := svc.reservationWriter.UpdateStatus(ctx, reservationID, models.ReservationCancelled); err != nil {
		logger.Log.Errorw("failed to cancel reservation", "reservationID", reservationID, "error", err)
		return nil, err
	}

	reservation.Status = models.ReservationCancelled
	return reservation, nil
}

// FulfillReservation converts a pending reservation into an active
// loan: the reservation becomes CONFIRMED and exactly one available
// copy is taken. Availability is re-checked at fulfillment time; when
// no copy is left the operation fails rather than over-lending.
// Admin only.
func (svc *CirculationService) FulfillReservation(ctx context.Context, actor models.Actor, reservationID uuid.UUID) (*models.LoanDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	reservation, err := svc.reservationReader.GetByID(ctx, reservationID)
	if err != nil {
		logger.Log.Errorw("failed to get reservation", "reservationID", reservationID, "error", err)
		return nil, err
	}
	if reservation == nil {
		return nil, ErrReservationNotFound
	}
	if reservation.Status != models.ReservationPending {
		return nil, ErrReservationNotPending
	}

	book, err := svc.bookReader.GetByID(ctx, reservation.BookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", reservation.BookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	if _, err := svc.inventory.DecrementAvailable(ctx, reservation.BookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookUnavailable
		}
		logger.Log.Errorw("failed to decrement available copies", "bookID", reservation.BookID, "error", err)
		return nil, err
	}

	now := svc.now()
	loan := models.LoanDB{
		UserID:   reservation.UserID,
		BookID:   reservation.BookID,
		LoanDate: now,
		DueDate:  now.Add(models.LoanPeriod),
		Status:   models.LoanActive,
	}

	stored, err := svc.loanWriter.Save(ctx, loan)
	if err != nil {
		logger.Log.Errorw("failed to save loan", "reservationID", reservationID, "error", err)
		return nil, err
	}

	if err := svc.reservationWriter.UpdateStatus(ctx, reservationID, models.ReservationConfirmed); err != nil {
		logger.Log.Errorw("failed to confirm reservation", "reservationID", reservationID, "error", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.CirculationEvent{
		EventID:       uuid.NewString(),
		EventType:     models.EventLoanFulfilled,
		Timestamp:     now.Unix(),
		LoanID:        stored.LoanID.String(),
		ReservationID: reservationID.String(),
		UserID:        stored.UserID.String(),
		BookID:        stored.BookID.String(),
	})

	return stored, nil
}

// ReturnLoan closes an outstanding loan and puts its copy back on the
// shelf, capped at total_copies. Each loan increments the count
// exactly once: a second return fails with ErrLoanAlreadyReturned and
// changes nothing. Admin only.
func (svc *CirculationService) ReturnLoan(ctx context.Context, actor models.Actor, loanID uuid.UUID) (*models.LoanDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	loan, err := svc.loanReader.GetByID(ctx, loanID)
	if err != nil {
		logger.Log.Errorw("failed to get loan", "loanID", loanID, "error", err)
		return nil, err
	}
	if loan == nil {
		return nil, ErrLoanNotFound
	}
	if loan.Status == models.LoanReturned {
		return nil, ErrLoanAlreadyReturned
	}

	now := svc.now()
	returned, err := svc.loanWriter.MarkReturned(ctx, loanID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLoanAlreadyReturned
		}
		logger.Log.Errorw("failed to mark loan returned", "loanID", loanID, "error", err)
		return nil, err
	}

	if _, err := svc.inventory.IncrementAvailable(ctx, loan.BookID); err != nil {
		logger.Log.Errorw("failed to increment available copies", "bookID", loan.BookID, "error", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.CirculationEvent{
		EventID:   uuid.NewString(),
		EventType: models.EventLoanReturned,
		Timestamp: now.Unix(),
		LoanID:    loanID.String(),
		UserID:    loan.UserID.String(),
		BookID:    loan.BookID.String(),
	})

	return returned, nil
}

// RefreshOverdueStatus transitions every active loan past its due date
// to OVERDUE. It is idempotent, never touches copy counts, and runs
// before any loan listing so reported status reflects the clock.
func (svc *CirculationService) RefreshOverdueStatus(ctx context.Context) (int64, error) {
	marked, err := svc.loanWriter.MarkOverdue(ctx, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to refresh overdue status", "error", err)
		return 0, err
	}
	return marked, nil
}

// ListReservations returns every reservation for admins and only the
// actor's own otherwise.
func (svc *CirculationService) ListReservations(ctx context.Context, actor models.Actor) ([]models.ReservationDB, error) {
	if actor.IsAdmin() {
		return svc.reservationReader.ListAll(ctx)
	}
	return svc.reservationReader.ListByUser(ctx, actor.UserID)
}

// ListLoans refreshes overdue status, then returns every loan for
// admins and only the actor's own otherwise.
func (svc *CirculationService) ListLoans(ctx context.Context, actor models.Actor) ([]models.LoanDB, error) {
	if _, err := svc.RefreshOverdueStatus(ctx); err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		return svc.loanReader.ListAll(ctx)
	}
	return svc.loanReader.ListByUser(ctx, actor.UserID)
}
