package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

const reservationColumns = `reservation_id, user_id, book_id, reservation_date,
	status, expiry_date, created_at, updated_at`

// ReservationReadRepository handles reservation read operations
type ReservationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReservationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReservationReadRepository {
	return &ReservationReadRepository{db: db, txGetter: txGetter}
}

func (r *ReservationReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the reservation with the given ID, or nil if absent.
func (r *ReservationReadRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*models.ReservationDB, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE reservation_id = $1
	`

	var reservation models.ReservationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reservation, query, reservationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reservationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// GetPendingByUserAndBook returns the user's pending reservation for
// the book, or nil when there is none.
func (r *ReservationReadRepository) GetPendingByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*models.ReservationDB, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1 AND book_id = $2 AND status = $3
		LIMIT 1
	`

	var reservation models.ReservationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reservation, query, userID, bookID, models.ReservationPending)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, bookID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// ListAll returns every reservation, newest first.
func (r *ReservationReadRepository) ListAll(ctx context.Context) ([]models.ReservationDB, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		ORDER BY reservation_date DESC
	`
	return r.list(ctx, query)
}

// ListByUser returns the user's reservations, newest first.
func (r *ReservationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ReservationDB, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE user_id = $1
		ORDER BY reservation_date DESC
	`
	return r.list(ctx, query, userID)
}

func (r *ReservationReadRepository) list(ctx context.Context, query string, args ...any) ([]models.ReservationDB, error) {
	var reservations []models.ReservationDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &reservations, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(reservations),
		"error", err,
	)

	return reservations, err
}

// ReservationWriteRepository handles reservation write operations
type ReservationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReservationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReservationWriteRepository {
	return &ReservationWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReservationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new reservation and returns the stored row.
func (r *ReservationWriteRepository) Save(ctx context.Context, reservation models.ReservationDB) (*models.ReservationDB, error) {
	const query = `
		INSERT INTO reservations (reservation_id, user_id, book_id, reservation_date,
			status, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + reservationColumns + `
	`
	args := []any{
		uuid.New(), reservation.UserID, reservation.BookID,
		reservation.ReservationDate, reservation.Status, reservation.ExpiryDate,
	}

	var stored models.ReservationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reservation.UserID, reservation.BookID, reservation.Status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// UpdateStatus moves the reservation to the given status.
func (r *ReservationWriteRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status string) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = NOW()
		WHERE reservation_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, reservationID, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reservationID, status},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
