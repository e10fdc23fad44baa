package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

const loanColumns = `loan_id, user_id, book_id, loan_date, due_date,
	return_date, status, created_at, updated_at`

// LoanReadRepository handles loan read operations
type LoanReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLoanReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LoanReadRepository {
	return &LoanReadRepository{db: db, txGetter: txGetter}
}

func (r *LoanReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the loan with the given ID, or nil if absent.
func (r *LoanReadRepository) GetByID(ctx context.Context, loanID uuid.UUID) (*models.LoanDB, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE loan_id = $1
	`

	var loan models.LoanDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &loan, query, loanID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{loanID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

// ListAll returns every loan, newest first.
func (r *LoanReadRepository) ListAll(ctx context.Context) ([]models.LoanDB, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		ORDER BY loan_date DESC
	`
	return r.list(ctx, query)
}

// ListByUser returns the user's loans, newest first.
func (r *LoanReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LoanDB, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1
		ORDER BY loan_date DESC
	`
	return r.list(ctx, query, userID)
}

func (r *LoanReadRepository) list(ctx context.Context, query string, args ...any) ([]models.LoanDB, error) {
	var loans []models.LoanDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &loans, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(loans),
		"error", err,
	)

	return loans, err
}

// LoanWriteRepository handles loan write operations
type LoanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLoanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LoanWriteRepository {
	return &LoanWriteRepository{db: db, txGetter: txGetter}
}

func (r *LoanWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new loan and returns the stored row.
func (r *LoanWriteRepository) Save(ctx context.Context, loan models.LoanDB) (*models.LoanDB, error) {
	const query = `
		INSERT INTO loans (loan_id, user_id, book_id, loan_date, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + loanColumns + `
	`
	args := []any{
		uuid.New(), loan.UserID, loan.BookID, loan.LoanDate, loan.DueDate, loan.Status,
	}

	var stored models.LoanDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{loan.UserID, loan.BookID, loan.Status},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// MarkReturned closes the loan in a single guarded statement. Returns
// sql.ErrNoRows when the loan is already returned, so a repeated
// return can never increment the copy count a second time.
func (r *LoanWriteRepository) MarkReturned(ctx context.Context, loanID uuid.UUID, returnDate time.Time) (*models.LoanDB, error) {
	const query = `
		UPDATE loans
		SET status = $3, return_date = $2, updated_at = NOW()
		WHERE loan_id = $1 AND status <> $3
		RETURNING ` + loanColumns + `
	`

	var loan models.LoanDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &loan, query, loanID, returnDate, models.LoanReturned)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{loanID, returnDate},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &loan, nil
}

// MarkOverdue transitions every active loan past its due date to
// OVERDUE. Idempotent; never touches copy counts.
func (r *LoanWriteRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE loans
		SET status = $2, updated_at = NOW()
		WHERE status = $3 AND due_date < $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, now, models.LoanOverdue, models.LoanActive)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
