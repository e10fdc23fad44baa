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

const bookColumns = `book_id, title, author, isbn, publisher, publication_date,
	total_copies, available_copies, created_at, updated_at`

// BookReadRepository handles book read operations
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

func (r *BookReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the book with the given ID, or nil if absent.
func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE book_id = $1
	`
	return r.get(ctx, query, bookID)
}

// GetByIDForUpdate returns the book with the given ID holding a row
// lock for the rest of the transaction. Copy-count adjustments read
// through here so concurrent capacity changes serialize per book.
func (r *BookReadRepository) GetByIDForUpdate(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE book_id = $1
		FOR UPDATE
	`
	return r.get(ctx, query, bookID)
}

func (r *BookReadRepository) get(ctx context.Context, query string, bookID uuid.UUID) (*models.BookDB, error) {
	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// List returns a page of books, newest first, optionally filtered by a
// substring match on title, author or ISBN.
func (r *BookReadRepository) List(ctx context.Context, search string, limit, offset int) ([]models.BookDB, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
	`
	args := []any{}
	if search != "" {
		query += ` WHERE title ILIKE $1 OR author ILIKE $1 OR isbn ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`
	if search != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	var books []models.BookDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &books, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(books),
		"error", err,
	)

	return books, err
}

// Count returns the number of books matching the search filter.
func (r *BookReadRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM books`
	args := []any{}
	if search != "" {
		query += ` WHERE title ILIKE $1 OR author ILIKE $1 OR isbn ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", total,
		"error", err,
	)

	return total, err
}

// BookWriteRepository handles book write operations
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new book and returns the stored row.
func (r *BookWriteRepository) Save(ctx context.Context, book models.BookDB) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (book_id, title, author, isbn, publisher, publication_date,
			total_copies, available_copies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + bookColumns + `
	`
	args := []any{
		uuid.New(), book.Title, book.Author, book.ISBN, book.Publisher,
		book.PublicationDate, book.TotalCopies, book.AvailableCopies,
	}

	var stored models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{book.Title, book.Author, book.TotalCopies},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// Update overwrites the book's catalog fields and copy counts.
func (r *BookWriteRepository) Update(ctx context.Context, book models.BookDB) (*models.BookDB, error) {
	const query = `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, publisher = $5, publication_date = $6,
			total_copies = $7, available_copies = $8, updated_at = NOW()
		WHERE book_id = $1
		RETURNING ` + bookColumns + `
	`
	args := []any{
		book.BookID, book.Title, book.Author, book.ISBN, book.Publisher,
		book.PublicationDate, book.TotalCopies, book.AvailableCopies,
	}

	var stored models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &stored, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{book.BookID, book.TotalCopies, book.AvailableCopies},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// DecrementAvailable takes one copy off the shelf in a single guarded
// statement. Returns sql.ErrNoRows when no copy is available, so two
// concurrent fulfillments can never drive the count negative.
func (r *BookWriteRepository) DecrementAvailable(ctx context.Context, bookID uuid.UUID) (int, error) {
	const query = `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE book_id = $1 AND available_copies > 0
		RETURNING available_copies
	`

	var available int
	err := sqlx.GetContext(ctx, r.executor(ctx), &available, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", available,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return available, nil
}

// IncrementAvailable puts one copy back, capped at total_copies. The
// cap absorbs capacity shrinks that happened while copies were out.
func (r *BookWriteRepository) IncrementAvailable(ctx context.Context, bookID uuid.UUID) (int, error) {
	const query = `
		UPDATE books
		SET available_copies = LEAST(available_copies + 1, total_copies), updated_at = NOW()
		WHERE book_id = $1
		RETURNING available_copies
	`

	var available int
	err := sqlx.GetContext(ctx, r.executor(ctx), &available, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", available,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return available, nil
}

// Delete removes the book; reservations and loans cascade.
func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	const query = `DELETE FROM books WHERE book_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
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
