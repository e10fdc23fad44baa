package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

// Error variables
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidBookInput = errors.New("invalid book input")
)

// BookReader defines read-only operations for books.
type BookReader interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	GetByIDForUpdate(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.BookDB, error)
	Count(ctx context.Context, search string) (int64, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, book models.BookDB) (*models.BookDB, error)
	Update(ctx context.Context, book models.BookDB) (*models.BookDB, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// PendingReservationReader reports whether a user already holds a
// pending reservation on a book.
type PendingReservationReader interface {
	GetPendingByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*models.ReservationDB, error)
}

// BookInput carries the fields an admin submits when creating or
// updating a catalog entry.
type BookInput struct {
	Title           string
	Author          string
	ISBN            *string
	Publisher       *string
	PublicationDate *time.Time
	TotalCopies     int
}

// CatalogService manages the book catalog, including the capacity
// adjustment rule.
type CatalogService struct {
	reader      BookReader
	writer      BookWriter
	reservation PendingReservationReader
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(reader BookReader, writer BookWriter, reservation PendingReservationReader) *CatalogService {
	return &CatalogService{
		reader:      reader,
		writer:      writer,
		reservation: reservation,
	}
}

func validateBookInput(input BookInput) error {
	if input.Title == "" || input.Author == "" {
		return ErrInvalidBookInput
	}
	if input.TotalCopies < 1 {
		return ErrInvalidBookInput
	}
	return nil
}

// CreateBook adds a catalog entry with all copies available. Admin only.
func (svc *CatalogService) CreateBook(ctx context.Context, actor models.Actor, input BookInput) (*models.BookDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateBookInput(input); err != nil {
		return nil, err
	}

	book := models.BookDB{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		Publisher:       input.Publisher,
		PublicationDate: input.PublicationDate,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.TotalCopies,
	}

	stored, err := svc.writer.Save(ctx, book)
	if err != nil {
		logger.Log.Errorw("failed to save book", "title", input.Title, "error", err)
		return nil, err
	}

	return stored, nil
}

// UpdateBook overwrites the catalog fields and applies the capacity
// adjustment rule: available copies shift by the change in total
// copies, floored at zero. A shrink below the number of copies
// currently on loan leaves availability at zero and the deficit is
// absorbed as copies come back (returns cap at total_copies).
// Admin only.
func (svc *CatalogService) UpdateBook(ctx context.Context, actor models.Actor, bookID uuid.UUID, input BookInput) (*models.BookDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateBookInput(input); err != nil {
		return nil, err
	}

	book, err := svc.reader.GetByIDForUpdate(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	diff := input.TotalCopies - book.TotalCopies
	available := book.AvailableCopies + diff
	if available < 0 {
		available = 0
	}

	book.Title = input.Title
	book.Author = input.Author
	book.ISBN = input.ISBN
	book.Publisher = input.Publisher
	book.PublicationDate = input.PublicationDate
	book.TotalCopies = input.TotalCopies
	book.AvailableCopies = available

	stored, err := svc.writer.Update(ctx, *book)
	if err != nil {
		logger.Log.Errorw("failed to update book", "bookID", bookID, "error", err)
		return nil, err
	}

	return stored, nil
}

// DeleteBook removes a catalog entry; its reservations and loans are
// cascade-deleted by the store. Admin only.
func (svc *CatalogService) DeleteBook(ctx context.Context, actor models.Actor, bookID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	book, err := svc.reader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	if err := svc.writer.Delete(ctx, bookID); err != nil {
		logger.Log.Errorw("failed to delete book", "bookID", bookID, "error", err)
		return err
	}

	return nil
}

// GetBook returns a catalog entry. When the caller is authenticated,
// it also reports whether that user already holds a pending
// reservation on the book.
func (svc *CatalogService) GetBook(ctx context.Context, actor *models.Actor, bookID uuid.UUID) (*models.BookDB, bool, error) {
	book, err := svc.reader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, false, err
	}
	if book == nil {
		return nil, false, ErrBookNotFound
	}

	hasPending := false
	if actor != nil {
		reservation, err := svc.reservation.GetPendingByUserAndBook(ctx, actor.UserID, bookID)
		if err != nil {
			logger.Log.Errorw("failed to check pending reservation", "bookID", bookID, "userID", actor.UserID, "error", err)
			return nil, false, err
		}
		hasPending = reservation != nil
	}

	return book, hasPending, nil
}

// ListBooks returns a page of the catalog plus the total match count.
func (svc *CatalogService) ListBooks(ctx context.Context, search string, limit, offset int) ([]models.BookDB, int64, error) {
	books, err := svc.reader.List(ctx, search, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list books", "search", search, "error", err)
		return nil, 0, err
	}

	total, err := svc.reader.Count(ctx, search)
	if err != nil {
		logger.Log.Errorw("failed to count books", "search", search, "error", err)
		return nil, 0, err
	}

	return books, total, nil
}
