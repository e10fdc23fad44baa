package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
	"github.com/sbilibin2017/gw-library-catalog/internal/services"
)

// BookLister defines the catalog listing the handler needs.
type BookLister interface {
	ListBooks(ctx context.Context, search string, limit, offset int) ([]models.BookDB, int64, error)
}

// BookGetter defines the single-book read the handler needs.
type BookGetter interface {
	GetBook(ctx context.Context, actor *models.Actor, bookID uuid.UUID) (*models.BookDB, bool, error)
}

// BookCreator defines the catalog create the handler needs.
type BookCreator interface {
	CreateBook(ctx context.Context, actor models.Actor, input services.BookInput) (*models.BookDB, error)
}

// BookUpdater defines the catalog update the handler needs.
type BookUpdater interface {
	UpdateBook(ctx context.Context, actor models.Actor, bookID uuid.UUID, input services.BookInput) (*models.BookDB, error)
}

// BookDeleter defines the catalog delete the handler needs.
type BookDeleter interface {
	DeleteBook(ctx context.Context, actor models.Actor, bookID uuid.UUID) error
}

// BookRequest represents the JSON body for creating or updating a book
// swagger:model BookRequest
type BookRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Author
	// required: true
	Author string `json:"author"`

	// ISBN
	ISBN *string `json:"isbn,omitempty"`

	// Publisher
	Publisher *string `json:"publisher,omitempty"`

	// Publication date, RFC 3339
	PublicationDate *time.Time `json:"publication_date,omitempty"`

	// Total copies owned by the library
	// required: true
	// default: 1
	TotalCopies int `json:"total_copies"`
}

// BookResponse represents a single catalog entry
// swagger:model BookResponse
type BookResponse struct {
	Book *models.BookDB `json:"book"`

	// Whether the authenticated caller already holds a pending
	// reservation on this book
	HasPendingReservation bool `json:"has_pending_reservation"`
}

// BookListResponse represents a page of the catalog
// swagger:model BookListResponse
type BookListResponse struct {
	Books []models.BookDB `json:"books"`
	Total int64           `json:"total"`
}

// BookErrorResponse represents an error response for catalog operations
// swagger:model BookErrorResponse
type BookErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

const (
	defaultBookPageLimit = 20
	maxBookPageLimit     = 100
)

// NewListBooksHandler returns an HTTP handler listing the catalog.
// @Summary List books
// @Description Returns a page of the catalog. Supports title/author/ISBN search and pagination.
// @Tags books
// @Produce json
// @Param search query string false "Search in title, author and ISBN"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} handlers.BookListResponse
// @Failure 500 {object} handlers.BookErrorResponse "Internal server error"
// @Router /books [get]
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		limit := defaultBookPageLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		if limit > maxBookPageLimit {
			limit = maxBookPageLimit
		}

		offset := 0
		if v := r.URL.Query().Get("offset"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				offset = parsed
			}
		}

		books, total, err := svc.ListBooks(r.Context(), search, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list books", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BookListResponse{
			Books: books,
			Total: total,
		})
	}
}

// NewGetBookHandler returns an HTTP handler for a single catalog entry.
// @Summary Get a book
// @Description Returns one catalog entry. For authenticated callers it also reports whether they already hold a pending reservation on the book.
// @Tags books
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 200 {object} handlers.BookResponse
// @Failure 400 {object} handlers.BookErrorResponse "Invalid book ID"
// @Failure 404 {object} handlers.BookErrorResponse "Book not found"
// @Router /books/{bookID} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Invalid book ID",
			})
			return
		}

		var actorPtr *models.Actor
		if actor, ok := middlewares.GetActorFromContext(r.Context()); ok {
			actorPtr = &actor
		}

		book, hasPending, err := svc.GetBook(r.Context(), actorPtr, bookID)
		if err != nil {
			switch err {
			case services.ErrBookNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookErrorResponse{
					Error: "Book not found",
				})
			default:
				logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BookResponse{
			Book:                  book,
			HasPendingReservation: hasPending,
		})
	}
}

// NewCreateBookHandler returns an HTTP handler creating a catalog entry.
// @Summary Create a book
// @Description Adds a catalog entry with all copies available. Admin only.
// @Tags books
// @Accept json
// @Produce json
// @Param bookRequest body handlers.BookRequest true "Book fields"
// @Success 201 {object} handlers.BookResponse
// @Failure 400 {object} handlers.BookErrorResponse "Invalid book input"
// @Failure 403 {object} handlers.BookErrorResponse "Admin role required"
// @Router /books [post]
// @Security BearerAuth
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		book, err := svc.CreateBook(r.Context(), actor, services.BookInput{
			Title:           req.Title,
			Author:          req.Author,
			ISBN:            req.ISBN,
			Publisher:       req.Publisher,
			PublicationDate: req.PublicationDate,
			TotalCopies:     req.TotalCopies,
		})
		if err != nil {
			writeBookError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BookResponse{
			Book: book,
		})
	}
}

// NewUpdateBookHandler returns an HTTP handler updating a catalog entry,
// including the total-copy capacity.
// @Summary Update a book
// @Description Overwrites the catalog fields. Available copies shift by the change in total copies, floored at zero. Admin only.
// @Tags books
// @Accept json
// @Produce json
// @Param bookID path string true "Book ID"
// @Param bookRequest body handlers.BookRequest true "Book fields"
// @Success 200 {object} handlers.BookResponse
// @Failure 400 {object} handlers.BookErrorResponse "Invalid book input"
// @Failure 403 {object} handlers.BookErrorResponse "Admin role required"
// @Failure 404 {object} handlers.BookErrorResponse "Book not found"
// @Router /books/{bookID} [put]
// @Security BearerAuth
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Invalid book ID",
			})
			return
		}

		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		book, err := svc.UpdateBook(r.Context(), actor, bookID, services.BookInput{
			Title:           req.Title,
			Author:          req.Author,
			ISBN:            req.ISBN,
			Publisher:       req.Publisher,
			PublicationDate: req.PublicationDate,
			TotalCopies:     req.TotalCopies,
		})
		if err != nil {
			writeBookError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BookResponse{
			Book: book,
		})
	}
}

// NewDeleteBookHandler returns an HTTP handler removing a catalog entry.
// @Summary Delete a book
// @Description Removes a catalog entry together with its reservations and loans. Admin only.
// @Tags books
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 204 "Book deleted"
// @Failure 403 {object} handlers.BookErrorResponse "Admin role required"
// @Failure 404 {object} handlers.BookErrorResponse "Book not found"
// @Router /books/{bookID} [delete]
// @Security BearerAuth
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Invalid book ID",
			})
			return
		}

		if err := svc.DeleteBook(r.Context(), actor, bookID); err != nil {
			writeBookError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeBookError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrForbidden:
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(BookErrorResponse{
			Error: "Admin role required",
		})
	case services.ErrInvalidBookInput:
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(BookErrorResponse{
			Error: "Invalid book input",
		})
	case services.ErrBookNotFound:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(BookErrorResponse{
			Error: "Book not found",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(BookErrorResponse{
			Error: "Internal server error",
		})
	}
}

// RegisterBookHandlers registers the public catalog read routes.
func RegisterBookHandlers(r chi.Router, list, get http.HandlerFunc) {
	r.Get("/books", list)
	r.Get("/books/{bookID}", get)
}

// RegisterBookAdminHandlers registers the admin catalog write routes.
func RegisterBookAdminHandlers(r chi.Router, create, update, del http.HandlerFunc) {
	r.Post("/books", create)
	r.Put("/books/{bookID}", update)
	r.Delete("/books/{bookID}", del)
}
