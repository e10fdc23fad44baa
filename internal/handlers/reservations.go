package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
	"github.com/sbilibin2017/gw-library-catalog/internal/services"
)

// ReservationCreator defines the reservation create the handler needs.
type ReservationCreator interface {
	CreateReservation(ctx context.Context, actor models.Actor, bookID uuid.UUID) (*models.ReservationDB, error)
}

// ReservationCanceller defines the reservation cancel the handler needs.
type ReservationCanceller interface {
	CancelReservation(ctx context.Context, actor models.Actor, reservationID uuid.UUID) (*models.ReservationDB, error)
}

// ReservationFulfiller defines the reservation fulfillment the handler needs.
type ReservationFulfiller interface {
	FulfillReservation(ctx context.Context, actor models.Actor, reservationID uuid.UUID) (*models.LoanDB, error)
}

// ReservationLister defines the reservation listing the handler needs.
type ReservationLister interface {
	ListReservations(ctx context.Context, actor models.Actor) ([]models.ReservationDB, error)
}

// ReservationResponse represents a single reservation
// swagger:model ReservationResponse
type ReservationResponse struct {
	Reservation *models.ReservationDB `json:"reservation"`
}

// ReservationListResponse represents a reservation listing
// swagger:model ReservationListResponse
type ReservationListResponse struct {
	Reservations []models.ReservationDB `json:"reservations"`
}

// ReservationErrorResponse represents an error response for reservation operations
// swagger:model ReservationErrorResponse
type ReservationErrorResponse struct {
	// Error message
	// default: Reservation not found
	Error string `json:"error"`
}

// NewCreateReservationHandler returns an HTTP handler placing a reservation.
// @Summary Reserve a book
// @Description Places a pending reservation on a book for the authenticated user. Reserving does not take a copy; fulfillment does.
// @Tags reservations
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 201 {object} handlers.ReservationResponse
// @Failure 400 {object} handlers.ReservationErrorResponse "Invalid book ID"
// @Failure 404 {object} handlers.ReservationErrorResponse "Book not found"
// @Failure 409 {object} handlers.ReservationErrorResponse "No copies available / duplicate reservation"
// @Router /books/{bookID}/reservations [post]
// @Security BearerAuth
func NewCreateReservationHandler(svc ReservationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Invalid book ID",
			})
			return
		}

		reservation, err := svc.CreateReservation(r.Context(), actor, bookID)
		if err != nil {
			writeReservationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ReservationResponse{
			Reservation: reservation,
		})
	}
}

// NewCancelReservationHandler returns an HTTP handler cancelling a reservation.
// @Summary Cancel a reservation
// @Description Moves a reservation to CANCELLED. Allowed for the owning user or an admin. Cancelling twice is an error.
// @Tags reservations
// @Produce json
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} handlers.ReservationResponse
// @Failure 403 {object} handlers.ReservationErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ReservationErrorResponse "Reservation not found"
// @Failure 409 {object} handlers.ReservationErrorResponse "Reservation already cancelled"
// @Router /reservations/{reservationID}/cancel [post]
// @Security BearerAuth
func NewCancelReservationHandler(svc ReservationCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		reservationID, err := uuid.Parse(chi.URLParam(r, "reservationID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Invalid reservation ID",
			})
			return
		}

		reservation, err := svc.CancelReservation(r.Context(), actor, reservationID)
		if err != nil {
			writeReservationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReservationResponse{
			Reservation: reservation,
		})
	}
}

// NewFulfillReservationHandler returns an HTTP handler converting a
// pending reservation into an active loan.
// @Summary Fulfill a reservation
// @Description Confirms a pending reservation and creates an active loan, taking one available copy. Admin only.
// @Tags reservations
// @Produce json
// @Param reservationID path string true "Reservation ID"
// @Success 201 {object} handlers.LoanResponse
// @Failure 403 {object} handlers.ReservationErrorResponse "Admin role required"
// @Failure 404 {object} handlers.ReservationErrorResponse "Reservation not found"
// @Failure 409 {object} handlers.ReservationErrorResponse "Reservation not pending / no copies available"
// @Router /reservations/{reservationID}/fulfill [post]
// @Security BearerAuth
func NewFulfillReservationHandler(svc ReservationFulfiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		reservationID, err := uuid.Parse(chi.URLParam(r, "reservationID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Invalid reservation ID",
			})
			return
		}

		loan, err := svc.FulfillReservation(r.Context(), actor, reservationID)
		if err != nil {
			writeReservationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(LoanResponse{
			Loan: loan,
		})
	}
}

// NewListReservationsHandler returns an HTTP handler listing reservations.
// @Summary List reservations
// @Description Returns every reservation for admins and only the caller's own otherwise.
// @Tags reservations
// @Produce json
// @Success 200 {object} handlers.ReservationListResponse
// @Failure 401 {object} handlers.ReservationErrorResponse "Unauthorized"
// @Router /reservations [get]
// @Security BearerAuth
func NewListReservationsHandler(svc ReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		reservations, err := svc.ListReservations(r.Context(), actor)
		if err != nil {
			logger.Log.Errorw("failed to list reservations", "userID", actor.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReservationErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReservationListResponse{
			Reservations: reservations,
		})
	}
}

func writeReservationError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrForbidden:
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "Operation not permitted",
		})
	case services.ErrBookNotFound:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "Book not found",
		})
	case services.ErrReservationNotFound:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "Reservation not found",
		})
	case services.ErrBookUnavailable:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "No copies available",
		})
	case services.ErrDuplicateReservation:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "User already has a pending reservation for this book",
		})
	case services.ErrReservationNotPending:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "Reservation is not pending",
		})
	case services.ErrReservationAlreadyCancelled:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "Reservation is already cancelled",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ReservationErrorResponse{
			Error: "Internal server error",
		})
	}
}

// RegisterReservationHandlers registers the authenticated reservation routes.
func RegisterReservationHandlers(r chi.Router, create, list, cancel http.HandlerFunc) {
	r.Post("/books/{bookID}/reservations", create)
	r.Get("/reservations", list)
	r.Post("/reservations/{reservationID}/cancel", cancel)
}

// RegisterReservationAdminHandlers registers the admin reservation routes.
func RegisterReservationAdminHandlers(r chi.Router, fulfill http.HandlerFunc) {
	r.Post("/reservations/{reservationID}/fulfill", fulfill)
}
