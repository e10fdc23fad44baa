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

// LoanLister defines the loan listing the handler needs.
type LoanLister interface {
	ListLoans(ctx context.Context, actor models.Actor) ([]models.LoanDB, error)
}

// LoanReturner defines the loan return the handler needs.
type LoanReturner interface {
	ReturnLoan(ctx context.Context, actor models.Actor, loanID uuid.UUID) (*models.LoanDB, error)
}

// LoanResponse represents a single loan
// swagger:model LoanResponse
type LoanResponse struct {
	Loan *models.LoanDB `json:"loan"`
}

// LoanListResponse represents a loan listing
// swagger:model LoanListResponse
type LoanListResponse struct {
	Loans []models.LoanDB `json:"loans"`
}

// LoanErrorResponse represents an error response for loan operations
// swagger:model LoanErrorResponse
type LoanErrorResponse struct {
	// Error message
	// default: Loan not found
	Error string `json:"error"`
}

// NewListLoansHandler returns an HTTP handler listing loans. Overdue
// status is refreshed before the listing so reported status reflects
// the clock.
// @Summary List loans
// @Description Returns every loan for admins and only the caller's own otherwise. Active loans past their due date are reported as OVERDUE.
// @Tags loans
// @Produce json
// @Success 200 {object} handlers.LoanListResponse
// @Failure 401 {object} handlers.LoanErrorResponse "Unauthorized"
// @Router /loans [get]
// @Security BearerAuth
func NewListLoansHandler(svc LoanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoanErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		loans, err := svc.ListLoans(r.Context(), actor)
		if err != nil {
			logger.Log.Errorw("failed to list loans", "userID", actor.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LoanErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoanListResponse{
			Loans: loans,
		})
	}
}

// NewReturnLoanHandler returns an HTTP handler closing a loan.
// @Summary Return a loan
// @Description Marks a loan RETURNED and puts its copy back on the shelf, capped at total copies. A second return fails. Admin only.
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} handlers.LoanResponse
// @Failure 403 {object} handlers.LoanErrorResponse "Admin role required"
// @Failure 404 {object} handlers.LoanErrorResponse "Loan not found"
// @Failure 409 {object} handlers.LoanErrorResponse "Loan already returned"
// @Router /loans/{loanID}/return [post]
// @Security BearerAuth
func NewReturnLoanHandler(svc LoanReturner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoanErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		loanID, err := uuid.Parse(chi.URLParam(r, "loanID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{
				Error: "Invalid loan ID",
			})
			return
		}

		loan, err := svc.ReturnLoan(r.Context(), actor, loanID)
		if err != nil {
			switch err {
			case services.ErrForbidden:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(LoanErrorResponse{
					Error: "Admin role required",
				})
			case services.ErrLoanNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LoanErrorResponse{
					Error: "Loan not found",
				})
			case services.ErrLoanAlreadyReturned:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(LoanErrorResponse{
					Error: "Loan is already returned",
				})
			default:
				logger.Log.Errorw("failed to return loan", "loanID", loanID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoanErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoanResponse{
			Loan: loan,
		})
	}
}

// RegisterLoanHandlers registers the authenticated loan routes.
func RegisterLoanHandlers(r chi.Router, list http.HandlerFunc) {
	r.Get("/loans", list)
}

// RegisterLoanAdminHandlers registers the admin loan routes.
func RegisterLoanAdminHandlers(r chi.Router, ret http.HandlerFunc) {
	r.Post("/loans/{loanID}/return", ret)
}
