package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-library-catalog/internal/logger"
	"github.com/sbilibin2017/gw-library-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-library-catalog/internal/models"
	"github.com/sbilibin2017/gw-library-catalog/internal/services"
)

// DashboardGetter defines the dashboard read the handler needs.
type DashboardGetter interface {
	GetDashboard(ctx context.Context, actor models.Actor) (*models.DashboardStats, error)
}

// UserListGetter defines the user listing the handler needs.
type UserListGetter interface {
	ListUsers(ctx context.Context, actor models.Actor) ([]models.UserDB, error)
}

// DashboardResponse represents the admin dashboard counters
// swagger:model DashboardResponse
type DashboardResponse struct {
	Stats *models.DashboardStats `json:"stats"`
}

// UserListResponse represents the user account listing
// swagger:model UserListResponse
type UserListResponse struct {
	Users []models.UserDB `json:"users"`
}

// AdminErrorResponse represents an error response for admin operations
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// default: Admin role required
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for the admin dashboard.
// @Summary Admin dashboard
// @Description Returns catalog and circulation counters. Served from cache when fresh. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.DashboardResponse
// @Failure 403 {object} handlers.AdminErrorResponse "Admin role required"
// @Router /admin/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		stats, err := svc.GetDashboard(r.Context(), actor)
		if err != nil {
			writeAdminError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{
			Stats: stats,
		})
	}
}

// NewListUsersHandler returns an HTTP handler listing user accounts.
// @Summary List users
// @Description Returns all user accounts, newest first. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UserListResponse
// @Failure 403 {object} handlers.AdminErrorResponse "Admin role required"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserListGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middlewares.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		users, err := svc.ListUsers(r.Context(), actor)
		if err != nil {
			writeAdminError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserListResponse{
			Users: users,
		})
	}
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch err {
	case services.ErrForbidden:
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(AdminErrorResponse{
			Error: "Admin role required",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(AdminErrorResponse{
			Error: "Internal server error",
		})
	}
}

// RegisterAdminHandlers registers the admin read routes.
func RegisterAdminHandlers(r chi.Router, dashboard, users http.HandlerFunc) {
	r.Get("/admin/dashboard", dashboard)
	r.Get("/admin/users", users)
}
