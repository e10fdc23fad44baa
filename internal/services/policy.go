package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

// ErrForbidden is returned when the acting identity lacks the
// capability a lifecycle operation requires.
var ErrForbidden = errors.New("operation not permitted")

// requireAdmin gates admin-only operations. It fails closed before any
// mutation is attempted.
func requireAdmin(actor models.Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// requireOwnerOrAdmin permits the record's owner and any admin.
func requireOwnerOrAdmin(actor models.Actor, ownerID uuid.UUID) error {
	if actor.IsAdmin() || actor.UserID == ownerID {
		return nil
	}
	return ErrForbidden
}
