package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

func TestReservationRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewReservationWriteRepository(db, nil)
	readRepo := NewReservationReadRepository(db, nil)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	book := seedBook(t, db, 2, 2)

	now := time.Now().UTC().Truncate(time.Second)

	saved, err := writeRepo.Save(ctx, models.ReservationDB{
		UserID:          alice.UserID,
		BookID:          book.BookID,
		ReservationDate: now,
		Status:          models.ReservationPending,
		ExpiryDate:      now.Add(models.ReservationHoldPeriod),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ReservationID)
	assert.Equal(t, models.ReservationPending, saved.Status)

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, saved.ReservationID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, alice.UserID, got.UserID)

		missing, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("GetPendingByUserAndBook", func(t *testing.T) {
		got, err := readRepo.GetPendingByUserAndBook(ctx, alice.UserID, book.BookID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, saved.ReservationID, got.ReservationID)

		// Other user has none
		got, err = readRepo.GetPendingByUserAndBook(ctx, bob.UserID, book.BookID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		err := writeRepo.UpdateStatus(ctx, saved.ReservationID, models.ReservationCancelled)
		assert.NoError(t, err)

		got, err := readRepo.GetByID(ctx, saved.ReservationID)
		assert.NoError(t, err)
		assert.Equal(t, models.ReservationCancelled, got.Status)

		// A cancelled reservation is no longer pending
		pending, err := readRepo.GetPendingByUserAndBook(ctx, alice.UserID, book.BookID)
		assert.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("UpdateStatusMissingRow", func(t *testing.T) {
		err := writeRepo.UpdateStatus(ctx, uuid.New(), models.ReservationCancelled)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Listings", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, models.ReservationDB{
			UserID:          bob.UserID,
			BookID:          book.BookID,
			ReservationDate: now,
			Status:          models.ReservationPending,
			ExpiryDate:      now.Add(models.ReservationHoldPeriod),
		})
		assert.NoError(t, err)

		all, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 2)

		mine, err := readRepo.ListByUser(ctx, bob.UserID)
		assert.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.Equal(t, bob.UserID, mine[0].UserID)
	})
}
