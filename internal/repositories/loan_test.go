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

func TestLoanRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewLoanWriteRepository(db, nil)
	readRepo := NewLoanReadRepository(db, nil)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	book := seedBook(t, db, 2, 2)

	now := time.Now().UTC().Truncate(time.Second)

	saved, err := writeRepo.Save(ctx, models.LoanDB{
		UserID:   alice.UserID,
		BookID:   book.BookID,
		LoanDate: now,
		DueDate:  now.Add(models.LoanPeriod),
		Status:   models.LoanActive,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.LoanID)
	assert.Equal(t, models.LoanActive, saved.Status)
	assert.Nil(t, saved.ReturnDate)

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, saved.LoanID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, alice.UserID, got.UserID)

		missing, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("MarkReturned", func(t *testing.T) {
		returnDate := now.Add(24 * time.Hour)
		returned, err := writeRepo.MarkReturned(ctx, saved.LoanID, returnDate)
		assert.NoError(t, err)
		assert.Equal(t, models.LoanReturned, returned.Status)
		assert.NotNil(t, returned.ReturnDate)

		// Guarded: a returned loan cannot be returned again
		_, err = writeRepo.MarkReturned(ctx, saved.LoanID, returnDate)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("MarkOverdue", func(t *testing.T) {
		// One loan already past due, one still current
		_, err := writeRepo.Save(ctx, models.LoanDB{
			UserID:   bob.UserID,
			BookID:   book.BookID,
			LoanDate: now.Add(-20 * 24 * time.Hour),
			DueDate:  now.Add(-6 * 24 * time.Hour),
			Status:   models.LoanActive,
		})
		assert.NoError(t, err)
		current, err := writeRepo.Save(ctx, models.LoanDB{
			UserID:   bob.UserID,
			BookID:   book.BookID,
			LoanDate: now,
			DueDate:  now.Add(models.LoanPeriod),
			Status:   models.LoanActive,
		})
		assert.NoError(t, err)

		marked, err := writeRepo.MarkOverdue(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), marked)

		// Idempotent: nothing left to mark
		marked, err = writeRepo.MarkOverdue(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), marked)

		got, err := readRepo.GetByID(ctx, current.LoanID)
		assert.NoError(t, err)
		assert.Equal(t, models.LoanActive, got.Status)
	})

	t.Run("Listings", func(t *testing.T) {
		all, err := readRepo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 3)

		mine, err := readRepo.ListByUser(ctx, bob.UserID)
		assert.NoError(t, err)
		assert.Len(t, mine, 2)
	})
}
