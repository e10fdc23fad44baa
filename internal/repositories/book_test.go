package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

func TestBookWriteRepository_SaveAndUpdate(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db, nil)
	ctx := context.Background()

	isbn := "978-0618260300"
	book, err := writeRepo.Save(ctx, models.BookDB{
		Title:           "The Hobbit",
		Author:          "J.R.R. Tolkien",
		ISBN:            &isbn,
		TotalCopies:     3,
		AvailableCopies: 3,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, book.BookID)
	assert.Equal(t, 3, book.AvailableCopies)

	book.Title = "The Hobbit, or There and Back Again"
	book.TotalCopies = 5
	book.AvailableCopies = 5
	updated, err := writeRepo.Update(ctx, *book)
	assert.NoError(t, err)
	assert.Equal(t, "The Hobbit, or There and Back Again", updated.Title)
	assert.Equal(t, 5, updated.TotalCopies)

	got, err := readRepo.GetByID(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, updated.Title, got.Title)
}

func TestBookReadRepository_ListAndCount(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db, nil)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, models.BookDB{Title: "Dune", Author: "Frank Herbert", TotalCopies: 1, AvailableCopies: 1})
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.BookDB{Title: "Dune Messiah", Author: "Frank Herbert", TotalCopies: 1, AvailableCopies: 1})
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.BookDB{Title: "Neuromancer", Author: "William Gibson", TotalCopies: 1, AvailableCopies: 1})
	assert.NoError(t, err)

	t.Run("all", func(t *testing.T) {
		books, err := readRepo.List(ctx, "", 10, 0)
		assert.NoError(t, err)
		assert.Len(t, books, 3)

		total, err := readRepo.Count(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("search by title", func(t *testing.T) {
		books, err := readRepo.List(ctx, "dune", 10, 0)
		assert.NoError(t, err)
		assert.Len(t, books, 2)

		total, err := readRepo.Count(ctx, "dune")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("search by author", func(t *testing.T) {
		books, err := readRepo.List(ctx, "gibson", 10, 0)
		assert.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("pagination", func(t *testing.T) {
		books, err := readRepo.List(ctx, "", 2, 0)
		assert.NoError(t, err)
		assert.Len(t, books, 2)

		books, err = readRepo.List(ctx, "", 2, 2)
		assert.NoError(t, err)
		assert.Len(t, books, 1)
	})
}

func TestBookWriteRepository_DecrementAvailable(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	ctx := context.Background()

	book := seedBook(t, db, 2, 2)

	available, err := writeRepo.DecrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, 1, available)

	available, err = writeRepo.DecrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, 0, available)

	// Guard: no copy left means no row matched
	_, err = writeRepo.DecrementAvailable(ctx, book.BookID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestBookWriteRepository_IncrementAvailable_CapsAtTotal(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	ctx := context.Background()

	book := seedBook(t, db, 2, 1)

	available, err := writeRepo.IncrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, 2, available)

	// Already at total_copies: the cap holds
	available, err = writeRepo.IncrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestBookWriteRepository_Delete_Cascades(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db, nil)
	reservationWrite := NewReservationWriteRepository(db, nil)
	reservationRead := NewReservationReadRepository(db, nil)
	ctx := context.Background()

	user := seedUser(t, db, "eve")
	book := seedBook(t, db, 1, 1)

	reservation, err := reservationWrite.Save(ctx, models.ReservationDB{
		UserID:          user.UserID,
		BookID:          book.BookID,
		ReservationDate: book.CreatedAt,
		Status:          models.ReservationPending,
		ExpiryDate:      book.CreatedAt.Add(models.ReservationHoldPeriod),
	})
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.Delete(ctx, book.BookID))

	got, err := readRepo.GetByID(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	gotReservation, err := reservationRead.GetByID(ctx, reservation.ReservationID)
	assert.NoError(t, err)
	assert.Nil(t, gotReservation)

	// Deleting again reports the missing row
	assert.ErrorIs(t, writeRepo.Delete(ctx, book.BookID), sql.ErrNoRows)
}
