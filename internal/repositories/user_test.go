package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-catalog/internal/models"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := repo.Save(ctx, "alice", "alice@example.com", "hash123", models.RoleUser)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)

	// Unique username
	_, err = repo.Save(ctx, "alice", "other@example.com", "hash123", models.RoleUser)
	assert.Error(t, err)

	// Unique email
	_, err = repo.Save(ctx, "alice2", "alice@example.com", "hash123", models.RoleUser)
	assert.Error(t, err)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db, nil)
	ctx := context.Background()

	charlie, err := writeRepo.Save(ctx, "charlie", "charlie@example.com", "secret", models.RoleUser)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "dave", "dave@example.com", "secret2", models.RoleAdmin)
	assert.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, charlie.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "dave")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("NotFoundIsNil", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("List", func(t *testing.T) {
		users, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})
}
