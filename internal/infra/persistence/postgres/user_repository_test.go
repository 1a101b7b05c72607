package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t, "user_create_find")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		Username:    "Daniil",
		Email:       "daniil@example.com",
		Description: "keeps cats",
	}

	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Daniil", found.Username)
	assert.Equal(t, "daniil@example.com", found.Email)
	assert.Equal(t, "keeps cats", found.Description)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t, "user_find_email")
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Daniil", "daniil@example.com")

	found, err := repo.FindByEmail(ctx, "daniil@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Daniil", found.Username)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t, "user_not_found")
	repo := NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t, "user_dup_email")
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Daniil", "daniil@example.com")

	dup := &entity.User{
		Username: "Someone",
		Email:    "daniil@example.com",
	}
	err := repo.Create(ctx, dup)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_FindByFilter_MatchesAndTotal(t *testing.T) {
	db := setupTestDB(t, "user_filter")
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Daniil", "daniil@example.com")
	seedUser(t, db, "Daniil2", "daniil2@example.com")
	seedUser(t, db, "Alice", "alice@example.com")

	username := "Daniil"
	users, total, err := repo.FindByFilter(ctx, repository.UserFilter{Username: &username}, 10, 0)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "daniil@example.com", users[0].Email)
}

func TestUserRepository_FindByFilter_EmptyFilterReturnsAll(t *testing.T) {
	db := setupTestDB(t, "user_filter_all")
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "Daniil", "daniil@example.com")
	seedUser(t, db, "Alice", "alice@example.com")

	users, total, err := repo.FindByFilter(ctx, repository.UserFilter{}, 10, 0)

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(2), total)
}

func TestUserRepository_FindByFilter_Pagination(t *testing.T) {
	db := setupTestDB(t, "user_filter_page")
	repo := NewUserRepository(db)
	ctx := context.Background()

	description := "bulk"
	for i := 0; i < 5; i++ {
		user := &entity.User{
			Username:    "user" + string(rune('a'+i)),
			Email:       "user" + string(rune('a'+i)) + "@example.com",
			Description: description,
		}
		require.NoError(t, repo.Create(ctx, user))
	}

	filter := repository.UserFilter{Description: &description}

	// Total stays the full match count on every page; pages partition the matches.
	firstPage, total, err := repo.FindByFilter(ctx, filter, 2, 0)
	require.NoError(t, err)
	assert.Len(t, firstPage, 2)
	assert.Equal(t, int64(5), total)

	lastPage, total, err := repo.FindByFilter(ctx, filter, 2, 2)
	require.NoError(t, err)
	assert.Len(t, lastPage, 1)
	assert.Equal(t, int64(5), total)

	seen := map[uuid.UUID]bool{}
	for page := 0; page < 3; page++ {
		users, _, err := repo.FindByFilter(ctx, filter, 2, page)
		require.NoError(t, err)
		for _, u := range users {
			assert.False(t, seen[u.ID], "user appeared on more than one page")
			seen[u.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestUserRepository_Update_PreservesCreatedAtAdvancesUpdatedAt(t *testing.T) {
	db := setupTestDB(t, "user_update")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Daniil", "daniil@example.com")
	createdAt := user.CreatedAt
	updatedAt := user.UpdatedAt

	// Guard against the mutation landing in the same clock tick as the insert.
	time.Sleep(10 * time.Millisecond)

	user.Description = "updated"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", found.Description)
	assert.Equal(t, createdAt.Unix(), found.CreatedAt.Unix())
	assert.True(t, found.UpdatedAt.After(updatedAt), "updated_at must strictly increase on mutation")
}

func TestUserRepository_Delete_Idempotent(t *testing.T) {
	db := setupTestDB(t, "user_delete")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Daniil", "daniil@example.com")

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err := repo.FindByID(ctx, user.ID)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	// Deleting again, or deleting an ID that never existed, is a no-op.
	require.NoError(t, repo.Delete(ctx, user.ID))
	require.NoError(t, repo.Delete(ctx, uuid.New()))
}

func TestUserRepository_Delete_WithAddressBlocked(t *testing.T) {
	db := setupTestDB(t, "user_delete_restrict")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Daniil", "daniil@example.com")
	seedAddress(t, db, user)

	err := repo.Delete(ctx, user.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDependentsExist))

	// The user survives the failed delete.
	_, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
}
