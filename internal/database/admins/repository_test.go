package admins

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santhiya0507/Shakespeare/internal/database"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db := database.New("", filepath.Join(t.TempDir(), "admins.db"))
	_, err := db.InitSchema()
	require.NoError(t, err)
	return NewRepository(db)
}

func TestRepository_Create(t *testing.T) {
	repo := setupTestRepo(t)

	admin, err := repo.Create("admin", "hash")
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "hash", admin.PasswordHash)
	assert.False(t, admin.CreatedAt.IsZero())
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Create("admin", "hash")
	require.NoError(t, err)

	_, err = repo.Create("admin", "other")
	assert.Error(t, err)

	var execErr *database.ExecutionError
	assert.ErrorAs(t, err, &execErr)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByUsername("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := repo.Create("mentor", "hash")
	require.NoError(t, err)

	found, err := repo.GetByUsername("mentor")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestRepository_List(t *testing.T) {
	repo := setupTestRepo(t)

	admins, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, admins)

	_, err = repo.Create("first", "h1")
	require.NoError(t, err)
	_, err = repo.Create("second", "h2")
	require.NoError(t, err)

	admins, err = repo.List()
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "first", admins[0].Username)
	assert.Equal(t, "second", admins[1].Username)
}

func TestRepository_UpdatePassword(t *testing.T) {
	repo := setupTestRepo(t)

	assert.ErrorIs(t, repo.UpdatePassword("ghost", "x"), ErrNotFound)

	_, err := repo.Create("admin", "old")
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePassword("admin", "new"))

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "new", admin.PasswordHash)
}
