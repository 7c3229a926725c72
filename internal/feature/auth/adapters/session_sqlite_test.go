package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar_backend/internal/feature/auth/domain/entity"
	"calendar_backend/internal/feature/auth/usecase"
)

// newTestSession builds a valid session expiring in an hour.
func newTestSession(id string, userID uint, createdAt time.Time) *entity.Session {
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: createdAt,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionSQLite_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionSQLite(db)

	session := newTestSession("session-one", 1, time.Now())
	require.NoError(t, repo.Create(context.Background(), session))

	found, err := repo.FindByID(context.Background(), "session-one")

	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, session.UserID, found.UserID)
	assert.True(t, found.IsValid())
}

func TestSessionSQLite_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionSQLite(db)

	found, err := repo.FindByID(context.Background(), "missing")

	assert.Nil(t, found)
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionSQLite_Revoke(t *testing.T) {
	t.Run("revoked session is no longer valid", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionSQLite(db)

		require.NoError(t, repo.Create(context.Background(), newTestSession("s1", 1, time.Now())))
		require.NoError(t, repo.Revoke(context.Background(), "s1"))

		found, err := repo.FindByID(context.Background(), "s1")
		require.NoError(t, err)
		assert.True(t, found.IsRevoked())
	})

	t.Run("revoking an unknown session returns ErrSessionNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionSQLite(db)

		err := repo.Revoke(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionSQLite_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionSQLite(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("a1", 1, time.Now().Add(-2*time.Minute))))
	require.NoError(t, repo.Create(ctx, newTestSession("a2", 1, time.Now().Add(-time.Minute))))
	require.NoError(t, repo.Create(ctx, newTestSession("b1", 2, time.Now())))
	require.NoError(t, repo.Revoke(ctx, "a2"))

	sessions, err := repo.FindByUserID(ctx, 1)

	require.NoError(t, err)
	require.Len(t, sessions, 1, "revoked and foreign sessions are excluded")
	assert.Equal(t, "a1", sessions[0].ID)
}

func TestSessionSQLite_CountByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionSQLite(db)
	ctx := context.Background()

	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(ctx, newTestSession("c1", 1, time.Now())))
	require.NoError(t, repo.Create(ctx, newTestSession("c2", 1, time.Now())))

	count, err = repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSessionSQLite_DeleteOldestByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionSQLite(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSession("old", 1, time.Now().Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, newTestSession("new", 1, time.Now())))

	require.NoError(t, repo.DeleteOldestByUserID(ctx, 1))

	_, err := repo.FindByID(ctx, "old")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "oldest session should be gone")

	_, err = repo.FindByID(ctx, "new")
	assert.NoError(t, err, "newest session should remain")
}

func TestSessionSQLite_DeleteOldestByUserID_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionSQLite(db)

	// No sessions at all: a no-op, not an error.
	assert.NoError(t, repo.DeleteOldestByUserID(context.Background(), 1))
}
