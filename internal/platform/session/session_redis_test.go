package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar_backend/internal/feature/auth/domain/entity"
	"calendar_backend/internal/feature/auth/usecase"
)

func TestSessionRedis_FindByID(t *testing.T) {
	t.Parallel()

	stored := &entity.Session{
		ID:        "abc123",
		UserID:    7,
		UserAgent: "test-agent",
		IPAddress: "10.0.0.1",
		CreatedAt: time.Now().Add(-time.Hour).UTC().Truncate(time.Second),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("sessions:abc123").SetVal(string(payload))

	repo := NewSessionRedis(rdb, "sessions")
	got, err := repo.FindByID(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.UserID, got.UserID)
	assert.True(t, got.IsValid())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRedis_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("sessions:missing").RedisNil()

	repo := NewSessionRedis(rdb, "sessions")
	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRedis_Create_RejectsExpired(t *testing.T) {
	t.Parallel()

	rdb, _ := redismock.NewClientMock()
	repo := NewSessionRedis(rdb, "sessions")

	err := repo.Create(context.Background(), &entity.Session{
		ID:        "stale",
		UserID:    7,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	})

	assert.Error(t, err)
}

func TestSessionRedis_FindByUserID_PrunesDeadIDs(t *testing.T) {
	t.Parallel()

	alive := &entity.Session{
		ID:        "alive",
		UserID:    7,
		CreatedAt: time.Now().Add(-time.Hour).UTC(),
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	payload, err := json.Marshal(alive)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectSMembers("sessions:user:7").SetVal([]string{"alive", "dead"})
	mock.ExpectGet("sessions:alive").SetVal(string(payload))
	mock.ExpectGet("sessions:dead").RedisNil()
	mock.ExpectSRem("sessions:user:7", "dead").SetVal(1)

	repo := NewSessionRedis(rdb, "sessions")
	sessions, err := repo.FindByUserID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "alive", sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
