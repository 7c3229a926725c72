package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "calendar_backend/internal/feature/auth/domain/entity"
	"calendar_backend/internal/feature/tasks/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with a seeded user.
func setupTestDB(t *testing.T) (*gorm.DB, uint) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&authentity.User{}, &entity.Task{})
	require.NoError(t, err, "failed to migrate tables")

	user := &authentity.User{Name: "owner", Password: "hashed"}
	require.NoError(t, db.Create(user).Error, "failed to seed user")

	return db, user.ID
}

func TestTaskSQLite_Create(t *testing.T) {
	db, userID := setupTestDB(t)
	repo := NewTaskSQLite(db)

	task := &entity.Task{Content: "buy milk", Date: "2024-02-10", UserID: userID}
	err := repo.Create(context.Background(), task)

	require.NoError(t, err)
	assert.NotZero(t, task.ID, "ID is not set")

	// The new task shows up in the owner's list, filtered to its date.
	tasks, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Content)
	assert.Equal(t, "2024-02-10", tasks[0].Date)
}

func TestTaskSQLite_ListAll(t *testing.T) {
	db, userID := setupTestDB(t)
	repo := NewTaskSQLite(db)
	ctx := context.Background()

	other := &authentity.User{Name: "other", Password: "hashed"}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, repo.Create(ctx, &entity.Task{Content: "a", Date: "2024-02-10", UserID: userID}))
	require.NoError(t, repo.Create(ctx, &entity.Task{Content: "b", Date: "2024-02-10", UserID: other.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Task{Content: "c", Date: "2024-02-11", UserID: userID}))

	all, err := repo.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, all, 3, "ListAll returns every user's tasks")
}

// TestTaskSQLite_QueryPathsAgree verifies that grouping ListAll by date and
// filtering by user yields the same tasks as ListByUser filtered to that date.
func TestTaskSQLite_QueryPathsAgree(t *testing.T) {
	db, userID := setupTestDB(t)
	repo := NewTaskSQLite(db)
	ctx := context.Background()

	other := &authentity.User{Name: "other", Password: "hashed"}
	require.NoError(t, db.Create(other).Error)

	seed := []entity.Task{
		{Content: "mine early", Date: "2024-03-01", UserID: userID},
		{Content: "mine same day", Date: "2024-03-01", UserID: userID},
		{Content: "mine later", Date: "2024-03-05", UserID: userID},
		{Content: "theirs", Date: "2024-03-01", UserID: other.ID},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	const date = "2024-03-01"

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	viaAll := map[uint]bool{}
	for _, task := range all {
		if task.Date == date && task.UserID == userID {
			viaAll[task.ID] = true
		}
	}

	mine, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	viaUser := map[uint]bool{}
	for _, task := range mine {
		if task.Date == date {
			viaUser[task.ID] = true
		}
	}

	assert.Equal(t, viaAll, viaUser, "the two query paths must agree")
	assert.Len(t, viaUser, 2)
}

func TestTaskSQLite_Update(t *testing.T) {
	t.Run("existing task is overwritten", func(t *testing.T) {
		db, userID := setupTestDB(t)
		repo := NewTaskSQLite(db)
		ctx := context.Background()

		task := &entity.Task{Content: "draft", Date: "2024-02-10", UserID: userID}
		require.NoError(t, repo.Create(ctx, task))

		changed, err := repo.Update(ctx, task.ID, "new text", "2024-03-01")

		require.NoError(t, err)
		assert.True(t, changed, "update should report a changed row")

		tasks, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "new text", tasks[0].Content)
		assert.Equal(t, "2024-03-01", tasks[0].Date)
	})

	t.Run("missing id reports false, not an error", func(t *testing.T) {
		db, _ := setupTestDB(t)
		repo := NewTaskSQLite(db)

		changed, err := repo.Update(context.Background(), 9999, "text", "2024-03-01")

		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestTaskSQLite_Delete(t *testing.T) {
	db, userID := setupTestDB(t)
	repo := NewTaskSQLite(db)
	ctx := context.Background()

	task := &entity.Task{Content: "temp", Date: "2024-02-10", UserID: userID}
	require.NoError(t, repo.Create(ctx, task))

	removed, err := repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, removed, "first delete should report a removed row")

	tasks, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, tasks, "deleted task should be gone")

	// Deleting the same id twice reports false the second time.
	removed, err = repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestTaskSQLite_ListByUser_Empty(t *testing.T) {
	db, userID := setupTestDB(t)
	repo := NewTaskSQLite(db)

	tasks, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, tasks, "empty slice, not an error")
}
