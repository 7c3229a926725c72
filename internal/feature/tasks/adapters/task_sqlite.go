// Package adapters provides repository implementations for the tasks feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"calendar_backend/internal/feature/tasks/domain/entity"
	"calendar_backend/internal/feature/tasks/usecase"
)

// taskSQLite is a SQLite implementation of the TaskRepository interface.
type taskSQLite struct {
	db *gorm.DB
}

// Compile-time check that taskSQLite implements TaskRepository.
var _ usecase.TaskRepository = (*taskSQLite)(nil)

// NewTaskSQLite creates a new taskSQLite instance with the given gorm.DB connection.
func NewTaskSQLite(db *gorm.DB) *taskSQLite {
	return &taskSQLite{db: db}
}

// Create inserts a task into the database. GORM backfills the assigned ID.
func (r *taskSQLite) Create(ctx context.Context, task *entity.Task) error {
	// Omit the association so creating a task never upserts the user row.
	return r.db.WithContext(ctx).Omit("User").Create(task).Error
}

// ListAll returns every task in the store.
func (r *taskSQLite) ListAll(ctx context.Context) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByUser returns all tasks owned by userID, ordered by date.
func (r *taskSQLite) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update overwrites content and date for the task with the given ID.
// The boolean reports whether a row matched; a miss is not an error.
func (r *taskSQLite) Update(ctx context.Context, id uint, content, date string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"content": content, "date": date})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the task with the given ID, reporting whether a row was removed.
func (r *taskSQLite) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Task{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
