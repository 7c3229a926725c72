package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"calendar_backend/internal/feature/auth/domain"
	authentity "calendar_backend/internal/feature/auth/domain/entity"
	"calendar_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// ListAll retrieves every task in the store.
	ListAll(ctx context.Context) ([]entity.Task, error)

	// ListByUser retrieves all tasks owned by the given user.
	// An empty slice, not an error, when the user has none.
	ListByUser(ctx context.Context, userID uint) ([]entity.Task, error)

	// Update overwrites content and date for the task with the given ID.
	// It reports whether a row was actually changed.
	Update(ctx context.Context, id uint, content, date string) (bool, error)

	// Delete removes the task with the given ID.
	// It reports whether a row was actually removed.
	Delete(ctx context.Context, id uint) (bool, error)
}

// UserFinder resolves user IDs against the user store.
// It is satisfied by the auth feature's UserRepository.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// TaskUsecase provides business logic for task operations.
type TaskUsecase struct {
	tasks TaskRepository
	users UserFinder
}

// NewTaskUsecase creates a new TaskUsecase with the given repositories.
func NewTaskUsecase(tasks TaskRepository, users UserFinder) *TaskUsecase {
	return &TaskUsecase{tasks: tasks, users: users}
}

// ValidateDate reports whether s is a well-formed zero-padded YYYY-MM-DD date.
func ValidateDate(s string) error {
	parsed, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return ErrMalformedDate
	}
	// time.Parse tolerates unpadded components; require the canonical form
	// so lexicographic ordering of stored dates stays chronological.
	if parsed.Format(entity.DateLayout) != s {
		return ErrMalformedDate
	}
	return nil
}

// Create validates and persists a new task, returning the assigned ID.
// It rejects blank content, malformed dates and unknown users with
// errors wrapping ErrInvalidInput.
func (u *TaskUsecase) Create(ctx context.Context, content, date string, userID uint) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyContent
	}
	if err := ValidateDate(date); err != nil {
		return 0, err
	}
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, ErrUnknownUser
		}
		return 0, err
	}

	task := &entity.Task{Content: content, Date: date, UserID: userID}
	if err := u.tasks.Create(ctx, task); err != nil {
		return 0, err
	}
	return task.ID, nil
}

// ListAll returns every task in the store.
// Callers group the result by date to build whole-month presence indexes.
func (u *TaskUsecase) ListAll(ctx context.Context) ([]entity.Task, error) {
	return u.tasks.ListAll(ctx)
}

// ListByUser returns all tasks owned by userID, optionally filtered to a single date.
// An empty date string means no date filter.
func (u *TaskUsecase) ListByUser(ctx context.Context, userID uint, date string) ([]entity.Task, error) {
	if date != "" {
		if err := ValidateDate(date); err != nil {
			return nil, err
		}
	}
	tasks, err := u.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return tasks, nil
	}
	filtered := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == date {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Update overwrites content and date of an existing task.
// It reports false, not an error, when no task has the given ID:
// existence-check-by-effect is the intended contract.
func (u *TaskUsecase) Update(ctx context.Context, id uint, content, date string) (bool, error) {
	if strings.TrimSpace(content) == "" {
		return false, ErrEmptyContent
	}
	if err := ValidateDate(date); err != nil {
		return false, err
	}
	return u.tasks.Update(ctx, id, content, date)
}

// Delete removes a task by ID, reporting whether a row was removed.
// Deleting an already-deleted task reports false, not an error.
func (u *TaskUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	return u.tasks.Delete(ctx, id)
}
