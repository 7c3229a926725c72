package dto

import "calendar_backend/internal/feature/tasks/domain/entity"

// TaskResp represents a single task in API responses.
type TaskResp struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"`
	UserID  uint   `json:"user_id"`
}

// CreateTaskResp represents the response body for a successful task creation.
type CreateTaskResp struct {
	ID uint `json:"id"`
}

// ErrorResp represents a generic error response body.
type ErrorResp struct {
	Error string `json:"error"`
}

// FromEntity converts a task entity to its response representation.
func FromEntity(t entity.Task) TaskResp {
	return TaskResp{
		ID:      t.ID,
		Content: t.Content,
		Date:    t.Date,
		UserID:  t.UserID,
	}
}

// FromEntities converts a slice of task entities to response representations.
func FromEntities(tasks []entity.Task) []TaskResp {
	out := make([]TaskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromEntity(t))
	}
	return out
}
