// Package handler provides HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"calendar_backend/internal/feature/tasks/domain/entity"
	"calendar_backend/internal/feature/tasks/transport/http/dto"
	"calendar_backend/internal/feature/tasks/usecase"
	jwtmw "calendar_backend/internal/platform/jwt"
)

// TaskUsecase defines the usecase for task operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	Create(ctx context.Context, content, date string, userID uint) (uint, error)
	ListAll(ctx context.Context) ([]entity.Task, error)
	ListByUser(ctx context.Context, userID uint, date string) ([]entity.Task, error)
	Update(ctx context.Context, id uint, content, date string) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /tasks.
// The task is owned by the authenticated user; invalid input responds 400.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}
	userID := c.GetUint(jwtmw.ContextUserID)

	id, err := h.tasks.Create(c.Request.Context(), req.Content, req.Date, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: err.Error()})
			return
		}
		slog.Error("task creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "failed to create task"})
		return
	}
	slog.Info("task created", "task_id", id, "user_id", userID, "date", req.Date)
	c.JSON(http.StatusCreated, dto.CreateTaskResp{ID: id})
}

// ListAll handles GET /tasks.
// Returns every task in the store; the client builds its date index from this.
func (h *TaskHandler) ListAll(c *gin.Context) {
	tasks, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("task listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(tasks))
}

// ListMine handles GET /tasks/mine?date=YYYY-MM-DD.
// Returns the authenticated user's tasks, optionally filtered to one date.
func (h *TaskHandler) ListMine(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	date := c.Query("date")

	tasks, err := h.tasks.ListByUser(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: err.Error()})
			return
		}
		slog.Error("task listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(tasks))
}

// Update handles PUT /tasks/:id.
// Responds 404 when no task has the given ID; the usecase reports the miss
// as a boolean, not an error.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}

	changed, err := h.tasks.Update(c.Request.Context(), id, req.Content, req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: err.Error()})
			return
		}
		slog.Error("task update failed", "error", err, "task_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "failed to update task"})
		return
	}
	if !changed {
		c.JSON(http.StatusNotFound, dto.ErrorResp{Error: "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /tasks/:id with the same existence semantics as Update.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	removed, err := h.tasks.Delete(c.Request.Context(), id)
	if err != nil {
		slog.Error("task deletion failed", "error", err, "task_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "failed to delete task"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, dto.ErrorResp{Error: "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// taskIDParam parses the :id route parameter, responding 400 on garbage.
func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid task id"})
		return 0, false
	}
	return uint(id), true
}
