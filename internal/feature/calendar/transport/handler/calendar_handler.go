// Package handler provides HTTP handlers for the calendar feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"calendar_backend/internal/feature/calendar/transport/http/dto"
	"calendar_backend/internal/feature/calendar/usecase"
	jwtmw "calendar_backend/internal/platform/jwt"
)

// MonthViewer defines the usecase for building month views.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MonthViewer interface {
	MonthView(ctx context.Context, year, month int, userID uint) (*usecase.MonthView, error)
}

// CalendarHandler handles HTTP requests for the calendar month view.
type CalendarHandler struct {
	months MonthViewer
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(months MonthViewer) *CalendarHandler {
	return &CalendarHandler{months: months}
}

// Month handles GET /calendar/:year/:month.
//
// The month parameter is 0-based (0 = January), matching the client's
// convention. Presence markers are scoped to the authenticated user.
func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 0 || month > 11 {
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid month, expected 0-11"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)

	view, err := h.months.MonthView(c.Request.Context(), year, month, userID)
	if err != nil {
		slog.Error("month view failed", "error", err, "year", year, "month", month, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "failed to build month view"})
		return
	}
	c.JSON(http.StatusOK, dto.FromMonthView(view))
}
