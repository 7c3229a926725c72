// Package dto defines data transfer objects for the calendar feature's HTTP transport layer.
package dto

import "calendar_backend/internal/feature/calendar/usecase"

// CellResp represents a single grid cell in the month view response.
type CellResp struct {
	Day            int    `json:"day"`
	Month          int    `json:"month"` // 0-based, 0=January
	Year           int    `json:"year"`
	Date           string `json:"date"` // YYYY-MM-DD
	IsCurrentMonth bool   `json:"is_current_month"`
	HasTask        bool   `json:"has_task"`
}

// MonthResp represents the month view response body.
type MonthResp struct {
	Year  int        `json:"year"`
	Month int        `json:"month"` // 0-based, 0=January
	Cells []CellResp `json:"cells"`
}

// ErrorResp represents a generic error response body.
type ErrorResp struct {
	Error string `json:"error"`
}

// FromMonthView converts a month view to its response representation.
func FromMonthView(v *usecase.MonthView) MonthResp {
	cells := make([]CellResp, 0, len(v.Cells))
	for _, c := range v.Cells {
		cells = append(cells, CellResp{
			Day:            c.Day,
			Month:          c.Month,
			Year:           c.Year,
			Date:           c.Date,
			IsCurrentMonth: c.IsCurrentMonth,
			HasTask:        c.HasTask,
		})
	}
	return MonthResp{Year: v.Year, Month: v.Month, Cells: cells}
}
