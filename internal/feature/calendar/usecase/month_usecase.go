// Package usecase implements the business logic for the calendar feature.
package usecase

import (
	"context"

	"calendar_backend/internal/feature/calendar/domain"
	taskentity "calendar_backend/internal/feature/tasks/domain/entity"
)

// TaskSource provides the tasks used to compute presence markers.
// It is satisfied by the tasks feature's usecase.
type TaskSource interface {
	ListAll(ctx context.Context) ([]taskentity.Task, error)
}

// CellView is a grid cell decorated with its date key and the presence marker.
type CellView struct {
	domain.Cell
	Date    string
	HasTask bool
}

// MonthView is the complete month grid for one user.
type MonthView struct {
	Year  int
	Month int // 0-based
	Cells []CellView
}

// MonthUsecase builds month views from the calendar grid and the task store.
type MonthUsecase struct {
	tasks TaskSource
}

// NewMonthUsecase creates a new MonthUsecase with the given task source.
func NewMonthUsecase(tasks TaskSource) *MonthUsecase {
	return &MonthUsecase{tasks: tasks}
}

// MonthView returns the 42-cell grid for (year, month) with per-date presence
// markers scoped to userID. Markers are computed from a single ListAll fetch
// grouped in memory; no per-cell storage access happens.
func (u *MonthUsecase) MonthView(ctx context.Context, year, month int, userID uint) (*MonthView, error) {
	all, err := u.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Only the user's own tasks produce markers; other users' tasks on the
	// same date stay invisible.
	dates := make(map[string]struct{})
	for _, t := range all {
		if t.UserID == userID {
			dates[t.Date] = struct{}{}
		}
	}

	grid := domain.MonthGrid(year, month)
	cells := make([]CellView, 0, len(grid))
	for _, cell := range grid {
		date := cell.DateString()
		_, hasTask := dates[date]
		cells = append(cells, CellView{
			Cell:    cell,
			Date:    date,
			HasTask: hasTask,
		})
	}

	return &MonthView{Year: year, Month: month, Cells: cells}, nil
}
