// Package domain implements the calendar month grid.
//
// A month view is a fixed 6x7 grid of day cells starting on Sunday. Cells
// before the 1st belong to the previous month and cells after the last day
// belong to the next month, so the grid is always exactly 42 cells.
package domain

import (
	"fmt"
	"time"
)

// Grid dimensions. Six rows of seven weekdays cover every possible month.
const (
	GridRows  = 6
	GridCols  = 7
	GridCells = GridRows * GridCols
)

// Cell is one entry of the month grid. Months are 0-based (0 = January),
// matching the convention the mobile client uses. Cells are derived per
// call and never persisted.
type Cell struct {
	Day            int
	Month          int
	Year           int
	IsCurrentMonth bool
}

// DateString renders the cell's date as a zero-padded YYYY-MM-DD string,
// the same key format tasks are stored under.
func (c Cell) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month+1, c.Day)
}

// MonthGrid returns the 42-cell Sunday-start grid for the given year and
// 0-based month. The function is pure: the same (year, month) always yields
// the same grid. Out-of-range months are normalized by rolling the year,
// so (2024, 12) means January 2025 and (2024, -1) means December 2023.
func MonthGrid(year, month int) []Cell {
	year, month = normalizeMonth(year, month)

	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(first.Weekday()) // 0=Sunday .. 6=Saturday

	// Day 0 of the following month is the last day of this one.
	daysInMonth := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
	daysInPrevMonth := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()

	prevYear, prevMonth := normalizeMonth(year, month-1)
	nextYear, nextMonth := normalizeMonth(year, month+1)

	cells := make([]Cell, 0, GridCells)

	// Trailing days of the previous month fill the first row up to day 1.
	for i := firstWeekday - 1; i >= 0; i-- {
		cells = append(cells, Cell{
			Day:   daysInPrevMonth - i,
			Month: prevMonth,
			Year:  prevYear,
		})
	}

	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, Cell{
			Day:            day,
			Month:          month,
			Year:           year,
			IsCurrentMonth: true,
		})
	}

	// Leading days of the next month pad the grid to 42 cells.
	for day := 1; len(cells) < GridCells; day++ {
		cells = append(cells, Cell{
			Day:   day,
			Month: nextMonth,
			Year:  nextYear,
		})
	}

	return cells
}

// normalizeMonth folds an arbitrary 0-based month into [0, 11], rolling the
// year for each over- or underflow.
func normalizeMonth(year, month int) (int, int) {
	year += month / 12
	month %= 12
	if month < 0 {
		year--
		month += 12
	}
	return year, month
}
