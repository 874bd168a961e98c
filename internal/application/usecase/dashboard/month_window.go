// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MonthWindow is the inclusive [Start, End] range covering one calendar month.
type MonthWindow struct {
	Month time.Month
	Year  int
	Start time.Time
	End   time.Time
}

// Label returns the window's display label, e.g. "February 2024".
func (w MonthWindow) Label() string {
	return fmt.Sprintf("%s %d", w.Month, w.Year)
}

// WindowForMonth returns the [start, end] window for the given month: the
// first of the month at midnight through the last day of the month at
// 23:59:59.999999999, both UTC.
func WindowForMonth(month time.Month, year int) (MonthWindow, error) {
	if month < time.January || month > time.December {
		return MonthWindow{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("invalid month %d", month),
			domainerror.ErrInvalidMonth,
		)
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return MonthWindow{Month: month, Year: year, Start: start, End: end}, nil
}

// MonthSequence returns count consecutive month windows starting the month
// after the given date.
func MonthSequence(after time.Time, count int) []MonthWindow {
	windows := make([]MonthWindow, 0, count)
	anchor := time.Date(after.Year(), after.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= count; i++ {
		start := anchor.AddDate(0, i, 0)
		windows = append(windows, MonthWindow{
			Month: start.Month(),
			Year:  start.Year(),
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		})
	}
	return windows
}
