// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryLimit caps the category totals chart when no explicit limit
// is given.
const DefaultCategoryLimit = 6

// TotalsPerCategoryInput represents the input for per-category totals.
type TotalsPerCategoryInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
	Limit  int // Defaults to DefaultCategoryLimit when < 1

	// SkipOrphaned drops rows whose category no longer exists instead of
	// returning them with an empty title.
	SkipOrphaned bool
}

// CategoryTotal is one category's aggregated spending for the month.
type CategoryTotal struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Title      string    `json:"title"`
	Total      float64   `json:"total"`
}

// TotalsPerCategoryOutput represents the per-category totals for one month.
type TotalsPerCategoryOutput struct {
	Totals []CategoryTotal
}

// TotalsPerCategoryUseCase aggregates one month's spending grouped by
// category.
type TotalsPerCategoryUseCase struct {
	repo Repository
}

// NewTotalsPerCategoryUseCase creates a new TotalsPerCategoryUseCase instance.
func NewTotalsPerCategoryUseCase(repo Repository) *TotalsPerCategoryUseCase {
	return &TotalsPerCategoryUseCase{
		repo: repo,
	}
}

// Execute aggregates the month's totals per category, sorted ascending by
// total.
func (uc *TotalsPerCategoryUseCase) Execute(ctx context.Context, input TotalsPerCategoryInput) (*TotalsPerCategoryOutput, error) {
	window, err := WindowForMonth(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit < 1 {
		limit = DefaultCategoryLimit
	}

	rows, err := uc.repo.GetCategoryTotals(ctx, input.UserID, window.Start, window.End, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	totals := make([]CategoryTotal, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if row.Title == nil {
			if input.SkipOrphaned {
				skipped++
				continue
			}
			total, _ := row.Total.Round(2).Float64()
			totals = append(totals, CategoryTotal{CategoryID: row.CategoryID, Total: total})
			continue
		}
		total, _ := row.Total.Round(2).Float64()
		totals = append(totals, CategoryTotal{CategoryID: row.CategoryID, Title: *row.Title, Total: total})
	}

	if skipped > 0 {
		slog.Debug("Skipped orphaned category totals", "count", skipped, "userId", input.UserID)
	}

	return &TotalsPerCategoryOutput{Totals: totals}, nil
}
