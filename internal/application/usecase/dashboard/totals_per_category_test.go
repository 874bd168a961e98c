// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }

func TestTotalsPerCategory_ReturnsRoundedTotals(t *testing.T) {
	groceries := uuid.New()
	transport := uuid.New()

	repo := newFakeDashboardRepository()
	repo.categoryRows = []RawCategoryTotal{
		{CategoryID: transport, Title: strPtr("Transport"), Total: decimal.RequireFromString("45.456")},
		{CategoryID: groceries, Title: strPtr("Groceries"), Total: decimal.RequireFromString("312.10")},
	}

	useCase := NewTotalsPerCategoryUseCase(repo)

	output, err := useCase.Execute(context.Background(), TotalsPerCategoryInput{
		UserID: uuid.New(),
		Month:  time.February,
		Year:   2024,
	})

	require.NoError(t, err)
	require.Len(t, output.Totals, 2)
	assert.Equal(t, CategoryTotal{CategoryID: transport, Title: "Transport", Total: 45.46}, output.Totals[0])
	assert.Equal(t, CategoryTotal{CategoryID: groceries, Title: "Groceries", Total: 312.1}, output.Totals[1])
}

func TestTotalsPerCategory_DefaultLimit(t *testing.T) {
	repo := newFakeDashboardRepository()
	useCase := NewTotalsPerCategoryUseCase(repo)

	_, err := useCase.Execute(context.Background(), TotalsPerCategoryInput{
		UserID: uuid.New(),
		Month:  time.March,
		Year:   2024,
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultCategoryLimit, repo.lastLimit)
}

func TestTotalsPerCategory_ExplicitLimit(t *testing.T) {
	repo := newFakeDashboardRepository()
	useCase := NewTotalsPerCategoryUseCase(repo)

	_, err := useCase.Execute(context.Background(), TotalsPerCategoryInput{
		UserID: uuid.New(),
		Month:  time.March,
		Year:   2024,
		Limit:  12,
	})

	require.NoError(t, err)
	assert.Equal(t, 12, repo.lastLimit)
}

func TestTotalsPerCategory_OrphanedRows(t *testing.T) {
	orphan := uuid.New()
	kept := uuid.New()

	repo := newFakeDashboardRepository()
	repo.categoryRows = []RawCategoryTotal{
		{CategoryID: orphan, Title: nil, Total: decimal.RequireFromString("20.00")},
		{CategoryID: kept, Title: strPtr("Rent"), Total: decimal.RequireFromString("800.00")},
	}

	useCase := NewTotalsPerCategoryUseCase(repo)

	t.Run("skipped when requested", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), TotalsPerCategoryInput{
			UserID:       uuid.New(),
			Month:        time.May,
			Year:         2024,
			SkipOrphaned: true,
		})

		require.NoError(t, err)
		require.Len(t, output.Totals, 1)
		assert.Equal(t, kept, output.Totals[0].CategoryID)
	})

	t.Run("kept with empty title by default", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), TotalsPerCategoryInput{
			UserID: uuid.New(),
			Month:  time.May,
			Year:   2024,
		})

		require.NoError(t, err)
		require.Len(t, output.Totals, 2)
		assert.Equal(t, orphan, output.Totals[0].CategoryID)
		assert.Empty(t, output.Totals[0].Title)
	})
}

func TestTotalsPerCategory_InvalidMonth(t *testing.T) {
	useCase := NewTotalsPerCategoryUseCase(newFakeDashboardRepository())

	_, err := useCase.Execute(context.Background(), TotalsPerCategoryInput{
		UserID: uuid.New(),
		Month:  13,
		Year:   2024,
	})

	var dashErr *domainerror.DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, domainerror.ErrCodeInvalidMonth, dashErr.Code)
}
