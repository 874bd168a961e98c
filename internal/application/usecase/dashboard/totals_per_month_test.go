// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeDashboardRepository serves canned per-month sums keyed by window start.
type fakeDashboardRepository struct {
	mu       sync.Mutex
	sums     map[string]decimal.Decimal // keyed by start date "2006-01"
	sumCalls int

	categoryRows []RawCategoryTotal
	lastLimit    int
}

func newFakeDashboardRepository() *fakeDashboardRepository {
	return &fakeDashboardRepository{sums: make(map[string]decimal.Decimal)}
}

func (f *fakeDashboardRepository) setSum(year int, month time.Month, amount string) {
	key := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	f.sums[key] = decimal.RequireFromString(amount)
}

func (f *fakeDashboardRepository) SumEffectiveByDateRange(_ context.Context, _ uuid.UUID, start, _ time.Time) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sumCalls++
	if sum, ok := f.sums[start.Format("2006-01")]; ok {
		return sum, nil
	}
	return decimal.Zero, nil
}

func (f *fakeDashboardRepository) GetCategoryTotals(_ context.Context, _ uuid.UUID, _, _ time.Time, limit int) ([]RawCategoryTotal, error) {
	f.lastLimit = limit
	return f.categoryRows, nil
}

// memoryTotalsCache is a map-backed MonthlyTotalsCache.
type memoryTotalsCache struct {
	entries map[string][]MonthTotal
	hits    int
}

func newMemoryTotalsCache() *memoryTotalsCache {
	return &memoryTotalsCache{entries: make(map[string][]MonthTotal)}
}

func (c *memoryTotalsCache) Get(_ context.Context, key string) ([]MonthTotal, bool) {
	totals, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return totals, ok
}

func (c *memoryTotalsCache) Set(_ context.Context, key string, totals []MonthTotal) {
	c.entries[key] = totals
}

func TestTotalsPerMonth_ZeroFilledChronologicalSeries(t *testing.T) {
	repo := newFakeDashboardRepository()
	repo.setSum(2024, time.February, "300.00")
	repo.setSum(2024, time.April, "120.50")

	useCase := NewTotalsPerMonthUseCase(repo, nil)

	output, err := useCase.Execute(context.Background(), TotalsPerMonthInput{
		UserID:     uuid.New(),
		StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		MonthCount: 3,
	})

	require.NoError(t, err)
	require.Len(t, output.Totals, 3)

	assert.Equal(t, MonthTotal{Period: "February 2024", Total: 300}, output.Totals[0])
	assert.Equal(t, MonthTotal{Period: "March 2024", Total: 0}, output.Totals[1])
	assert.Equal(t, MonthTotal{Period: "April 2024", Total: 120.5}, output.Totals[2])
}

func TestTotalsPerMonth_MissingStartDate(t *testing.T) {
	useCase := NewTotalsPerMonthUseCase(newFakeDashboardRepository(), nil)

	_, err := useCase.Execute(context.Background(), TotalsPerMonthInput{
		UserID:     uuid.New(),
		MonthCount: 3,
	})

	var dashErr *domainerror.DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, domainerror.ErrCodeMissingStartDate, dashErr.Code)
}

func TestTotalsPerMonth_InvalidMonthCount(t *testing.T) {
	useCase := NewTotalsPerMonthUseCase(newFakeDashboardRepository(), nil)

	for _, count := range []int{0, -5} {
		_, err := useCase.Execute(context.Background(), TotalsPerMonthInput{
			UserID:     uuid.New(),
			StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			MonthCount: count,
		})

		var dashErr *domainerror.DashboardError
		require.ErrorAs(t, err, &dashErr)
		assert.Equal(t, domainerror.ErrCodeInvalidMonthCount, dashErr.Code)
	}
}

func TestTotalsPerMonth_CacheHitSkipsQueries(t *testing.T) {
	repo := newFakeDashboardRepository()
	repo.setSum(2024, time.February, "50.00")
	cache := newMemoryTotalsCache()
	useCase := NewTotalsPerMonthUseCase(repo, cache)

	input := TotalsPerMonthInput{
		UserID:     uuid.New(),
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthCount: 2,
	}

	first, err := useCase.Execute(context.Background(), input)
	require.NoError(t, err)
	queriesAfterFirst := repo.sumCalls

	second, err := useCase.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, queriesAfterFirst, repo.sumCalls, "cache hit must not query the store")
}

func TestTotalsPerMonth_InstallmentSplitLandsInEachMonth(t *testing.T) {
	// A 900 purchase in 3 installments contributes 300 to each covered month.
	repo := newFakeDashboardRepository()
	repo.setSum(2024, time.February, "300.00")
	repo.setSum(2024, time.March, "300.00")
	repo.setSum(2024, time.April, "300.00")

	useCase := NewTotalsPerMonthUseCase(repo, nil)

	output, err := useCase.Execute(context.Background(), TotalsPerMonthInput{
		UserID:     uuid.New(),
		StartDate:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		MonthCount: 3,
	})

	require.NoError(t, err)
	for _, point := range output.Totals {
		assert.Equal(t, 300.0, point.Total, "month %s", point.Period)
	}
}
