// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawCategoryTotal is one category's aggregated spending as read from the
// store. Title is nil when the category has since been deleted; the use case
// decides whether such rows are dropped.
type RawCategoryTotal struct {
	CategoryID uuid.UUID
	Title      *string
	Total      decimal.Decimal
}

// Repository defines the data access the dashboard use cases need.
type Repository interface {
	// SumEffectiveByDateRange sums amount_effective over the user's expenses
	// whose date falls within [start, end] inclusive. Returns zero when no
	// rows match.
	SumEffectiveByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// GetCategoryTotals joins the category link set against expense details,
	// filters by the date window and user, and returns per-category sums of
	// amount_effective sorted ascending, at most limit rows.
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]RawCategoryTotal, error)
}

// MonthlyTotalsCache caches computed monthly totals series. Implementations
// must treat failures as misses; the dashboard never fails on cache errors.
type MonthlyTotalsCache interface {
	Get(ctx context.Context, key string) ([]MonthTotal, bool)
	Set(ctx context.Context, key string, totals []MonthTotal)
}
