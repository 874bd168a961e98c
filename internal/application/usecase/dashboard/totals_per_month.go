// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// TotalsPerMonthInput represents the input for the monthly totals series.
type TotalsPerMonthInput struct {
	UserID     uuid.UUID
	StartDate  time.Time // Window starts the month AFTER this date
	MonthCount int
}

// MonthTotal is one point of the monthly totals series.
type MonthTotal struct {
	Period string  `json:"period"` // e.g. "February 2024"
	Total  float64 `json:"total"`  // Rounded to 2 decimals
}

// TotalsPerMonthOutput represents the chart-ready monthly series.
type TotalsPerMonthOutput struct {
	Totals []MonthTotal
}

// TotalsPerMonthUseCase computes expense totals over a rolling window of
// months. Each month is summed with its own query; the queries run
// concurrently and the results are folded back in chronological order.
type TotalsPerMonthUseCase struct {
	repo  Repository
	cache MonthlyTotalsCache // Optional; nil disables caching
}

// NewTotalsPerMonthUseCase creates a new TotalsPerMonthUseCase instance.
func NewTotalsPerMonthUseCase(repo Repository, cache MonthlyTotalsCache) *TotalsPerMonthUseCase {
	return &TotalsPerMonthUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Execute computes the monthly totals series. Months without expenses appear
// with a zero total; the result order matches the month sequence.
func (uc *TotalsPerMonthUseCase) Execute(ctx context.Context, input TotalsPerMonthInput) (*TotalsPerMonthOutput, error) {
	if input.StartDate.IsZero() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if input.MonthCount < 1 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthCount,
			fmt.Sprintf("invalid month count %d", input.MonthCount),
			domainerror.ErrInvalidMonthCount,
		)
	}

	cacheKey := fmt.Sprintf("%s:%s:%d", input.UserID, input.StartDate.Format("2006-01"), input.MonthCount)
	if uc.cache != nil {
		if totals, ok := uc.cache.Get(ctx, cacheKey); ok {
			return &TotalsPerMonthOutput{Totals: totals}, nil
		}
	}

	windows := MonthSequence(input.StartDate, input.MonthCount)
	totals := make([]MonthTotal, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			sum, err := uc.repo.SumEffectiveByDateRange(gctx, input.UserID, w.Start, w.End)
			if err != nil {
				return fmt.Errorf("failed to sum %s: %w", w.Label(), err)
			}
			rounded, _ := sum.Round(2).Float64()
			totals[i] = MonthTotal{Period: w.Label(), Total: rounded}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, cacheKey, totals)
		slog.Debug("Cached monthly totals", "key", cacheKey, "months", len(totals))
	}

	return &TotalsPerMonthOutput{Totals: totals}, nil
}
