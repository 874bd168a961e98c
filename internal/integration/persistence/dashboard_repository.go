// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface.
type dashboardRepository struct {
	db      *gorm.DB
	expense *expenseRepository
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{
		db:      db,
		expense: &expenseRepository{db: db},
	}
}

// SumEffectiveByDateRange sums amount_effective over the user's expenses in
// the inclusive date window.
func (r *dashboardRepository) SumEffectiveByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return r.expense.SumEffectiveByDateRange(ctx, userID, start, end)
}

// categoryTotalRow is the scan target for the category totals query.
type categoryTotalRow struct {
	CategoryID uuid.UUID
	Title      *string
	Total      decimal.Decimal
}

// GetCategoryTotals joins the category link set against expense details and
// returns per-category sums of amount_effective sorted ascending. The join to
// categories is LEFT so links to deleted categories still surface, with a nil
// title.
func (r *dashboardRepository) GetCategoryTotals(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]dashboard.RawCategoryTotal, error) {
	var rows []categoryTotalRow
	err := r.db.WithContext(ctx).
		Model(&model.ExpenseCategoryModel{}).
		Select("expense_categories.category_id AS category_id, categories.title AS title, SUM(expenses.amount_effective) AS total").
		Joins("JOIN expenses ON expenses.id = expense_categories.expense_id").
		Joins("LEFT JOIN categories ON categories.id = expense_categories.category_id").
		Where("expenses.user_id = ? AND expenses.date BETWEEN ? AND ?", userID, start, end).
		Group("expense_categories.category_id, categories.title").
		Order("total ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]dashboard.RawCategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dashboard.RawCategoryTotal{
			CategoryID: row.CategoryID,
			Title:      row.Title,
			Total:      row.Total,
		})
	}
	return totals, nil
}
