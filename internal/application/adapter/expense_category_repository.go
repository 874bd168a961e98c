// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseCategoryRepository defines the interface for the expense-category
// join set. Links are keyed by the composite (expense_id, category_id) and are
// never updated in place.
type ExpenseCategoryRepository interface {
	// FindCategoryIDsByExpense returns the category IDs currently linked to
	// the expense.
	FindCategoryIDsByExpense(ctx context.Context, expenseID uuid.UUID) ([]uuid.UUID, error)

	// Upsert creates the given links, ignoring ones that already exist so a
	// no-op resubmission never fails on the composite key.
	Upsert(ctx context.Context, links []entity.ExpenseCategory) error

	// Delete removes the given links.
	Delete(ctx context.Context, links []entity.ExpenseCategory) error
}
