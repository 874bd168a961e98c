// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
//
// Multi-row operations (root plus installment children, child replacement,
// cascade delete) are each a single method so the implementation can commit
// them atomically.
type ExpenseRepository interface {
	// Create creates a single expense row. Used for transaction constituents
	// that never expand into installments.
	Create(ctx context.Context, expense *entity.Expense) error

	// CreateWithChildren creates a root expense, its installment children and
	// the category links for every created row in one atomic operation.
	CreateWithChildren(
		ctx context.Context,
		root *entity.Expense,
		children []*entity.Expense,
		categoryIDs []uuid.UUID,
	) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindRootsByUser retrieves all visible root expenses for a user with
	// their categories, newest first.
	FindRootsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategories, error)

	// FindChildren retrieves the installment children of a root expense in
	// chronological order.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Expense, error)

	// CountChildren counts the installment children of a root expense.
	CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error)

	// Update updates the scalar fields of an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// ReplaceChildren deletes every child of the root and creates the given
	// replacement children with their category links in one atomic operation.
	ReplaceChildren(
		ctx context.Context,
		rootID uuid.UUID,
		children []*entity.Expense,
		categoryIDs []uuid.UUID,
	) error

	// DeleteWithChildren deletes a root expense, its children and all category
	// links of the deleted rows in one atomic operation.
	DeleteWithChildren(ctx context.Context, id uuid.UUID) error

	// SumEffectiveByDateRange sums amount_effective over the user's expenses
	// whose date falls within [start, end] inclusive. Returns zero when no
	// rows match.
	SumEffectiveByDateRange(
		ctx context.Context,
		userID uuid.UUID,
		start, end time.Time,
	) (decimal.Decimal, error)
}
