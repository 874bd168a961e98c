// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FixedExpenseRepository defines the interface for fixed expense persistence
// operations. As with expenses, every multi-row mutation is a single method so
// it can be committed atomically.
type FixedExpenseRepository interface {
	// CreateWithChildren creates a parent fixed expense and all its generated
	// monthly children in one atomic operation.
	CreateWithChildren(ctx context.Context, parent *entity.FixedExpense, children []*entity.FixedExpense) error

	// FindByID retrieves a fixed expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error)

	// FindByIDWithChildren retrieves a parent fixed expense with its children
	// in chronological order.
	FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*entity.FixedExpenseWithChildren, error)

	// FindParentsByUser retrieves all parent fixed expenses for a user,
	// newest first.
	FindParentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedExpense, error)

	// UpdateAndReplaceChildren updates the parent row and replaces every
	// existing child with the given regenerated set in one atomic operation.
	UpdateAndReplaceChildren(ctx context.Context, parent *entity.FixedExpense, children []*entity.FixedExpense) error

	// DeleteWithChildren deletes the children first, then the parent, in one
	// atomic operation. Returns the deleted parent.
	DeleteWithChildren(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error)

	// CountChildren counts the generated children of a parent fixed expense.
	CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error)
}
