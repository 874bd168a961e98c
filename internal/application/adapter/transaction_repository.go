// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for multi-item transaction
// persistence operations.
type TransactionRepository interface {
	// CreateWithExpenses creates the transaction, its constituent expenses and
	// the join rows in one atomic operation.
	CreateWithExpenses(ctx context.Context, transaction *entity.Transaction, expenses []*entity.Expense) error

	// FindByIDWithExpenses retrieves a transaction with its constituent
	// expenses.
	FindByIDWithExpenses(ctx context.Context, id uuid.UUID) (*entity.TransactionWithExpenses, error)

	// FindByUser retrieves all transactions for a user with their constituent
	// expenses, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithExpenses, error)

	// UpdateReplacingExpenses updates the transaction's scalar fields, deletes
	// ALL existing constituent expenses and creates the submitted replacement
	// set, in one atomic operation. No incremental diff is attempted.
	UpdateReplacingExpenses(ctx context.Context, transaction *entity.Transaction, expenses []*entity.Expense) error

	// DeleteWithExpenses deletes the transaction, its join rows and its
	// constituent expenses in one atomic operation.
	DeleteWithExpenses(ctx context.Context, id uuid.UUID) error
}
