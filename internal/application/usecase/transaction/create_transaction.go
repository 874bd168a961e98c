// Package transaction contains multi-item transaction use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// TransactionItemInput is one item of a submitted transaction.
type TransactionItemInput struct {
	Title  string
	Amount decimal.Decimal
	Unit   *decimal.Decimal
}

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Location string
	Date     time.Time
	Items    []TransactionItemInput
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles creation of a transaction together with
// its constituent expenses. Every item becomes a regular single-occurrence
// expense dated on the transaction date.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation. The transaction, its expenses
// and the join rows are persisted atomically.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionExpenses,
			"transaction must contain at least one expense",
			domainerror.ErrEmptyTransactionExpenses,
		)
	}

	txn := entity.NewTransaction(input.UserID, input.Location, input.Date)
	expenses := buildItemExpenses(txn, input.Items)

	if err := uc.transactionRepo.CreateWithExpenses(ctx, txn, expenses); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(&entity.TransactionWithExpenses{
			Transaction: txn,
			Expenses:    expenses,
		}),
	}, nil
}

// buildItemExpenses turns the submitted items into single-occurrence expense
// entities dated on the transaction date.
func buildItemExpenses(txn *entity.Transaction, items []TransactionItemInput) []*entity.Expense {
	expenses := make([]*entity.Expense, 0, len(items))
	for _, item := range items {
		expenses = append(expenses, entity.NewExpense(
			txn.UserID,
			item.Title,
			item.Amount,
			item.Unit,
			1,
			txn.Date,
		))
	}
	return expenses
}
