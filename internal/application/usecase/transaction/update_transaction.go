// Package transaction contains multi-item transaction use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a transaction update. Items
// is the complete replacement set, not a diff.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Location      string
	Date          time.Time
	Items         []TransactionItemInput
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction updates. The constituent
// expense set is replaced wholesale: every prior expense is deleted and the
// submitted items are created fresh.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update atomically.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionExpenses,
			"transaction must contain at least one expense",
			domainerror.ErrEmptyTransactionExpenses,
		)
	}

	existing, err := uc.transactionRepo.FindByIDWithExpenses(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if existing.Transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	txn := existing.Transaction
	txn.Location = input.Location
	txn.Date = input.Date
	txn.UpdatedAt = time.Now().UTC()

	expenses := buildItemExpenses(txn, input.Items)

	if err := uc.transactionRepo.UpdateReplacingExpenses(ctx, txn, expenses); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(&entity.TransactionWithExpenses{
			Transaction: txn,
			Expenses:    expenses,
		}),
	}, nil
}
