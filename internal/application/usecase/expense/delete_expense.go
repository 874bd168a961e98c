// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion. Deleting a root cascades to
// its installment children; the repository commits the cascade atomically.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.UserID != input.UserID {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to delete this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if err := uc.expenseRepo.DeleteWithChildren(ctx, expense.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
