// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteFixedExpenseInput represents the input for fixed expense deletion.
type DeleteFixedExpenseInput struct {
	FixedExpenseID uuid.UUID
	UserID         uuid.UUID
}

// DeleteFixedExpenseOutput carries the deleted parent record.
type DeleteFixedExpenseOutput struct {
	FixedExpense *FixedExpenseOutput
}

// DeleteFixedExpenseUseCase deletes a parent fixed expense, cascading to its
// generated children. Children are deleted first, then the parent.
type DeleteFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
	}
}

// Execute performs the fixed expense deletion and returns the deleted parent.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) (*DeleteFixedExpenseOutput, error) {
	parent, err := uc.fixedExpenseRepo.FindByID(ctx, input.FixedExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
			return nil, domainerror.NewFixedExpenseError(
				domainerror.ErrCodeFixedExpenseNotFound,
				"fixed expense not found",
				domainerror.ErrFixedExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed expense: %w", err)
	}

	if parent.UserID != input.UserID {
		return nil, domainerror.NewFixedExpenseError(
			domainerror.ErrCodeNotAuthorizedFixedExpense,
			"not authorized to delete this fixed expense",
			domainerror.ErrNotAuthorizedToModifyFixedExpense,
		)
	}

	deleted, err := uc.fixedExpenseRepo.DeleteWithChildren(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	return &DeleteFixedExpenseOutput{FixedExpense: toFixedExpenseOutput(deleted, nil)}, nil
}
