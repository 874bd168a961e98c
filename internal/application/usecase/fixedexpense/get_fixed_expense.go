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

// GetFixedExpenseInput represents the input for retrieving a fixed expense.
type GetFixedExpenseInput struct {
	FixedExpenseID uuid.UUID
	UserID         uuid.UUID
}

// GetFixedExpenseOutput represents the retrieved fixed expense with children.
type GetFixedExpenseOutput struct {
	FixedExpense *FixedExpenseOutput
}

// GetFixedExpenseUseCase retrieves a parent fixed expense with its generated
// monthly series.
type GetFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewGetFixedExpenseUseCase creates a new GetFixedExpenseUseCase instance.
func NewGetFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *GetFixedExpenseUseCase {
	return &GetFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
	}
}

// Execute retrieves the fixed expense.
func (uc *GetFixedExpenseUseCase) Execute(ctx context.Context, input GetFixedExpenseInput) (*GetFixedExpenseOutput, error) {
	result, err := uc.fixedExpenseRepo.FindByIDWithChildren(ctx, input.FixedExpenseID)
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

	if result.Parent.UserID != input.UserID {
		return nil, domainerror.NewFixedExpenseError(
			domainerror.ErrCodeNotAuthorizedFixedExpense,
			"not authorized to view this fixed expense",
			domainerror.ErrNotAuthorizedToModifyFixedExpense,
		)
	}

	return &GetFixedExpenseOutput{FixedExpense: toFixedExpenseOutput(result.Parent, result.Children)}, nil
}
