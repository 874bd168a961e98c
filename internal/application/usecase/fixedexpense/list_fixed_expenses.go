// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ListFixedExpensesInput represents the input for listing fixed expenses.
type ListFixedExpensesInput struct {
	UserID uuid.UUID
}

// ListFixedExpensesOutput represents the output of listing fixed expenses.
type ListFixedExpensesOutput struct {
	FixedExpenses []*FixedExpenseOutput
}

// ListFixedExpensesUseCase lists a user's parent fixed expenses. Generated
// children are omitted; they are retrieved per parent.
type ListFixedExpensesUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
	}
}

// Execute retrieves the user's parent fixed expenses.
func (uc *ListFixedExpensesUseCase) Execute(ctx context.Context, input ListFixedExpensesInput) (*ListFixedExpensesOutput, error) {
	parents, err := uc.fixedExpenseRepo.FindParentsByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	output := &ListFixedExpensesOutput{FixedExpenses: make([]*FixedExpenseOutput, 0, len(parents))}
	for _, p := range parents {
		output.FixedExpenses = append(output.FixedExpenses, toFixedExpenseOutput(p, nil))
	}
	return output, nil
}
