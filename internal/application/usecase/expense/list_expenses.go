// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID uuid.UUID
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase lists a user's visible root expenses with their
// categories. Installment children are excluded; they only surface through
// aggregation.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the user's visible root expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	roots, err := uc.expenseRepo.FindRootsByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{Expenses: make([]*ExpenseOutput, 0, len(roots))}
	for _, r := range roots {
		output.Expenses = append(output.Expenses, toExpenseOutput(r.Expense, r.Categories))
	}
	return output, nil
}
