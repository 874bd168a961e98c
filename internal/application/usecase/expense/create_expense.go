// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
//
// Business validation (amount > 0, installments >= 1, at most
// entity.MaxCategoriesPerExpense categories) happens at the request-binding
// layer; this use case assumes validated input.
type CreateExpenseInput struct {
	UserID       uuid.UUID
	Title        string
	Amount       decimal.Decimal
	Unit         *decimal.Decimal
	Installments int
	Date         time.Time
	CategoryIDs  []uuid.UUID
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation, expanding "pay in N
// installments" into N persisted rows with consistent dates and a consistent
// monetary split.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense creation. The root, its installment children
// and the category links of every created row are persisted atomically.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	root := entity.NewExpense(
		input.UserID,
		input.Title,
		input.Amount,
		input.Unit,
		input.Installments,
		input.Date,
	)

	children := BuildInstallmentSchedule(root)

	if err := uc.expenseRepo.CreateWithChildren(ctx, root, children, input.CategoryIDs); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if len(children) > 0 {
		slog.Debug("Expanded expense into installments",
			"expenseID", root.ID,
			"installments", root.Installments,
			"amountEffective", root.AmountEffective,
		)
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, input.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense categories: %w", err)
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(root, categories)}, nil
}
