// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/categorylink"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID    uuid.UUID
	UserID       uuid.UUID
	Title        string
	Amount       decimal.Decimal
	Unit         *decimal.Decimal
	Installments int
	Date         time.Time
	CategoryIDs  []uuid.UUID
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense updates. Changing the amount or the
// installment count discards every installment child and regenerates the
// series from the new values; title, date or category changes alone never
// touch the children.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	reconciler   *categorylink.ReconcileCategoriesUseCase
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	reconciler *categorylink.ReconcileCategoriesUseCase,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		reconciler:   reconciler,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	root, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if root.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to update this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if !root.IsRoot() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotARootExpense,
			"installment children cannot be updated directly",
			domainerror.ErrNotARootExpense,
		)
	}

	priorAmount := root.Amount
	priorInstallments := root.Installments

	root.Title = input.Title
	root.Amount = input.Amount
	root.Unit = input.Unit
	root.Installments = input.Installments
	root.Date = input.Date
	root.AmountEffective = entity.EffectiveAmount(input.Amount, input.Installments)
	root.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, root); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	// Diff-based reconciliation of the root's category links.
	if _, err := uc.reconciler.Execute(ctx, categorylink.ReconcileCategoriesInput{
		ExpenseID:   root.ID,
		CategoryIDs: input.CategoryIDs,
	}); err != nil {
		return nil, fmt.Errorf("failed to reconcile expense categories: %w", err)
	}

	// Children are regenerated only when the split itself changed.
	if !priorAmount.Equal(input.Amount) || priorInstallments != input.Installments {
		children := BuildInstallmentSchedule(root)
		if err := uc.expenseRepo.ReplaceChildren(ctx, root.ID, children, input.CategoryIDs); err != nil {
			return nil, fmt.Errorf("failed to regenerate installments: %w", err)
		}

		slog.Debug("Regenerated installment children",
			"expenseID", root.ID,
			"priorInstallments", priorInstallments,
			"installments", root.Installments,
		)
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, input.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense categories: %w", err)
	}

	return &UpdateExpenseOutput{Expense: toExpenseOutput(root, categories)}, nil
}
