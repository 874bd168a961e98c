// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateFixedExpenseInput represents the input for fixed expense update.
type UpdateFixedExpenseInput struct {
	FixedExpenseID uuid.UUID
	UserID         uuid.UUID
	Title          string
	Date           time.Time
	AmountOfMonths int
	VaryingCosts   bool
	Amount         decimal.Decimal
	AmountPerMonth []decimal.Decimal
	CategoryID     *uuid.UUID
}

// UpdateFixedExpenseOutput represents the output of fixed expense update.
type UpdateFixedExpenseOutput struct {
	FixedExpense *FixedExpenseOutput
}

// UpdateFixedExpenseUseCase handles fixed expense updates with a full-replace
// strategy: every existing child is deleted unconditionally and the series is
// regenerated from the updated definition. Manual edits previously made to an
// individual child are lost on every parent update.
type UpdateFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewUpdateFixedExpenseUseCase creates a new UpdateFixedExpenseUseCase instance.
func NewUpdateFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *UpdateFixedExpenseUseCase {
	return &UpdateFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
	}
}

// Execute performs the fixed expense update. The parent update, child purge
// and regeneration commit atomically.
func (uc *UpdateFixedExpenseUseCase) Execute(ctx context.Context, input UpdateFixedExpenseInput) (*UpdateFixedExpenseOutput, error) {
	if err := validateVaryingCosts(input.VaryingCosts, input.AmountPerMonth, input.AmountOfMonths); err != nil {
		return nil, err
	}

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
			"not authorized to update this fixed expense",
			domainerror.ErrNotAuthorizedToModifyFixedExpense,
		)
	}

	amount := input.Amount
	if input.VaryingCosts {
		amount = input.AmountPerMonth[0]
	}

	parent.Title = input.Title
	parent.Date = entity.NormalizeToMonthStart(input.Date)
	parent.Amount = amount
	parent.VaryingCosts = input.VaryingCosts
	parent.AmountOfMonths = input.AmountOfMonths
	parent.CategoryID = input.CategoryID
	parent.IsParent = true
	parent.PerMonthAmounts = nil
	if input.VaryingCosts {
		parent.PerMonthAmounts = input.AmountPerMonth
	}
	parent.UpdatedAt = time.Now().UTC()

	children := BuildRecurrenceSchedule(parent, input.AmountPerMonth)

	if err := uc.fixedExpenseRepo.UpdateAndReplaceChildren(ctx, parent, children); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	slog.Debug("Regenerated fixed expense series",
		"fixedExpenseID", parent.ID,
		"months", parent.AmountOfMonths,
	)

	return &UpdateFixedExpenseOutput{FixedExpense: toFixedExpenseOutput(parent, children)}, nil
}
