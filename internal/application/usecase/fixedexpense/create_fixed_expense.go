// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateFixedExpenseInput represents the input for fixed expense creation.
type CreateFixedExpenseInput struct {
	UserID         uuid.UUID
	Title          string
	Date           time.Time // Month anchor; day is normalized to 1
	AmountOfMonths int
	VaryingCosts   bool
	Amount         decimal.Decimal   // Flat amount, used when VaryingCosts is false
	AmountPerMonth []decimal.Decimal // One entry per covered month, head-first
	CategoryID     *uuid.UUID
}

// CreateFixedExpenseOutput represents the output of fixed expense creation.
type CreateFixedExpenseOutput struct {
	FixedExpense *FixedExpenseOutput
}

// CreateFixedExpenseUseCase materializes a recurring monthly obligation into
// one row per covered month, eagerly at write time. Pre-materializing keeps
// read-side aggregation oblivious to recurrence rules.
type CreateFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
	}
}

// Execute performs the fixed expense creation. The parent and all generated
// children are persisted atomically.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*CreateFixedExpenseOutput, error) {
	if err := validateVaryingCosts(input.VaryingCosts, input.AmountPerMonth, input.AmountOfMonths); err != nil {
		return nil, err
	}

	amount := input.Amount
	if input.VaryingCosts {
		amount = input.AmountPerMonth[0]
	}

	parent := entity.NewFixedExpense(
		input.UserID,
		input.Title,
		input.Date,
		amount,
		input.VaryingCosts,
		input.AmountOfMonths,
		input.CategoryID,
	)
	if input.VaryingCosts {
		parent.PerMonthAmounts = input.AmountPerMonth
	}

	children := BuildRecurrenceSchedule(parent, input.AmountPerMonth)

	if err := uc.fixedExpenseRepo.CreateWithChildren(ctx, parent, children); err != nil {
		return nil, fmt.Errorf("failed to create fixed expense: %w", err)
	}

	slog.Debug("Materialized fixed expense",
		"fixedExpenseID", parent.ID,
		"months", parent.AmountOfMonths,
		"varyingCosts", parent.VaryingCosts,
	)

	return &CreateFixedExpenseOutput{FixedExpense: toFixedExpenseOutput(parent, children)}, nil
}

// validateVaryingCosts checks that the per-month amount list covers every
// month when varying costs are enabled. This is a structural check; business
// validation happens at the request-binding layer.
func validateVaryingCosts(varying bool, perMonth []decimal.Decimal, months int) error {
	if varying && len(perMonth) != months {
		return domainerror.NewFixedExpenseError(
			domainerror.ErrCodeVaryingCostsMismatch,
			fmt.Sprintf("expected %d per-month amounts, got %d", months, len(perMonth)),
			domainerror.ErrVaryingCostsLengthMismatch,
		)
	}
	return nil
}
