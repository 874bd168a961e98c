// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FixedExpenseOutput represents a fixed expense in use case outputs.
type FixedExpenseOutput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Date            time.Time
	Amount          decimal.Decimal
	VaryingCosts    bool
	AmountOfMonths  int
	CategoryID      *uuid.UUID
	IsParent        bool
	ParentExpenseID *uuid.UUID
	Children        []*FixedExpenseOutput
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// toFixedExpenseOutput converts a parent and its children to an output.
func toFixedExpenseOutput(parent *entity.FixedExpense, children []*entity.FixedExpense) *FixedExpenseOutput {
	out := toSingleOutput(parent)
	for _, c := range children {
		out.Children = append(out.Children, toSingleOutput(c))
	}
	return out
}

func toSingleOutput(fe *entity.FixedExpense) *FixedExpenseOutput {
	return &FixedExpenseOutput{
		ID:              fe.ID,
		UserID:          fe.UserID,
		Title:           fe.Title,
		Date:            fe.Date,
		Amount:          fe.Amount,
		VaryingCosts:    fe.VaryingCosts,
		AmountOfMonths:  fe.AmountOfMonths,
		CategoryID:      fe.CategoryID,
		IsParent:        fe.IsParent,
		ParentExpenseID: fe.ParentExpenseID,
		CreatedAt:       fe.CreatedAt,
		UpdatedAt:       fe.UpdatedAt,
	}
}
