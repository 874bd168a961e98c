// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BuildRecurrenceSchedule materializes the monthly children of a parent fixed
// expense. For a parent covering M months it returns M-1 children, one per
// subsequent month, each dated on the first of its month.
//
// When the parent has varying costs, perMonthAmounts supplies one amount per
// covered month head-first; the head entry belongs to the parent itself and
// child i takes perMonthAmounts[i]. With flat costs every child copies the
// parent's amount.
//
// The function is pure: it persists nothing and depends only on its arguments.
// Callers must validate that perMonthAmounts has AmountOfMonths entries when
// varying costs are enabled.
func BuildRecurrenceSchedule(parent *entity.FixedExpense, perMonthAmounts []decimal.Decimal) []*entity.FixedExpense {
	if parent.AmountOfMonths <= 1 {
		return nil
	}

	children := make([]*entity.FixedExpense, 0, parent.AmountOfMonths-1)
	for i := 1; i < parent.AmountOfMonths; i++ {
		amount := parent.Amount
		if parent.VaryingCosts && i < len(perMonthAmounts) {
			amount = perMonthAmounts[i]
		}

		parentID := parent.ID
		children = append(children, &entity.FixedExpense{
			ID:              uuid.New(),
			UserID:          parent.UserID,
			Title:           parent.Title,
			Date:            parent.Date.AddDate(0, i, 0),
			Amount:          amount,
			VaryingCosts:    parent.VaryingCosts,
			AmountOfMonths:  parent.AmountOfMonths,
			CategoryID:      parent.CategoryID,
			IsParent:        false,
			ParentExpenseID: &parentID,
			CreatedAt:       parent.CreatedAt,
			UpdatedAt:       parent.UpdatedAt,
		})
	}
	return children
}
