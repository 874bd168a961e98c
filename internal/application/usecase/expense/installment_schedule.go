// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// BuildInstallmentSchedule materializes the installment children of a root
// expense. For a root with N installments it returns N-1 children, one per
// subsequent month, each hidden, owned by the root and carrying the same
// effective amount as the root.
//
// Child i (1-indexed) is dated at the root's month plus i, with the day forced
// to 1 and the time zeroed, regardless of the root's actual day-of-month. The
// year carries over naturally on month overflow.
//
// The function is pure: it persists nothing and depends only on the root.
func BuildInstallmentSchedule(root *entity.Expense) []*entity.Expense {
	if root.Installments <= 1 {
		return nil
	}

	children := make([]*entity.Expense, 0, root.Installments-1)
	for i := 1; i < root.Installments; i++ {
		rootID := root.ID
		children = append(children, &entity.Expense{
			ID:              uuid.New(),
			UserID:          root.UserID,
			Title:           root.Title,
			Amount:          root.Amount, // Kept for reference on every row
			Unit:            root.Unit,
			Installments:    root.Installments,
			Date:            installmentDate(root.Date, i),
			IsVisible:       false,
			AmountEffective: root.AmountEffective,
			ParentExpenseID: &rootID,
			CreatedAt:       root.CreatedAt,
			UpdatedAt:       root.UpdatedAt,
		})
	}
	return children
}

// installmentDate returns the first day of the month that lies monthsAhead
// months after the given date, at midnight UTC. Anchoring to day 1 before
// adding months avoids the AddDate normalization surprises around short
// months (for example Jan 31 + 1 month).
func installmentDate(date time.Time, monthsAhead int) time.Time {
	anchor := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return anchor.AddDate(0, monthsAhead, 0)
}
