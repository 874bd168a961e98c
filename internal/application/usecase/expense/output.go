// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseOutput represents an expense in use case outputs.
type ExpenseOutput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Amount          decimal.Decimal
	Unit            *decimal.Decimal
	Installments    int
	Date            time.Time
	IsVisible       bool
	AmountEffective decimal.Decimal
	ParentExpenseID *uuid.UUID
	Categories      []CategoryOutput
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CategoryOutput represents a category attached to an expense.
type CategoryOutput struct {
	ID    uuid.UUID
	Title string
}

// toExpenseOutput converts a domain expense and its categories to an output.
func toExpenseOutput(e *entity.Expense, categories []*entity.Category) *ExpenseOutput {
	out := &ExpenseOutput{
		ID:              e.ID,
		UserID:          e.UserID,
		Title:           e.Title,
		Amount:          e.Amount,
		Unit:            e.Unit,
		Installments:    e.Installments,
		Date:            e.Date,
		IsVisible:       e.IsVisible,
		AmountEffective: e.AmountEffective,
		ParentExpenseID: e.ParentExpenseID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, CategoryOutput{ID: c.ID, Title: c.Title})
	}
	return out
}
