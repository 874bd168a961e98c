// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense occurrence in the Expense Tracker system.
//
// An expense paid in N installments is stored as one visible root row plus N-1
// hidden child rows, one per subsequent month. The root and every child carry
// AmountEffective = Amount / N, which is the value aggregation queries sum over.
type Expense struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Amount          decimal.Decimal  // Total amount as entered by the user
	Unit            *decimal.Decimal // Optional price-per-item
	Installments    int              // >= 1
	Date            time.Time
	IsVisible       bool
	AmountEffective decimal.Decimal // Amount / Installments
	ParentExpenseID *uuid.UUID      // Set on installment children, nil on roots
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewExpense creates a new root Expense entity with its effective amount computed.
func NewExpense(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	unit *decimal.Decimal,
	installments int,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           title,
		Amount:          amount,
		Unit:            unit,
		Installments:    installments,
		Date:            date,
		IsVisible:       true,
		AmountEffective: EffectiveAmount(amount, installments),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// EffectiveAmount returns the per-occurrence value of an amount split over the
// given number of installments.
func EffectiveAmount(amount decimal.Decimal, installments int) decimal.Decimal {
	if installments <= 1 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(int64(installments)))
}

// IsRoot reports whether the expense is a user-visible root occurrence.
func (e *Expense) IsRoot() bool {
	return e.ParentExpenseID == nil
}

// ExpenseWithCategories represents an expense with its attached categories.
type ExpenseWithCategories struct {
	Expense    *Expense
	Categories []*Category
}
