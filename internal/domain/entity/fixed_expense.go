// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedExpense represents a recurring monthly obligation.
//
// A parent row (IsParent = true) owns AmountOfMonths-1 child rows, one per
// subsequent month. Children carry either a copy of the parent's flat amount or
// their own per-month amount when VaryingCosts is set. All dates are anchored
// to day 1 at midnight UTC.
type FixedExpense struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Date            time.Time
	Amount          decimal.Decimal
	VaryingCosts    bool
	AmountOfMonths  int // >= 1
	CategoryID      *uuid.UUID
	IsParent        bool
	ParentExpenseID *uuid.UUID

	// PerMonthAmounts is the head-first per-month amount list of a
	// varying-costs parent; empty on flat parents and on children.
	PerMonthAmounts []decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFixedExpense creates a new parent FixedExpense entity with its anchor date
// normalized to the first of the month.
func NewFixedExpense(
	userID uuid.UUID,
	title string,
	date time.Time,
	amount decimal.Decimal,
	varyingCosts bool,
	amountOfMonths int,
	categoryID *uuid.UUID,
) *FixedExpense {
	now := time.Now().UTC()

	return &FixedExpense{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Date:           NormalizeToMonthStart(date),
		Amount:         amount,
		VaryingCosts:   varyingCosts,
		AmountOfMonths: amountOfMonths,
		CategoryID:     categoryID,
		IsParent:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NormalizeToMonthStart returns the first day of the date's month at midnight UTC.
func NormalizeToMonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FixedExpenseWithChildren represents a parent fixed expense and its generated
// monthly occurrences in chronological order.
type FixedExpenseWithChildren struct {
	Parent   *FixedExpense
	Children []*FixedExpense
}
