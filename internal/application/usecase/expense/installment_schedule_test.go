// Package expense contains expense-related use cases.
package expense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func newRootExpense(amount string, installments int, date time.Time) *entity.Expense {
	return entity.NewExpense(
		uuid.New(),
		"Laptop",
		decimal.RequireFromString(amount),
		nil,
		installments,
		date,
	)
}

func TestBuildInstallmentSchedule_SingleInstallment(t *testing.T) {
	root := newRootExpense("100.00", 1, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	children := BuildInstallmentSchedule(root)

	if children != nil {
		t.Errorf("expected no children for a single installment, got %d", len(children))
	}
	if !root.AmountEffective.Equal(root.Amount) {
		t.Errorf("expected effective amount %s, got %s", root.Amount, root.AmountEffective)
	}
}

func TestBuildInstallmentSchedule_ExpandsIntoHiddenChildren(t *testing.T) {
	root := newRootExpense("900.00", 3, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	children := BuildInstallmentSchedule(root)

	if len(children) != 2 {
		t.Fatalf("expected 2 children for 3 installments, got %d", len(children))
	}

	expected := decimal.RequireFromString("300")
	if !root.AmountEffective.Equal(expected) {
		t.Errorf("expected root effective amount 300, got %s", root.AmountEffective)
	}

	for i, child := range children {
		if child.IsVisible {
			t.Errorf("child %d: expected hidden child", i)
		}
		if child.ParentExpenseID == nil || *child.ParentExpenseID != root.ID {
			t.Errorf("child %d: expected parent ID %s", i, root.ID)
		}
		if child.UserID != root.UserID {
			t.Errorf("child %d: expected owner %s, got %s", i, root.UserID, child.UserID)
		}
		if !child.AmountEffective.Equal(expected) {
			t.Errorf("child %d: expected effective amount 300, got %s", i, child.AmountEffective)
		}
		if !child.Amount.Equal(root.Amount) {
			t.Errorf("child %d: expected full amount %s, got %s", i, root.Amount, child.Amount)
		}
		if child.Title != root.Title {
			t.Errorf("child %d: expected title %q, got %q", i, root.Title, child.Title)
		}
	}
}

func TestBuildInstallmentSchedule_DatesAreFirstOfSubsequentMonths(t *testing.T) {
	root := newRootExpense("600.00", 3, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))

	children := BuildInstallmentSchedule(root)

	want := []time.Time{
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, child := range children {
		if !child.Date.Equal(want[i]) {
			t.Errorf("child %d: expected date %s, got %s", i, want[i], child.Date)
		}
	}
}

func TestBuildInstallmentSchedule_MonthEndDoesNotSkewDates(t *testing.T) {
	// Jan 31 must produce Feb 1 and Mar 1, never a March double-up from
	// AddDate normalization.
	root := newRootExpense("300.00", 3, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	children := BuildInstallmentSchedule(root)

	want := []time.Time{
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, child := range children {
		if !child.Date.Equal(want[i]) {
			t.Errorf("child %d: expected date %s, got %s", i, want[i], child.Date)
		}
	}
}

func TestBuildInstallmentSchedule_YearRollover(t *testing.T) {
	root := newRootExpense("400.00", 4, time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC))

	children := BuildInstallmentSchedule(root)

	want := []time.Time{
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	for i, child := range children {
		if !child.Date.Equal(want[i]) {
			t.Errorf("child %d: expected date %s, got %s", i, want[i], child.Date)
		}
	}
}

func TestBuildInstallmentSchedule_NonDivisibleAmountSplitsExactly(t *testing.T) {
	root := newRootExpense("100.00", 3, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	children := BuildInstallmentSchedule(root)

	// decimal division keeps the split exact enough that summing the rounded
	// per-month values reconstructs the original within a cent.
	total := root.AmountEffective
	for _, child := range children {
		total = total.Add(child.AmountEffective)
	}
	if !total.Round(2).Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected effective amounts to sum back to 100.00, got %s", total.Round(2))
	}
}
