// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func newParent(amount string, varying bool, months int, date time.Time) *entity.FixedExpense {
	return entity.NewFixedExpense(
		uuid.New(),
		"Rent",
		date,
		decimal.RequireFromString(amount),
		varying,
		months,
		nil,
	)
}

func TestBuildRecurrenceSchedule_SingleMonth(t *testing.T) {
	parent := newParent("1200.00", false, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	children := BuildRecurrenceSchedule(parent, nil)

	if children != nil {
		t.Errorf("expected no children for a single month, got %d", len(children))
	}
}

func TestBuildRecurrenceSchedule_FlatCosts(t *testing.T) {
	parent := newParent("1200.00", false, 4, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	children := BuildRecurrenceSchedule(parent, nil)

	if len(children) != 3 {
		t.Fatalf("expected 3 children for 4 months, got %d", len(children))
	}

	want := []time.Time{
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, child := range children {
		if !child.Date.Equal(want[i]) {
			t.Errorf("child %d: expected date %s, got %s", i, want[i], child.Date)
		}
		if !child.Amount.Equal(parent.Amount) {
			t.Errorf("child %d: expected flat amount %s, got %s", i, parent.Amount, child.Amount)
		}
		if child.IsParent {
			t.Errorf("child %d: expected IsParent to be false", i)
		}
		if child.ParentExpenseID == nil || *child.ParentExpenseID != parent.ID {
			t.Errorf("child %d: expected parent ID %s", i, parent.ID)
		}
	}
}

func TestBuildRecurrenceSchedule_VaryingCosts(t *testing.T) {
	parent := newParent("100.00", true, 3, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	perMonth := []decimal.Decimal{
		decimal.RequireFromString("100.00"), // parent's own month
		decimal.RequireFromString("110.00"),
		decimal.RequireFromString("95.50"),
	}

	children := BuildRecurrenceSchedule(parent, perMonth)

	if len(children) != 2 {
		t.Fatalf("expected 2 children for 3 months, got %d", len(children))
	}
	if !children[0].Amount.Equal(perMonth[1]) {
		t.Errorf("expected first child amount 110.00, got %s", children[0].Amount)
	}
	if !children[1].Amount.Equal(perMonth[2]) {
		t.Errorf("expected second child amount 95.50, got %s", children[1].Amount)
	}
}

func TestBuildRecurrenceSchedule_YearRollover(t *testing.T) {
	parent := newParent("80.00", false, 3, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC))

	children := BuildRecurrenceSchedule(parent, nil)

	want := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, child := range children {
		if !child.Date.Equal(want[i]) {
			t.Errorf("child %d: expected date %s, got %s", i, want[i], child.Date)
		}
	}
}

func TestNewFixedExpense_NormalizesAnchorDate(t *testing.T) {
	parent := newParent("50.00", false, 2, time.Date(2024, 7, 23, 14, 45, 0, 0, time.UTC))

	want := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if !parent.Date.Equal(want) {
		t.Errorf("expected anchor date %s, got %s", want, parent.Date)
	}
	if !parent.IsParent {
		t.Error("expected new fixed expense to be a parent")
	}
}
