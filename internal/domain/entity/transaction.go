// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction groups a set of expenses bought together at one location, such
// as a supermarket receipt. Its total is derived from the constituent expense
// amounts and is never stored.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Location  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID uuid.UUID, location string, date time.Time) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Location:  location,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransactionExpense is the join entity linking a transaction to one of its
// constituent expenses.
type TransactionExpense struct {
	TransactionID uuid.UUID
	ExpenseID     uuid.UUID
}

// TransactionWithExpenses represents a transaction together with its
// constituent expenses and the derived total.
type TransactionWithExpenses struct {
	Transaction *Transaction
	Expenses    []*Expense
	Total       decimal.Decimal
}

// ComputeTotal sums the amounts of the constituent expenses.
func (t *TransactionWithExpenses) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
