// Package transaction contains multi-item transaction use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionItemOutput is one constituent expense of a transaction.
type TransactionItemOutput struct {
	ID     uuid.UUID
	Title  string
	Amount decimal.Decimal
	Unit   *decimal.Decimal
}

// TransactionOutput is the transaction representation returned by this package.
type TransactionOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Location  string
	Date      time.Time
	Total     decimal.Decimal
	Items     []*TransactionItemOutput
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toTransactionOutput(t *entity.TransactionWithExpenses) *TransactionOutput {
	items := make([]*TransactionItemOutput, 0, len(t.Expenses))
	for _, e := range t.Expenses {
		items = append(items, &TransactionItemOutput{
			ID:     e.ID,
			Title:  e.Title,
			Amount: e.Amount,
			Unit:   e.Unit,
		})
	}

	return &TransactionOutput{
		ID:        t.Transaction.ID,
		UserID:    t.Transaction.UserID,
		Location:  t.Transaction.Location,
		Date:      t.Transaction.Date,
		Total:     t.ComputeTotal(),
		Items:     items,
		CreatedAt: t.Transaction.CreatedAt,
		UpdatedAt: t.Transaction.UpdatedAt,
	}
}
