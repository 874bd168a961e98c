// Package transaction contains multi-item transaction use cases.
package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory TransactionRepository.
type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	expenses     map[uuid.UUID][]*entity.Expense

	replaceCalls int
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		expenses:     make(map[uuid.UUID][]*entity.Expense),
	}
}

func (f *fakeTransactionRepository) CreateWithExpenses(_ context.Context, txn *entity.Transaction, expenses []*entity.Expense) error {
	f.transactions[txn.ID] = txn
	f.expenses[txn.ID] = expenses
	return nil
}

func (f *fakeTransactionRepository) FindByIDWithExpenses(_ context.Context, id uuid.UUID) (*entity.TransactionWithExpenses, error) {
	txn, ok := f.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &entity.TransactionWithExpenses{Transaction: txn, Expenses: f.expenses[id]}, nil
}

func (f *fakeTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.TransactionWithExpenses, error) {
	var result []*entity.TransactionWithExpenses
	for id, txn := range f.transactions {
		if txn.UserID == userID {
			result = append(result, &entity.TransactionWithExpenses{Transaction: txn, Expenses: f.expenses[id]})
		}
	}
	return result, nil
}

func (f *fakeTransactionRepository) UpdateReplacingExpenses(_ context.Context, txn *entity.Transaction, expenses []*entity.Expense) error {
	f.replaceCalls++
	f.transactions[txn.ID] = txn
	f.expenses[txn.ID] = expenses
	return nil
}

func (f *fakeTransactionRepository) DeleteWithExpenses(_ context.Context, id uuid.UUID) error {
	delete(f.transactions, id)
	delete(f.expenses, id)
	return nil
}

func TestCreateTransaction_TotalDerivedFromItems(t *testing.T) {
	repo := newFakeTransactionRepository()
	useCase := NewCreateTransactionUseCase(repo)

	output, err := useCase.Execute(context.Background(), CreateTransactionInput{
		UserID:   uuid.New(),
		Location: "Supermarket",
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Items: []TransactionItemInput{
			{Title: "Milk", Amount: decimal.RequireFromString("4.50")},
			{Title: "Bread", Amount: decimal.RequireFromString("3.25")},
			{Title: "Coffee", Amount: decimal.RequireFromString("12.00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "19.75", output.Transaction.Total.StringFixed(2))
	assert.Len(t, output.Transaction.Items, 3)
}

func TestCreateTransaction_ItemsBecomeSingleOccurrenceExpenses(t *testing.T) {
	repo := newFakeTransactionRepository()
	useCase := NewCreateTransactionUseCase(repo)

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	output, err := useCase.Execute(context.Background(), CreateTransactionInput{
		UserID:   uuid.New(),
		Location: "Hardware store",
		Date:     date,
		Items: []TransactionItemInput{
			{Title: "Screwdriver", Amount: decimal.RequireFromString("15.00")},
		},
	})

	require.NoError(t, err)

	stored := repo.expenses[output.Transaction.ID]
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].Installments)
	assert.True(t, stored[0].Date.Equal(date))
	assert.True(t, stored[0].AmountEffective.Equal(stored[0].Amount))
}

func TestCreateTransaction_RejectsEmptyItems(t *testing.T) {
	useCase := NewCreateTransactionUseCase(newFakeTransactionRepository())

	_, err := useCase.Execute(context.Background(), CreateTransactionInput{
		UserID:   uuid.New(),
		Location: "Supermarket",
		Date:     time.Now(),
	})

	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	assert.Equal(t, domainerror.ErrCodeEmptyTransactionExpenses, txnErr.Code)
}
