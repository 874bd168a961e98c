// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithExpenses creates the transaction, its constituent expenses and
// the join rows in one transaction.
func (r *transactionRepository) CreateWithExpenses(ctx context.Context, txn *entity.Transaction, expenses []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(txn)).Error; err != nil {
			return err
		}
		return createConstituents(tx, txn.ID, expenses)
	})
}

// FindByIDWithExpenses retrieves a transaction with its constituent expenses.
func (r *transactionRepository) FindByIDWithExpenses(ctx context.Context, id uuid.UUID) (*entity.TransactionWithExpenses, error) {
	var txnModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}

	expenses, err := r.findConstituents(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entity.TransactionWithExpenses{
		Transaction: txnModel.ToEntity(),
		Expenses:    expenses,
	}, nil
}

// FindByUser retrieves all transactions for a user with their constituent
// expenses, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithExpenses, error) {
	var txnModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithExpenses, 0, len(txnModels))
	for _, tm := range txnModels {
		expenses, err := r.findConstituents(ctx, tm.ID)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, &entity.TransactionWithExpenses{
			Transaction: tm.ToEntity(),
			Expenses:    expenses,
		})
	}
	return transactions, nil
}

// UpdateReplacingExpenses updates the transaction's scalar fields, deletes all
// existing constituent expenses and creates the submitted replacement set, in
// one transaction.
func (r *transactionRepository) UpdateReplacingExpenses(ctx context.Context, txn *entity.Transaction, expenses []*entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.TransactionFromEntity(txn)).Error; err != nil {
			return err
		}
		if err := deleteConstituents(tx, txn.ID); err != nil {
			return err
		}
		return createConstituents(tx, txn.ID, expenses)
	})
}

// DeleteWithExpenses deletes the transaction, its join rows and its
// constituent expenses in one transaction.
func (r *transactionRepository) DeleteWithExpenses(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteConstituents(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.TransactionModel{}, "id = ?", id).Error
	})
}

// findConstituents loads the expenses joined to the transaction.
func (r *transactionRepository) findConstituents(ctx context.Context, txnID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Joins("JOIN transaction_expenses te ON te.expense_id = expenses.id").
		Where("te.transaction_id = ?", txnID).
		Order("expenses.created_at ASC").
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for _, em := range expenseModels {
		expenses = append(expenses, em.ToEntity())
	}
	return expenses, nil
}

// createConstituents persists the expenses and their join rows.
func createConstituents(tx *gorm.DB, txnID uuid.UUID, expenses []*entity.Expense) error {
	for _, e := range expenses {
		if err := tx.Create(model.ExpenseFromEntity(e)).Error; err != nil {
			return err
		}
		join := model.TransactionExpenseModel{TransactionID: txnID, ExpenseID: e.ID}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteConstituents removes the transaction's join rows and expenses.
func deleteConstituents(tx *gorm.DB, txnID uuid.UUID) error {
	var expenseIDs []uuid.UUID
	if err := tx.Model(&model.TransactionExpenseModel{}).
		Where("transaction_id = ?", txnID).
		Pluck("expense_id", &expenseIDs).Error; err != nil {
		return err
	}

	if err := tx.Where("transaction_id = ?", txnID).
		Delete(&model.TransactionExpenseModel{}).Error; err != nil {
		return err
	}
	if len(expenseIDs) > 0 {
		if err := tx.Where("id IN ?", expenseIDs).
			Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
	}
	return nil
}
