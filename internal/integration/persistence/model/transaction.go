// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Location  string    `gorm:"type:varchar(255);not null"`
	Date      time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Location:  m.Location,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(txn *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        txn.ID,
		UserID:    txn.UserID,
		Location:  txn.Location,
		Date:      txn.Date,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// TransactionExpenseModel represents the transaction_expenses join table.
type TransactionExpenseModel struct {
	TransactionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpenseID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for the TransactionExpenseModel.
func (TransactionExpenseModel) TableName() string {
	return "transaction_expenses"
}
