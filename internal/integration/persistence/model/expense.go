// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database. Installment
// children reference their root through ParentExpenseID and carry
// IsVisible=false.
type ExpenseModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title           string           `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal  `gorm:"type:numeric(14,4);not null"`
	Unit            *decimal.Decimal `gorm:"type:numeric(14,4)"`
	Installments    int              `gorm:"not null;default:1"`
	Date            time.Time        `gorm:"not null;index"`
	IsVisible       bool             `gorm:"not null;default:true"`
	AmountEffective decimal.Decimal  `gorm:"type:numeric(14,4);not null"`
	ParentExpenseID *uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Amount:          m.Amount,
		Unit:            m.Unit,
		Installments:    m.Installments,
		Date:            m.Date,
		IsVisible:       m.IsVisible,
		AmountEffective: m.AmountEffective,
		ParentExpenseID: m.ParentExpenseID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:              expense.ID,
		UserID:          expense.UserID,
		Title:           expense.Title,
		Amount:          expense.Amount,
		Unit:            expense.Unit,
		Installments:    expense.Installments,
		Date:            expense.Date,
		IsVisible:       expense.IsVisible,
		AmountEffective: expense.AmountEffective,
		ParentExpenseID: expense.ParentExpenseID,
		CreatedAt:       expense.CreatedAt,
		UpdatedAt:       expense.UpdatedAt,
	}
}

// ExpenseCategoryModel represents the expense_categories join table.
type ExpenseCategoryModel struct {
	ExpenseID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for the ExpenseCategoryModel.
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}
