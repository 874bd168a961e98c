// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
// Generated monthly children reference their parent through ParentExpenseID.
// PerMonthAmounts is stored as a text array of decimal strings and is only
// set on varying-cost parents.
type FixedExpenseModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Date            time.Time       `gorm:"not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	VaryingCosts    bool            `gorm:"not null;default:false"`
	AmountOfMonths  int             `gorm:"not null;default:1"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index"`
	IsParent        bool            `gorm:"not null;default:true"`
	ParentExpenseID *uuid.UUID      `gorm:"type:uuid;index"`
	PerMonthAmounts pq.StringArray  `gorm:"type:text[]"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedExpense entity.
func (m *FixedExpenseModel) ToEntity() *entity.FixedExpense {
	fe := &entity.FixedExpense{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Date:            m.Date,
		Amount:          m.Amount,
		VaryingCosts:    m.VaryingCosts,
		AmountOfMonths:  m.AmountOfMonths,
		CategoryID:      m.CategoryID,
		IsParent:        m.IsParent,
		ParentExpenseID: m.ParentExpenseID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if len(m.PerMonthAmounts) > 0 {
		fe.PerMonthAmounts = make([]decimal.Decimal, 0, len(m.PerMonthAmounts))
		for _, s := range m.PerMonthAmounts {
			if d, err := decimal.NewFromString(s); err == nil {
				fe.PerMonthAmounts = append(fe.PerMonthAmounts, d)
			}
		}
	}

	return fe
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedExpense entity.
func FixedExpenseFromEntity(fe *entity.FixedExpense) *FixedExpenseModel {
	m := &FixedExpenseModel{
		ID:              fe.ID,
		UserID:          fe.UserID,
		Title:           fe.Title,
		Date:            fe.Date,
		Amount:          fe.Amount,
		VaryingCosts:    fe.VaryingCosts,
		AmountOfMonths:  fe.AmountOfMonths,
		CategoryID:      fe.CategoryID,
		IsParent:        fe.IsParent,
		ParentExpenseID: fe.ParentExpenseID,
		CreatedAt:       fe.CreatedAt,
		UpdatedAt:       fe.UpdatedAt,
	}

	if len(fe.PerMonthAmounts) > 0 {
		m.PerMonthAmounts = make(pq.StringArray, len(fe.PerMonthAmounts))
		for i, d := range fe.PerMonthAmounts {
			m.PerMonthAmounts[i] = d.String()
		}
	}

	return m
}
