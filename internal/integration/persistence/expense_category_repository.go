// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseCategoryRepository implements the adapter.ExpenseCategoryRepository interface.
type expenseCategoryRepository struct {
	db *gorm.DB
}

// NewExpenseCategoryRepository creates a new expense-category link repository instance.
func NewExpenseCategoryRepository(db *gorm.DB) adapter.ExpenseCategoryRepository {
	return &expenseCategoryRepository{
		db: db,
	}
}

// FindCategoryIDsByExpense returns the category IDs currently linked to the expense.
func (r *expenseCategoryRepository) FindCategoryIDsByExpense(ctx context.Context, expenseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseCategoryModel{}).
		Where("expense_id = ?", expenseID).
		Pluck("category_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// Upsert creates the given links, ignoring ones that already exist.
func (r *expenseCategoryRepository) Upsert(ctx context.Context, links []entity.ExpenseCategory) error {
	if len(links) == 0 {
		return nil
	}

	models := make([]model.ExpenseCategoryModel, 0, len(links))
	for _, link := range links {
		models = append(models, model.ExpenseCategoryModel{
			ExpenseID:  link.ExpenseID,
			CategoryID: link.CategoryID,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models).Error
}

// Delete removes the given links.
func (r *expenseCategoryRepository) Delete(ctx context.Context, links []entity.ExpenseCategory) error {
	if len(links) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, link := range links {
			err := tx.Where("expense_id = ? AND category_id = ?", link.ExpenseID, link.CategoryID).
				Delete(&model.ExpenseCategoryModel{}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
