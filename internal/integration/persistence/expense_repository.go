// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a single expense row.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateWithChildren creates a root expense, its installment children and the
// category links for every created row in one transaction.
func (r *expenseRepository) CreateWithChildren(
	ctx context.Context,
	root *entity.Expense,
	children []*entity.Expense,
	categoryIDs []uuid.UUID,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ExpenseFromEntity(root)).Error; err != nil {
			return err
		}

		for _, child := range children {
			if err := tx.Create(model.ExpenseFromEntity(child)).Error; err != nil {
				return err
			}
		}

		return createCategoryLinks(tx, append([]*entity.Expense{root}, children...), categoryIDs)
	})
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindRootsByUser retrieves all visible root expenses for a user with their
// categories, newest first.
func (r *expenseRepository) FindRootsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategories, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND parent_expense_id IS NULL AND is_visible = ?", userID, true).
		Order("date DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithCategories, 0, len(expenseModels))
	for _, em := range expenseModels {
		var categoryModels []model.CategoryModel
		err := r.db.WithContext(ctx).
			Joins("JOIN expense_categories ec ON ec.category_id = categories.id").
			Where("ec.expense_id = ?", em.ID).
			Order("categories.title ASC").
			Find(&categoryModels).Error
		if err != nil {
			return nil, err
		}

		categories := make([]*entity.Category, 0, len(categoryModels))
		for _, cm := range categoryModels {
			categories = append(categories, cm.ToEntity())
		}

		expenses = append(expenses, &entity.ExpenseWithCategories{
			Expense:    em.ToEntity(),
			Categories: categories,
		})
	}
	return expenses, nil
}

// FindChildren retrieves the installment children of a root expense in
// chronological order.
func (r *expenseRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("parent_expense_id = ?", parentID).
		Order("date ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	children := make([]*entity.Expense, 0, len(expenseModels))
	for _, em := range expenseModels {
		children = append(children, em.ToEntity())
	}
	return children, nil
}

// CountChildren counts the installment children of a root expense.
func (r *expenseRepository) CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("parent_expense_id = ?", parentID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates the scalar fields of an existing expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).Save(model.ExpenseFromEntity(expense))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceChildren deletes every child of the root and creates the given
// replacement children with their category links in one transaction.
func (r *expenseRepository) ReplaceChildren(
	ctx context.Context,
	rootID uuid.UUID,
	children []*entity.Expense,
	categoryIDs []uuid.UUID,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var priorIDs []uuid.UUID
		if err := tx.Model(&model.ExpenseModel{}).
			Where("parent_expense_id = ?", rootID).
			Pluck("id", &priorIDs).Error; err != nil {
			return err
		}

		if len(priorIDs) > 0 {
			if err := tx.Where("expense_id IN ?", priorIDs).
				Delete(&model.ExpenseCategoryModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("parent_expense_id = ?", rootID).
				Delete(&model.ExpenseModel{}).Error; err != nil {
				return err
			}
		}

		for _, child := range children {
			if err := tx.Create(model.ExpenseFromEntity(child)).Error; err != nil {
				return err
			}
		}

		return createCategoryLinks(tx, children, categoryIDs)
	})
}

// DeleteWithChildren deletes a root expense, its children and all category
// links of the deleted rows in one transaction.
func (r *expenseRepository) DeleteWithChildren(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var childIDs []uuid.UUID
		if err := tx.Model(&model.ExpenseModel{}).
			Where("parent_expense_id = ?", id).
			Pluck("id", &childIDs).Error; err != nil {
			return err
		}

		doomed := append(childIDs, id)
		if err := tx.Where("expense_id IN ?", doomed).
			Delete(&model.ExpenseCategoryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_expense_id = ?", id).
			Delete(&model.ExpenseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ExpenseModel{}, "id = ?", id).Error
	})
}

// SumEffectiveByDateRange sums amount_effective over the user's expenses in
// the inclusive date window.
func (r *expenseRepository) SumEffectiveByDateRange(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("SUM(amount_effective)").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Scan(&sum)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// createCategoryLinks links every given expense to every given category,
// ignoring links that already exist.
func createCategoryLinks(tx *gorm.DB, expenses []*entity.Expense, categoryIDs []uuid.UUID) error {
	if len(expenses) == 0 || len(categoryIDs) == 0 {
		return nil
	}

	links := make([]model.ExpenseCategoryModel, 0, len(expenses)*len(categoryIDs))
	for _, e := range expenses {
		for _, cid := range categoryIDs {
			links = append(links, model.ExpenseCategoryModel{
				ExpenseID:  e.ID,
				CategoryID: cid,
			})
		}
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
