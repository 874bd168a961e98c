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

// fixedExpenseRepository implements the adapter.FixedExpenseRepository interface.
type fixedExpenseRepository struct {
	db *gorm.DB
}

// NewFixedExpenseRepository creates a new fixed expense repository instance.
func NewFixedExpenseRepository(db *gorm.DB) adapter.FixedExpenseRepository {
	return &fixedExpenseRepository{
		db: db,
	}
}

// CreateWithChildren creates a parent fixed expense and all its generated
// monthly children in one transaction.
func (r *fixedExpenseRepository) CreateWithChildren(ctx context.Context, parent *entity.FixedExpense, children []*entity.FixedExpense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.FixedExpenseFromEntity(parent)).Error; err != nil {
			return err
		}
		for _, child := range children {
			if err := tx.Create(model.FixedExpenseFromEntity(child)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a fixed expense by its ID.
func (r *fixedExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	var feModel model.FixedExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&feModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedExpenseNotFound
		}
		return nil, result.Error
	}
	return feModel.ToEntity(), nil
}

// FindByIDWithChildren retrieves a parent fixed expense with its children in
// chronological order.
func (r *fixedExpenseRepository) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*entity.FixedExpenseWithChildren, error) {
	parent, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var childModels []model.FixedExpenseModel
	result := r.db.WithContext(ctx).
		Where("parent_expense_id = ?", id).
		Order("date ASC").
		Find(&childModels)
	if result.Error != nil {
		return nil, result.Error
	}

	children := make([]*entity.FixedExpense, 0, len(childModels))
	for _, cm := range childModels {
		children = append(children, cm.ToEntity())
	}

	return &entity.FixedExpenseWithChildren{Parent: parent, Children: children}, nil
}

// FindParentsByUser retrieves all parent fixed expenses for a user, newest first.
func (r *fixedExpenseRepository) FindParentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedExpense, error) {
	var feModels []model.FixedExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_parent = ?", userID, true).
		Order("date DESC").
		Find(&feModels)
	if result.Error != nil {
		return nil, result.Error
	}

	parents := make([]*entity.FixedExpense, 0, len(feModels))
	for _, fm := range feModels {
		parents = append(parents, fm.ToEntity())
	}
	return parents, nil
}

// UpdateAndReplaceChildren updates the parent row and replaces every existing
// child with the given regenerated set in one transaction.
func (r *fixedExpenseRepository) UpdateAndReplaceChildren(ctx context.Context, parent *entity.FixedExpense, children []*entity.FixedExpense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.FixedExpenseFromEntity(parent)).Error; err != nil {
			return err
		}
		if err := tx.Where("parent_expense_id = ?", parent.ID).
			Delete(&model.FixedExpenseModel{}).Error; err != nil {
			return err
		}
		for _, child := range children {
			if err := tx.Create(model.FixedExpenseFromEntity(child)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithChildren deletes the children first, then the parent, in one
// transaction. Returns the deleted parent.
func (r *fixedExpenseRepository) DeleteWithChildren(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	parent, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_expense_id = ?", id).
			Delete(&model.FixedExpenseModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FixedExpenseModel{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return parent, nil
}

// CountChildren counts the generated children of a parent fixed expense.
func (r *fixedExpenseRepository) CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FixedExpenseModel{}).
		Where("parent_expense_id = ?", parentID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
