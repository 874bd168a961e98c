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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Create(model.CategoryFromEntity(category))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByIDs retrieves the categories matching the given IDs.
func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	if len(ids) == 0 {
		return []*entity.Category{}, nil
	}

	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("title ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, cm := range categoryModels {
		categories = append(categories, cm.ToEntity())
	}
	return categories, nil
}

// FindByUser retrieves all categories for a user, ordered by title.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("title ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, cm := range categoryModels {
		categories = append(categories, cm.ToEntity())
	}
	return categories, nil
}

// ExistsByTitleAndUser checks if a category with the given title exists for the user.
func (r *categoryRepository) ExistsByTitleAndUser(ctx context.Context, title string, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("title = ? AND user_id = ?", title, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Save(model.CategoryFromEntity(category))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category and its expense links from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).
			Delete(&model.ExpenseCategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CategoryModel{}, "id = ?", id).Error
	})
}
