// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves the categories matching the given IDs. Missing IDs
	// are silently absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)

	// FindByUser retrieves all categories for a user, ordered by title.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByTitleAndUser checks if a category with the given title exists
	// for the user. Titles are matched case-sensitively.
	ExistsByTitleAndUser(ctx context.Context, title string, userID uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category and its expense links from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
