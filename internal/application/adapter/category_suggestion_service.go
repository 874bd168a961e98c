// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategorySuggestion is a proposed category for an expense title. Exactly one
// of ExistingCategoryID and NewTitle is set.
type CategorySuggestion struct {
	ExistingCategoryID *uuid.UUID
	NewTitle           string
	Confidence         float64
}

// CategorySuggestionService defines the interface for AI-backed category
// suggestions.
type CategorySuggestionService interface {
	// IsAvailable checks if the service is configured.
	IsAvailable() bool

	// Suggest proposes a category for the given expense title, preferring the
	// user's existing categories.
	Suggest(ctx context.Context, title string, existing []*entity.Category) (*CategorySuggestion, error)
}
