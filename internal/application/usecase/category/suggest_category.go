// Package category contains category management use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	UserID uuid.UUID
	Title  string
}

// SuggestCategoryOutput represents the proposed category. Exactly one of
// ExistingCategoryID and NewTitle is set.
type SuggestCategoryOutput struct {
	ExistingCategoryID *uuid.UUID
	NewTitle           string
	Confidence         float64
}

// SuggestCategoryUseCase proposes a category for an expense title using the
// AI suggestion service, preferring the user's existing categories over
// inventing new ones.
type SuggestCategoryUseCase struct {
	categoryRepo      adapter.CategoryRepository
	suggestionService adapter.CategorySuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	suggestionService adapter.CategorySuggestionService,
) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo:      categoryRepo,
		suggestionService: suggestionService,
	}
}

// Execute requests a suggestion for the given expense title.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if uc.suggestionService == nil || !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion service unavailable",
			domainerror.ErrCategorySuggestionUnavailable,
		)
	}

	existing, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	suggestion, err := uc.suggestionService.Suggest(ctx, input.Title, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest category: %w", err)
	}

	slog.Debug("Category suggested",
		"title", input.Title,
		"existing", suggestion.ExistingCategoryID != nil,
		"confidence", suggestion.Confidence,
	)

	return &SuggestCategoryOutput{
		ExistingCategoryID: suggestion.ExistingCategoryID,
		NewTitle:           suggestion.NewTitle,
		Confidence:         suggestion.Confidence,
	}, nil
}
