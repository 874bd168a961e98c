// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100"`
}

// UpdateCategoryRequest represents the request body for category rename.
type UpdateCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100"`
}

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// SuggestCategoryResponse represents a category suggestion in API responses.
type SuggestCategoryResponse struct {
	ExistingCategoryID *string `json:"existing_category_id,omitempty"`
	NewTitle           string  `json:"new_title,omitempty"`
	Confidence         float64 `json:"confidence"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Title:     cat.Title,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: out,
	}
}

// ToSuggestCategoryResponse converts a suggestion output to a SuggestCategoryResponse.
func ToSuggestCategoryResponse(output *category.SuggestCategoryOutput) SuggestCategoryResponse {
	resp := SuggestCategoryResponse{
		NewTitle:   output.NewTitle,
		Confidence: output.Confidence,
	}
	if output.ExistingCategoryID != nil {
		id := output.ExistingCategoryID.String()
		resp.ExistingCategoryID = &id
	}
	return resp
}
