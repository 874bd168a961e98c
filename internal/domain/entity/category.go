// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoriesPerExpense is the maximum number of categories that can be
// attached to a single expense. Enforced at the request-binding layer.
const MaxCategoriesPerExpense = 3

// Category represents a user-defined expense category.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string // Unique (case-sensitive) within a user's category set
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, title string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExpenseCategory is the join entity linking an expense to a category.
// Rows are never updated in place; reconciliation deletes and upserts them.
type ExpenseCategory struct {
	ExpenseID  uuid.UUID
	CategoryID uuid.UUID
}
