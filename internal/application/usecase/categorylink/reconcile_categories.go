// Package categorylink contains the expense-category association manager.
package categorylink

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ReconcileCategoriesInput represents the input for category reconciliation.
type ReconcileCategoriesInput struct {
	ExpenseID   uuid.UUID
	CategoryIDs []uuid.UUID // The desired category set
}

// ReconcileCategoriesOutput reports the mutations that were applied.
type ReconcileCategoriesOutput struct {
	Added   int
	Removed int
}

// ReconcileCategoriesUseCase aligns the stored expense-category link set with
// a desired category list using the minimal set of mutations.
//
// The desired set is applied via upsert keyed on (expense_id, category_id), so
// resubmitting an unchanged set performs no effective writes. The removal set
// is computed from a snapshot taken before any mutation; added and removed
// links target disjoint keys, so ordering between them is immaterial.
//
// The size cap on the desired set is the caller's contract, not this
// component's: whatever is passed in gets upserted.
type ReconcileCategoriesUseCase struct {
	linkRepo adapter.ExpenseCategoryRepository
}

// NewReconcileCategoriesUseCase creates a new ReconcileCategoriesUseCase instance.
func NewReconcileCategoriesUseCase(linkRepo adapter.ExpenseCategoryRepository) *ReconcileCategoriesUseCase {
	return &ReconcileCategoriesUseCase{
		linkRepo: linkRepo,
	}
}

// Execute performs the reconciliation.
func (uc *ReconcileCategoriesUseCase) Execute(ctx context.Context, input ReconcileCategoriesInput) (*ReconcileCategoriesOutput, error) {
	current, err := uc.linkRepo.FindCategoryIDsByExpense(ctx, input.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current category links: %w", err)
	}

	removed := Diff(current, input.CategoryIDs)

	if len(input.CategoryIDs) > 0 {
		links := make([]entity.ExpenseCategory, 0, len(input.CategoryIDs))
		for _, id := range input.CategoryIDs {
			links = append(links, entity.ExpenseCategory{ExpenseID: input.ExpenseID, CategoryID: id})
		}
		if err := uc.linkRepo.Upsert(ctx, links); err != nil {
			return nil, fmt.Errorf("failed to upsert category links: %w", err)
		}
	}

	if len(removed) > 0 {
		links := make([]entity.ExpenseCategory, 0, len(removed))
		for _, id := range removed {
			links = append(links, entity.ExpenseCategory{ExpenseID: input.ExpenseID, CategoryID: id})
		}
		if err := uc.linkRepo.Delete(ctx, links); err != nil {
			return nil, fmt.Errorf("failed to delete category links: %w", err)
		}
	}

	return &ReconcileCategoriesOutput{
		Added:   len(input.CategoryIDs),
		Removed: len(removed),
	}, nil
}

// Diff returns the IDs present in current but absent from desired.
func Diff(current, desired []uuid.UUID) []uuid.UUID {
	keep := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		keep[id] = struct{}{}
	}

	var removed []uuid.UUID
	for _, id := range current {
		if _, ok := keep[id]; !ok {
			removed = append(removed, id)
		}
	}
	return removed
}
