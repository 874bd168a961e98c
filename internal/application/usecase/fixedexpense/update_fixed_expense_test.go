// Package fixedexpense contains fixed (recurring) expense use cases.
package fixedexpense

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeFixedExpenseRepository is an in-memory FixedExpenseRepository.
type fakeFixedExpenseRepository struct {
	parents  map[uuid.UUID]*entity.FixedExpense
	children map[uuid.UUID][]*entity.FixedExpense

	replaceCalls int
}

func newFakeFixedExpenseRepository() *fakeFixedExpenseRepository {
	return &fakeFixedExpenseRepository{
		parents:  make(map[uuid.UUID]*entity.FixedExpense),
		children: make(map[uuid.UUID][]*entity.FixedExpense),
	}
}

func (f *fakeFixedExpenseRepository) CreateWithChildren(_ context.Context, parent *entity.FixedExpense, children []*entity.FixedExpense) error {
	f.parents[parent.ID] = parent
	f.children[parent.ID] = children
	return nil
}

func (f *fakeFixedExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	parent, ok := f.parents[id]
	if !ok {
		return nil, domainerror.ErrFixedExpenseNotFound
	}
	copied := *parent
	return &copied, nil
}

func (f *fakeFixedExpenseRepository) FindByIDWithChildren(_ context.Context, id uuid.UUID) (*entity.FixedExpenseWithChildren, error) {
	parent, ok := f.parents[id]
	if !ok {
		return nil, domainerror.ErrFixedExpenseNotFound
	}
	return &entity.FixedExpenseWithChildren{Parent: parent, Children: f.children[id]}, nil
}

func (f *fakeFixedExpenseRepository) FindParentsByUser(_ context.Context, userID uuid.UUID) ([]*entity.FixedExpense, error) {
	var result []*entity.FixedExpense
	for _, parent := range f.parents {
		if parent.UserID == userID {
			result = append(result, parent)
		}
	}
	return result, nil
}

func (f *fakeFixedExpenseRepository) UpdateAndReplaceChildren(_ context.Context, parent *entity.FixedExpense, children []*entity.FixedExpense) error {
	f.replaceCalls++
	f.parents[parent.ID] = parent
	f.children[parent.ID] = children
	return nil
}

func (f *fakeFixedExpenseRepository) DeleteWithChildren(_ context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	parent, ok := f.parents[id]
	if !ok {
		return nil, domainerror.ErrFixedExpenseNotFound
	}
	delete(f.parents, id)
	delete(f.children, id)
	return parent, nil
}

func (f *fakeFixedExpenseRepository) CountChildren(_ context.Context, parentID uuid.UUID) (int64, error) {
	return int64(len(f.children[parentID])), nil
}

func seedFixedExpense(t *testing.T, repo *fakeFixedExpenseRepository) (*entity.FixedExpense, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	useCase := NewCreateFixedExpenseUseCase(repo)
	output, err := useCase.Execute(context.Background(), CreateFixedExpenseInput{
		UserID:         userID,
		Title:          "Rent",
		Date:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AmountOfMonths: 4,
		Amount:         decimal.RequireFromString("1200.00"),
	})
	require.NoError(t, err)
	return repo.parents[output.FixedExpense.ID], userID
}

func TestCreateFixedExpense_MaterializesAllMonths(t *testing.T) {
	repo := newFakeFixedExpenseRepository()
	parent, _ := seedFixedExpense(t, repo)

	assert.True(t, parent.IsParent)
	assert.Len(t, repo.children[parent.ID], 3)
}

func TestCreateFixedExpense_VaryingCostsMismatch(t *testing.T) {
	useCase := NewCreateFixedExpenseUseCase(newFakeFixedExpenseRepository())

	_, err := useCase.Execute(context.Background(), CreateFixedExpenseInput{
		UserID:         uuid.New(),
		Title:          "Utilities",
		Date:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AmountOfMonths: 3,
		VaryingCosts:   true,
		AmountPerMonth: []decimal.Decimal{decimal.RequireFromString("80.00")},
	})

	var feErr *domainerror.FixedExpenseError
	require.ErrorAs(t, err, &feErr)
	assert.Equal(t, domainerror.ErrCodeVaryingCostsMismatch, feErr.Code)
}

func TestCreateFixedExpense_VaryingCostsParentTakesHeadAmount(t *testing.T) {
	repo := newFakeFixedExpenseRepository()
	useCase := NewCreateFixedExpenseUseCase(repo)

	output, err := useCase.Execute(context.Background(), CreateFixedExpenseInput{
		UserID:         uuid.New(),
		Title:          "Utilities",
		Date:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		AmountOfMonths: 3,
		VaryingCosts:   true,
		AmountPerMonth: []decimal.Decimal{
			decimal.RequireFromString("80.00"),
			decimal.RequireFromString("92.00"),
			decimal.RequireFromString("75.00"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "80.00", output.FixedExpense.Amount.StringFixed(2))
	require.Len(t, output.FixedExpense.Children, 2)
	assert.Equal(t, "92.00", output.FixedExpense.Children[0].Amount.StringFixed(2))
	assert.Equal(t, "75.00", output.FixedExpense.Children[1].Amount.StringFixed(2))
}

func TestUpdateFixedExpense_AlwaysRegeneratesSeries(t *testing.T) {
	repo := newFakeFixedExpenseRepository()
	parent, userID := seedFixedExpense(t, repo)

	useCase := NewUpdateFixedExpenseUseCase(repo)
	output, err := useCase.Execute(context.Background(), UpdateFixedExpenseInput{
		FixedExpenseID: parent.ID,
		UserID:         userID,
		Title:          "Rent",
		Date:           parent.Date,
		AmountOfMonths: 6,
		Amount:         decimal.RequireFromString("1250.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.replaceCalls)
	assert.Len(t, repo.children[parent.ID], 5)
	assert.Equal(t, "1250.00", output.FixedExpense.Amount.StringFixed(2))
}

func TestUpdateFixedExpense_CosmeticChangeStillReplacesChildren(t *testing.T) {
	// Updates are full-replace by design, even a pure rename regenerates.
	repo := newFakeFixedExpenseRepository()
	parent, userID := seedFixedExpense(t, repo)

	priorChildIDs := make(map[uuid.UUID]bool)
	for _, child := range repo.children[parent.ID] {
		priorChildIDs[child.ID] = true
	}

	useCase := NewUpdateFixedExpenseUseCase(repo)
	_, err := useCase.Execute(context.Background(), UpdateFixedExpenseInput{
		FixedExpenseID: parent.ID,
		UserID:         userID,
		Title:          "Apartment rent",
		Date:           parent.Date,
		AmountOfMonths: parent.AmountOfMonths,
		Amount:         parent.Amount,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.replaceCalls)
	for _, child := range repo.children[parent.ID] {
		assert.False(t, priorChildIDs[child.ID], "children must be regenerated, not reused")
	}
}

func TestUpdateFixedExpense_RejectsForeignParent(t *testing.T) {
	repo := newFakeFixedExpenseRepository()
	parent, _ := seedFixedExpense(t, repo)

	useCase := NewUpdateFixedExpenseUseCase(repo)
	_, err := useCase.Execute(context.Background(), UpdateFixedExpenseInput{
		FixedExpenseID: parent.ID,
		UserID:         uuid.New(),
		Title:          "Rent",
		Date:           parent.Date,
		AmountOfMonths: parent.AmountOfMonths,
		Amount:         parent.Amount,
	})

	var feErr *domainerror.FixedExpenseError
	require.ErrorAs(t, err, &feErr)
	assert.Equal(t, domainerror.ErrCodeNotAuthorizedFixedExpense, feErr.Code)
}

func TestDeleteFixedExpense_RemovesSeries(t *testing.T) {
	repo := newFakeFixedExpenseRepository()
	parent, userID := seedFixedExpense(t, repo)

	useCase := NewDeleteFixedExpenseUseCase(repo)
	output, err := useCase.Execute(context.Background(), DeleteFixedExpenseInput{
		FixedExpenseID: parent.ID,
		UserID:         userID,
	})

	require.NoError(t, err)
	assert.Equal(t, parent.ID, output.FixedExpense.ID)
	assert.Empty(t, repo.parents)
	assert.Empty(t, repo.children)
}
