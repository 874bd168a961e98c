// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/usecase/categorylink"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeExpenseRepository is an in-memory ExpenseRepository that records which
// multi-row operations were invoked.
type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense

	replaceCalls    int
	lastReplacement []*entity.Expense
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepository) CreateWithChildren(_ context.Context, root *entity.Expense, children []*entity.Expense, _ []uuid.UUID) error {
	f.expenses[root.ID] = root
	for _, child := range children {
		f.expenses[child.ID] = child
	}
	return nil
}

func (f *fakeExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (f *fakeExpenseRepository) FindRootsByUser(_ context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategories, error) {
	var result []*entity.ExpenseWithCategories
	for _, expense := range f.expenses {
		if expense.UserID == userID && expense.IsRoot() && expense.IsVisible {
			result = append(result, &entity.ExpenseWithCategories{Expense: expense})
		}
	}
	return result, nil
}

func (f *fakeExpenseRepository) FindChildren(_ context.Context, parentID uuid.UUID) ([]*entity.Expense, error) {
	var children []*entity.Expense
	for _, expense := range f.expenses {
		if expense.ParentExpenseID != nil && *expense.ParentExpenseID == parentID {
			children = append(children, expense)
		}
	}
	return children, nil
}

func (f *fakeExpenseRepository) CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	children, _ := f.FindChildren(ctx, parentID)
	return int64(len(children)), nil
}

func (f *fakeExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseRepository) ReplaceChildren(_ context.Context, rootID uuid.UUID, children []*entity.Expense, _ []uuid.UUID) error {
	f.replaceCalls++
	f.lastReplacement = children
	for id, expense := range f.expenses {
		if expense.ParentExpenseID != nil && *expense.ParentExpenseID == rootID {
			delete(f.expenses, id)
		}
	}
	for _, child := range children {
		f.expenses[child.ID] = child
	}
	return nil
}

func (f *fakeExpenseRepository) DeleteWithChildren(_ context.Context, id uuid.UUID) error {
	for candidateID, expense := range f.expenses {
		if expense.ParentExpenseID != nil && *expense.ParentExpenseID == id {
			delete(f.expenses, candidateID)
		}
	}
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepository) SumEffectiveByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, expense := range f.expenses {
		if expense.UserID != userID {
			continue
		}
		if expense.Date.Before(start) || expense.Date.After(end) {
			continue
		}
		total = total.Add(expense.AmountEffective)
	}
	return total, nil
}

// fakeCategoryRepository is an in-memory CategoryRepository.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, id := range ids {
		if category, ok := f.categories[id]; ok {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range f.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepository) ExistsByTitleAndUser(_ context.Context, title string, userID uuid.UUID) (bool, error) {
	for _, category := range f.categories {
		if category.UserID == userID && category.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

// fakeLinkRepository is an in-memory ExpenseCategoryRepository.
type fakeLinkRepository struct {
	links map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeLinkRepository() *fakeLinkRepository {
	return &fakeLinkRepository{links: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (f *fakeLinkRepository) FindCategoryIDsByExpense(_ context.Context, expenseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for categoryID := range f.links[expenseID] {
		ids = append(ids, categoryID)
	}
	return ids, nil
}

func (f *fakeLinkRepository) Upsert(_ context.Context, links []entity.ExpenseCategory) error {
	for _, link := range links {
		if f.links[link.ExpenseID] == nil {
			f.links[link.ExpenseID] = make(map[uuid.UUID]bool)
		}
		f.links[link.ExpenseID][link.CategoryID] = true
	}
	return nil
}

func (f *fakeLinkRepository) Delete(_ context.Context, links []entity.ExpenseCategory) error {
	for _, link := range links {
		delete(f.links[link.ExpenseID], link.CategoryID)
	}
	return nil
}

func newUpdateFixture(t *testing.T) (*UpdateExpenseUseCase, *fakeExpenseRepository, *entity.Expense) {
	t.Helper()

	expenseRepo := newFakeExpenseRepository()
	categoryRepo := newFakeCategoryRepository()
	reconciler := categorylink.NewReconcileCategoriesUseCase(newFakeLinkRepository())
	useCase := NewUpdateExpenseUseCase(expenseRepo, categoryRepo, reconciler)

	root := entity.NewExpense(
		uuid.New(),
		"Laptop",
		decimal.RequireFromString("900.00"),
		nil,
		3,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	)
	children := BuildInstallmentSchedule(root)
	require.NoError(t, expenseRepo.CreateWithChildren(context.Background(), root, children, nil))

	return useCase, expenseRepo, root
}

func TestUpdateExpense_AmountChangeRegeneratesChildren(t *testing.T) {
	useCase, expenseRepo, root := newUpdateFixture(t)

	output, err := useCase.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:    root.ID,
		UserID:       root.UserID,
		Title:        root.Title,
		Amount:       decimal.RequireFromString("1200.00"),
		Installments: 3,
		Date:         root.Date,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, expenseRepo.replaceCalls)
	require.Len(t, expenseRepo.lastReplacement, 2)
	for _, child := range expenseRepo.lastReplacement {
		assert.True(t, child.AmountEffective.Equal(decimal.RequireFromString("400")),
			"expected regenerated children to carry the new effective amount, got %s", child.AmountEffective)
	}
	assert.Equal(t, "400.00", output.Expense.AmountEffective.StringFixed(2))
}

func TestUpdateExpense_InstallmentChangeRegeneratesChildren(t *testing.T) {
	useCase, expenseRepo, root := newUpdateFixture(t)

	_, err := useCase.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:    root.ID,
		UserID:       root.UserID,
		Title:        root.Title,
		Amount:       root.Amount,
		Installments: 6,
		Date:         root.Date,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, expenseRepo.replaceCalls)
	assert.Len(t, expenseRepo.lastReplacement, 5)
}

func TestUpdateExpense_TitleAndDateChangeKeepsChildren(t *testing.T) {
	useCase, expenseRepo, root := newUpdateFixture(t)

	output, err := useCase.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:    root.ID,
		UserID:       root.UserID,
		Title:        "Workstation",
		Amount:       root.Amount,
		Installments: root.Installments,
		Date:         time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, expenseRepo.replaceCalls, "children must not be regenerated for cosmetic changes")
	assert.Equal(t, "Workstation", output.Expense.Title)

	// The existing children still belong to the root.
	count, err := expenseRepo.CountChildren(context.Background(), root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestUpdateExpense_RejectsForeignExpense(t *testing.T) {
	useCase, _, root := newUpdateFixture(t)

	_, err := useCase.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:    root.ID,
		UserID:       uuid.New(),
		Title:        root.Title,
		Amount:       root.Amount,
		Installments: root.Installments,
		Date:         root.Date,
	})

	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, domainerror.ErrCodeNotAuthorizedExpense, expErr.Code)
}

func TestUpdateExpense_RejectsInstallmentChild(t *testing.T) {
	useCase, expenseRepo, root := newUpdateFixture(t)

	children, err := expenseRepo.FindChildren(context.Background(), root.ID)
	require.NoError(t, err)
	require.NotEmpty(t, children)

	_, err = useCase.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:    children[0].ID,
		UserID:       root.UserID,
		Title:        root.Title,
		Amount:       root.Amount,
		Installments: root.Installments,
		Date:         root.Date,
	})

	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, domainerror.ErrCodeNotARootExpense, expErr.Code)
}

func TestUpdateExpense_NotFound(t *testing.T) {
	useCase, _, _ := newUpdateFixture(t)

	_, err := useCase.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:    uuid.New(),
		UserID:       uuid.New(),
		Title:        "Anything",
		Amount:       decimal.RequireFromString("10.00"),
		Installments: 1,
		Date:         time.Now(),
	})

	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expErr.Code)
}
