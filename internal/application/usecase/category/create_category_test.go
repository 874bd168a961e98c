// Package category contains category management use cases.
package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory CategoryRepository.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category

	existsChecks int
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
	copied := *category
	return &copied, nil
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
	f.existsChecks++
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

func TestCreateCategory_PersistsForUser(t *testing.T) {
	repo := newFakeCategoryRepository()
	useCase := NewCreateCategoryUseCase(repo)

	userID := uuid.New()
	output, err := useCase.Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Title:  "Groceries",
	})

	require.NoError(t, err)
	assert.Equal(t, "Groceries", output.Category.Title)
	assert.Equal(t, userID, output.Category.UserID)
	assert.Contains(t, repo.categories, output.Category.ID)
}

func TestCreateCategory_RejectsDuplicateTitle(t *testing.T) {
	repo := newFakeCategoryRepository()
	useCase := NewCreateCategoryUseCase(repo)

	userID := uuid.New()
	_, err := useCase.Execute(context.Background(), CreateCategoryInput{UserID: userID, Title: "Groceries"})
	require.NoError(t, err)

	_, err = useCase.Execute(context.Background(), CreateCategoryInput{UserID: userID, Title: "Groceries"})

	var catErr *domainerror.CategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, domainerror.ErrCodeCategoryTitleExists, catErr.Code)
}

func TestCreateCategory_TitleUniquenessIsPerUser(t *testing.T) {
	repo := newFakeCategoryRepository()
	useCase := NewCreateCategoryUseCase(repo)

	_, err := useCase.Execute(context.Background(), CreateCategoryInput{UserID: uuid.New(), Title: "Groceries"})
	require.NoError(t, err)

	// Another user can reuse the same title.
	_, err = useCase.Execute(context.Background(), CreateCategoryInput{UserID: uuid.New(), Title: "Groceries"})
	require.NoError(t, err)
}

func TestUpdateCategory_SkipsUniquenessCheckWhenTitleUnchanged(t *testing.T) {
	repo := newFakeCategoryRepository()
	userID := uuid.New()

	created, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Title:  "Groceries",
	})
	require.NoError(t, err)

	repo.existsChecks = 0
	_, err = NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		CategoryID: created.Category.ID,
		UserID:     userID,
		Title:      "Groceries",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, repo.existsChecks)
}

func TestUpdateCategory_RejectsForeignCategory(t *testing.T) {
	repo := newFakeCategoryRepository()

	created, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), CreateCategoryInput{
		UserID: uuid.New(),
		Title:  "Groceries",
	})
	require.NoError(t, err)

	_, err = NewUpdateCategoryUseCase(repo).Execute(context.Background(), UpdateCategoryInput{
		CategoryID: created.Category.ID,
		UserID:     uuid.New(),
		Title:      "Food",
	})

	var catErr *domainerror.CategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, domainerror.ErrCodeNotAuthorizedCategory, catErr.Code)
}
