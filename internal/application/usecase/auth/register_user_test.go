// Package auth contains user registration and login use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository keyed by email.
type fakeUserRepository struct {
	users map[string]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps verification trivial.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, email string) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, email), nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func newRegisterUseCase(repo *fakeUserRepository) *RegisterUserUseCase {
	return NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})
}

func TestRegisterUser_CreatesUserAndReturnsToken(t *testing.T) {
	repo := newFakeUserRepository()
	useCase := newRegisterUseCase(repo)

	output, err := useCase.Execute(context.Background(), RegisterUserInput{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", output.Email)
	assert.NotEmpty(t, output.AccessToken)

	stored, ok := repo.users["ana@example.com"]
	require.True(t, ok)
	assert.Equal(t, output.UserID, stored.ID)
	assert.Equal(t, "hashed:correct horse battery", stored.PasswordHash)
}

func TestRegisterUser_RejectsWeakPassword(t *testing.T) {
	repo := newFakeUserRepository()
	useCase := newRegisterUseCase(repo)

	_, err := useCase.Execute(context.Background(), RegisterUserInput{
		Email:    "ana@example.com",
		Password: "short",
	})

	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeWeakPassword, authErr.Code)
	assert.Empty(t, repo.users)
}

func TestRegisterUser_RejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	repo.users["ana@example.com"] = &entity.User{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		CreatedAt: time.Now().UTC(),
	}
	useCase := newRegisterUseCase(repo)

	_, err := useCase.Execute(context.Background(), RegisterUserInput{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})

	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeEmailAlreadyRegistered, authErr.Code)
}
