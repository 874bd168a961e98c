// Package auth contains user registration and login use cases.
package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func registerTestUser(t *testing.T, repo *fakeUserRepository) {
	t.Helper()

	_, err := newRegisterUseCase(repo).Execute(context.Background(), RegisterUserInput{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
}

func TestLoginUser_ReturnsFreshToken(t *testing.T) {
	repo := newFakeUserRepository()
	registerTestUser(t, repo)

	useCase := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})
	output, err := useCase.Execute(context.Background(), LoginUserInput{
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", output.Email)
	assert.Equal(t, repo.users["ana@example.com"].ID, output.UserID)
	assert.NotEmpty(t, output.AccessToken)
}

func TestLoginUser_UnknownEmailIsInvalidCredentials(t *testing.T) {
	useCase := NewLoginUserUseCase(newFakeUserRepository(), fakePasswordService{}, fakeTokenService{})

	_, err := useCase.Execute(context.Background(), LoginUserInput{
		Email:    "nobody@example.com",
		Password: "whatever works",
	})

	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authErr.Code)
}

func TestLoginUser_WrongPasswordIsInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	registerTestUser(t, repo)

	useCase := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})
	_, err := useCase.Execute(context.Background(), LoginUserInput{
		Email:    "ana@example.com",
		Password: "incorrect donkey battery",
	})

	// Wrong password and unknown email surface identically.
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authErr.Code)
}
