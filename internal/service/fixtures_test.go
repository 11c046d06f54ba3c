package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"course-api/internal/domain"
	"course-api/internal/repository"
)

var testHasher = NewPasswordHasher(bcrypt.MinCost)

func fakeUserInput() CreateUserInput {
	return CreateUserInput{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		EmailAddress: gofakeit.Email(),
		Password:     gofakeit.Password(true, true, true, false, false, 12),
	}
}

func seedUser(t *testing.T, users repository.UserRepository) (domain.User, CreateUserInput) {
	t.Helper()
	input := fakeUserInput()
	user, err := NewUserService(zap.NewNop(), users, testHasher).CreateUser(context.Background(), input)
	require.NoError(t, err)
	return user, input
}
