package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"course-api/internal/domain"
	"course-api/internal/repository"
)

// Credentials es el par identificador/secreto extraido de una request.
type Credentials struct {
	Identifier string
	Secret     string
}

// AuthService resuelve y verifica credenciales contra el store de usuarios.
// No guarda estado entre requests.
type AuthService struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewAuthService(users repository.UserRepository, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Authenticate devuelve el usuario si las credenciales son validas. Los
// rechazos son *AuthFailure (errors.Is ErrInvalidCredentials); cualquier otro
// error proviene del store.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, creds.Identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &AuthFailure{Reason: ReasonUnknownIdentifier, Identifier: creds.Identifier}
		}
		return domain.User{}, err
	}

	if !s.hasher.Verify(creds.Secret, user.PasswordHash) {
		return domain.User{}, &AuthFailure{Reason: ReasonBadSecret, Identifier: creds.Identifier}
	}
	return user, nil
}
