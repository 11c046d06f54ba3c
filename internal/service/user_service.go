package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"course-api/internal/domain"
	"course-api/internal/repository"
)

// UserService coordina reglas de negocio para usuarios.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

type CreateUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
	Courses      string
}

// CreateUser registra un usuario nuevo. El email debe ser unico y el password
// se guarda solo como hash bcrypt.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	if input.EmailAddress != "" {
		_, err := s.users.GetByEmail(ctx, input.EmailAddress)
		if err == nil {
			return domain.User{}, ErrUserExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, err
		}
	}

	user := domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		Courses:      input.Courses,
		CreatedAt:    time.Now().UTC(),
	}
	if err := NewValidationError(user.MissingFields(input.Password)); err != nil {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, &Failure{Reason: "could not secure password", Err: err}
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}

	if s.logger != nil {
		s.logger.Info("user created", zap.String("user_id", user.ID))
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
