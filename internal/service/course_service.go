package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"course-api/internal/domain"
	"course-api/internal/repository"
)

// CourseService aplica validacion y control de duenio sobre cursos.
type CourseService struct {
	logger  *zap.Logger
	courses repository.CourseRepository
	users   repository.UserRepository
}

func NewCourseService(logger *zap.Logger, courses repository.CourseRepository, users repository.UserRepository) *CourseService {
	return &CourseService{
		logger:  logger,
		courses: courses,
		users:   users,
	}
}

type CreateCourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// UpdateCourseInput: Title y Description son obligatorios; los campos
// opcionales solo se reemplazan si vienen informados.
type UpdateCourseInput struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// Get devuelve el curso junto con la proyeccion publica de su duenio.
func (s *CourseService) Get(ctx context.Context, id string) (domain.CourseDetail, error) {
	course, err := s.find(ctx, id)
	if err != nil {
		return domain.CourseDetail{}, err
	}

	detail := domain.CourseDetail{Course: course}
	if _, err := uuid.Parse(course.UserID); err != nil {
		return detail, nil
	}
	owner, err := s.users.GetByID(ctx, course.UserID)
	switch {
	case err == nil:
		o := owner.AsOwner()
		detail.User = &o
	case !errors.Is(err, pgx.ErrNoRows):
		return domain.CourseDetail{}, err
	}
	return detail, nil
}

// Create guarda un curso cuyo duenio es siempre la identidad autenticada.
func (s *CourseService) Create(ctx context.Context, owner domain.User, input CreateCourseInput) (domain.Course, error) {
	course := domain.Course{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          owner.ID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := NewValidationError(course.MissingFields()); err != nil {
		return domain.Course{}, err
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return domain.Course{}, err
	}
	return course, nil
}

// Update valida primero, luego resuelve el curso (404) y por ultimo verifica el duenio (403).
func (s *CourseService) Update(ctx context.Context, identity domain.User, id string, input UpdateCourseInput) error {
	candidate := domain.Course{Title: input.Title, Description: input.Description}
	if err := NewValidationError(candidate.MissingFields()); err != nil {
		return err
	}

	course, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(identity, course); err != nil {
		s.logDenied("update", identity, course)
		return fmt.Errorf("%w, a user can only update their own courses", err)
	}

	course.Title = input.Title
	course.Description = input.Description
	if input.EstimatedTime != nil {
		course.EstimatedTime = *input.EstimatedTime
	}
	if input.MaterialsNeeded != nil {
		course.MaterialsNeeded = *input.MaterialsNeeded
	}
	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}

func (s *CourseService) Delete(ctx context.Context, identity domain.User, id string) error {
	course, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeOwner(identity, course); err != nil {
		s.logDenied("delete", identity, course)
		return fmt.Errorf("%w, a user can only delete their own courses", err)
	}
	if err := s.courses.Delete(ctx, course.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}

// find trata un id que no es UUID igual que un curso inexistente.
func (s *CourseService) find(ctx context.Context, id string) (domain.Course, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Course{}, ErrCourseNotFound
	}
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Course{}, ErrCourseNotFound
		}
		return domain.Course{}, err
	}
	return course, nil
}

func (s *CourseService) logDenied(action string, identity domain.User, course domain.Course) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("course ownership check failed",
		zap.String("action", action),
		zap.String("course_id", course.ID),
		zap.String("user_id", identity.ID),
	)
}
