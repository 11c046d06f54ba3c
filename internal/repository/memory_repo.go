package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"course-api/internal/domain"
)

// MemoryUserRepository es la implementacion en proceso de UserRepository
// (STORAGE_DRIVER=memory). Respeta los mismos errores que la version Pg.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (m *MemoryUserRepository) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[user.EmailAddress]; exists {
		return ErrDuplicateEmail
	}
	m.byID[user.ID] = user
	m.byEmail[user.EmailAddress] = user.ID
	return nil
}

func (m *MemoryUserRepository) GetByID(_ context.Context, id string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *MemoryUserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.byID[id], nil
}

// Count devuelve la cantidad de usuarios almacenados.
func (m *MemoryUserRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// MemoryCourseRepository es la implementacion en proceso de CourseRepository.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[string]domain.Course
	order   []string
}

func NewMemoryCourseRepository() *MemoryCourseRepository {
	return &MemoryCourseRepository{courses: make(map[string]domain.Course)}
}

func (m *MemoryCourseRepository) Create(_ context.Context, course domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.courses[course.ID]; !exists {
		m.order = append(m.order, course.ID)
	}
	m.courses[course.ID] = course
	return nil
}

func (m *MemoryCourseRepository) List(_ context.Context) ([]domain.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	courses := make([]domain.Course, 0, len(m.order))
	for _, id := range m.order {
		courses = append(courses, m.courses[id])
	}
	return courses, nil
}

func (m *MemoryCourseRepository) GetByID(_ context.Context, id string) (domain.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	course, ok := m.courses[id]
	if !ok {
		return domain.Course{}, pgx.ErrNoRows
	}
	return course, nil
}

func (m *MemoryCourseRepository) Update(_ context.Context, course domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.courses[course.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Title = course.Title
	existing.Description = course.Description
	existing.EstimatedTime = course.EstimatedTime
	existing.MaterialsNeeded = course.MaterialsNeeded
	m.courses[course.ID] = existing
	return nil
}

func (m *MemoryCourseRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.courses[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.courses, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
