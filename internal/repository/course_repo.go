package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"course-api/internal/domain"
)

// CourseRepository define el contrato de persistencia para cursos.
// Los accesos por id a un curso inexistente devuelven pgx.ErrNoRows.
type CourseRepository interface {
	Create(ctx context.Context, course domain.Course) error
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id string) (domain.Course, error)
	Update(ctx context.Context, course domain.Course) error
	Delete(ctx context.Context, id string) error
}

type PgCourseRepository struct {
	pool *pgxpool.Pool
}

func NewPgCourseRepository(pool *pgxpool.Pool) *PgCourseRepository {
	return &PgCourseRepository{pool: pool}
}

func (r *PgCourseRepository) Create(ctx context.Context, course domain.Course) error {
	const query = `
		INSERT INTO courses (id, title, description, estimated_time, materials_needed, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
		course.UserID,
		course.CreatedAt,
	)
	return err
}

func (r *PgCourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	const query = `
		SELECT id::text, title, description, estimated_time, materials_needed, user_id, created_at
		FROM courses
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		err = rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.EstimatedTime,
			&c.MaterialsNeeded,
			&c.UserID,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *PgCourseRepository) GetByID(ctx context.Context, id string) (domain.Course, error) {
	const query = `
		SELECT id::text, title, description, estimated_time, materials_needed, user_id, created_at
		FROM courses
		WHERE id = $1
	`
	var c domain.Course
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.UserID,
		&c.CreatedAt,
	)
	if err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

// Update reemplaza los campos editables; user_id y created_at no cambian.
func (r *PgCourseRepository) Update(ctx context.Context, course domain.Course) error {
	const query = `
		UPDATE courses
		SET title = $2, description = $3, estimated_time = $4, materials_needed = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCourseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
