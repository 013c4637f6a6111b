package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// StudentRepository implements ports.StudentRepository on PostgreSQL.
type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = "student_id, user_id, education_level, interests"

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	if err := row.Scan(&s.ID, &s.UserID, &s.EducationLevel, &s.Interests); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO students (user_id, education_level, interests)
		VALUES ($1, $2, $3)
		RETURNING `+studentColumns,
		student.UserID, student.EducationLevel, student.Interests)

	created, err := scanStudent(row)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	return created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+studentColumns+" FROM students WHERE student_id = $1", id)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return student, nil
}

func (r *StudentRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Student, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+studentColumns+" FROM students WHERE user_id = $1", userID)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student by user: %w", err)
	}
	return student, nil
}

func (r *StudentRepository) UpdateEducationLevel(ctx context.Context, id int64, level string) (*domain.Student, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE students
		SET education_level = $2
		WHERE student_id = $1
		RETURNING `+studentColumns,
		id, level)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return student, nil
}
