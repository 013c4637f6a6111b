package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// LessonRepository implements ports.LessonRepository on PostgreSQL.
// Dates and times cross the boundary as text; the DATE/TIME columns keep
// them canonical.
type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonColumns = "lesson_id, tutor_id, student_id, subject_id, lesson_date::text, lesson_time::text, status"

func scanLesson(row pgx.Row) (*domain.Lesson, error) {
	var l domain.Lesson
	var status string
	if err := row.Scan(&l.ID, &l.TutorID, &l.StudentID, &l.SubjectID, &l.Date, &l.Time, &status); err != nil {
		return nil, err
	}
	l.Status = domain.LessonStatus(status)
	return &l, nil
}

func (r *LessonRepository) Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO lessons (tutor_id, student_id, subject_id, lesson_date, lesson_time, status)
		VALUES ($1, $2, $3, $4::date, $5::time, $6)
		RETURNING `+lessonColumns,
		lesson.TutorID, lesson.StudentID, lesson.SubjectID,
		lesson.Date, lesson.Time, string(lesson.Status))

	created, err := scanLesson(row)
	if err != nil {
		return nil, fmt.Errorf("insert lesson: %w", err)
	}
	return created, nil
}

func (r *LessonRepository) FindByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+lessonColumns+" FROM lessons WHERE lesson_id = $1", id)

	lesson, err := scanLesson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLessonNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	return lesson, nil
}

func (r *LessonRepository) ListByStudent(ctx context.Context, studentID int64) ([]*domain.Lesson, error) {
	return r.list(ctx,
		"SELECT "+lessonColumns+" FROM lessons WHERE student_id = $1 ORDER BY lesson_date, lesson_time", studentID)
}

func (r *LessonRepository) ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Lesson, error) {
	return r.list(ctx,
		"SELECT "+lessonColumns+" FROM lessons WHERE tutor_id = $1 ORDER BY lesson_date, lesson_time", tutorID)
}

func (r *LessonRepository) list(ctx context.Context, query string, arg any) ([]*domain.Lesson, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*domain.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

// UpdateStatus is a compare-and-set: the UPDATE only matches while the row
// still holds the expected status, so two concurrent transitions cannot both
// win and the loser cannot drag a lesson out of a terminal status.
func (r *LessonRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.LessonStatus) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE lessons SET status = $2 WHERE lesson_id = $1 AND status = $3",
		id, string(to), string(from))
	if err != nil {
		return fmt.Errorf("update lesson status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM lessons WHERE lesson_id = $1)", id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("update lesson status: %w", err)
		}
		if !exists {
			return domain.ErrLessonNotFound
		}
		return domain.ErrInvalidTransition
	}
	return nil
}
