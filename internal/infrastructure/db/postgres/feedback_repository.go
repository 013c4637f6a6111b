package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// FeedbackRepository implements ports.FeedbackRepository on PostgreSQL.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

// Create inserts the feedback with a single statement guarded by the lesson
// match: the INSERT..SELECT yields no row when the lesson does not link the
// supplied tutor and student, which surfaces as ErrLessonMismatch.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	created := *feedback
	err := r.pool.QueryRow(ctx, `
		INSERT INTO feedbacks (lesson_id, tutor_id, student_id, rating, comment)
		SELECT l.lesson_id, l.tutor_id, l.student_id, $4, $5
		FROM lessons AS l
		WHERE l.lesson_id = $1 AND l.tutor_id = $2 AND l.student_id = $3
		RETURNING feedback_id, created_at`,
		feedback.LessonID, feedback.TutorID, feedback.StudentID,
		feedback.Rating, nullable(feedback.Comment),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLessonMismatch
		}
		return nil, fmt.Errorf("insert feedback: %w", err)
	}
	return &created, nil
}

func (r *FeedbackRepository) ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT feedback_id, lesson_id, tutor_id, student_id, rating, COALESCE(comment, ''), created_at
		FROM feedbacks
		WHERE tutor_id = $1
		ORDER BY feedback_id DESC`, tutorID)
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer rows.Close()

	var feedbacks []*domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.LessonID, &f.TutorID, &f.StudentID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, &f)
	}
	return feedbacks, rows.Err()
}

func (r *FeedbackRepository) AverageRatingByTutor(ctx context.Context, tutorID int64) (float64, int64, error) {
	var avg float64
	var count int64
	err := r.pool.QueryRow(ctx,
		"SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*) FROM feedbacks WHERE tutor_id = $1",
		tutorID,
	).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, count, nil
}

// nullable maps the empty string to NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
