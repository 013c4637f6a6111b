package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// FeedbackRepository defines persistence operations for lesson feedback.
type FeedbackRepository interface {
	// Create inserts feedback in a single statement conditioned on the
	// referenced lesson actually linking the supplied tutor and student.
	// A mismatch surfaces as domain.ErrLessonMismatch.
	Create(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error)
	// ListByTutor returns feedback ordered most-recent-first.
	ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Feedback, error)
	// AverageRatingByTutor returns the mean feedback rating and the number
	// of feedback rows for the tutor. Zero feedback yields (0, 0, nil).
	AverageRatingByTutor(ctx context.Context, tutorID int64) (float64, int64, error)
}
