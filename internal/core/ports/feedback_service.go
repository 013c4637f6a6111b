package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// CreateFeedbackInput carries a feedback submission. The student is resolved
// from the authenticated caller, never taken from the payload.
type CreateFeedbackInput struct {
	CallerUserID int64
	LessonID     int64
	TutorID      int64
	Rating       int
	Comment      string
}

// FeedbackService defines use-case operations for feedback.
type FeedbackService interface {
	Create(ctx context.Context, input CreateFeedbackInput) (*domain.Feedback, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Feedback, error)
}
