package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// FeedbackService implements feedback submission and retrieval.
type FeedbackService struct {
	feedbacks ports.FeedbackRepository
	students  ports.StudentRepository
	ratings   ports.RatingQueue
	logger    zerolog.Logger
}

func NewFeedbackService(
	feedbacks ports.FeedbackRepository,
	students ports.StudentRepository,
	ratings ports.RatingQueue,
	logger zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbacks: feedbacks,
		students:  students,
		ratings:   ratings,
		logger:    logger,
	}
}

// Create stores feedback from the calling student. The insert is conditioned
// on the lesson linking exactly this tutor and student; on success the
// tutor's rating recompute is enqueued.
func (s *FeedbackService) Create(ctx context.Context, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	student, err := s.students.FindByUserID(ctx, input.CallerUserID)
	if err != nil {
		return nil, domain.ErrForbidden
	}

	feedback, err := s.feedbacks.Create(ctx, &domain.Feedback{
		LessonID:  input.LessonID,
		TutorID:   input.TutorID,
		StudentID: student.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		return nil, err
	}

	s.ratings.Enqueue(feedback.TutorID)

	s.logger.Info().
		Int64("feedback_id", feedback.ID).
		Int64("tutor_id", feedback.TutorID).
		Int("rating", feedback.Rating).
		Msg("feedback created")
	return feedback, nil
}

func (s *FeedbackService) ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Feedback, error) {
	return s.feedbacks.ListByTutor(ctx, tutorID)
}
