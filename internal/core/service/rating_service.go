package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// RatingService recomputes a tutor's aggregate rating as the mean of its
// feedback ratings. It runs behind the rating dispatcher, never on the
// request path.
type RatingService struct {
	feedbacks ports.FeedbackRepository
	tutors    ports.TutorRepository
	logger    zerolog.Logger
}

func NewRatingService(feedbacks ports.FeedbackRepository, tutors ports.TutorRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{feedbacks: feedbacks, tutors: tutors, logger: logger}
}

// Recalculate reads the tutor's feedback average and writes it back to the
// profile. A tutor with no feedback keeps a zero rating.
func (s *RatingService) Recalculate(ctx context.Context, tutorID int64) error {
	avg, count, err := s.feedbacks.AverageRatingByTutor(ctx, tutorID)
	if err != nil {
		return fmt.Errorf("average rating: %w", err)
	}

	if err := s.tutors.UpdateRating(ctx, tutorID, avg); err != nil {
		return fmt.Errorf("update rating: %w", err)
	}

	s.logger.Debug().
		Int64("tutor_id", tutorID).
		Float64("rating", avg).
		Int64("feedback_count", count).
		Msg("tutor rating recalculated")
	return nil
}
