package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// TutorService implements tutor browsing and profile editing.
type TutorService struct {
	tutors ports.TutorRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTutorService(tutors ports.TutorRepository, users ports.UserRepository, logger zerolog.Logger) *TutorService {
	return &TutorService{tutors: tutors, users: users, logger: logger}
}

// List returns every tutor joined with its user record. Tutors whose user
// row has vanished mid-listing are skipped rather than failing the page.
func (s *TutorService) List(ctx context.Context) ([]ports.TutorDetail, error) {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.TutorDetail, 0, len(tutors))
	for _, t := range tutors {
		user, err := s.users.FindByID(ctx, t.UserID)
		if err != nil {
			s.logger.Warn().Int64("tutor_id", t.ID).Err(err).Msg("tutor without user row, skipping")
			continue
		}
		details = append(details, ports.TutorDetail{Tutor: *t, User: *user})
	}
	return details, nil
}

func (s *TutorService) Get(ctx context.Context, id int64) (*ports.TutorDetail, error) {
	tutor, err := s.tutors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, tutor.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.TutorDetail{Tutor: *tutor, User: *user}, nil
}

// UpdateProfile edits description and/or experience on the caller's own
// tutor profile.
func (s *TutorService) UpdateProfile(ctx context.Context, input ports.UpdateTutorInput) (*domain.Tutor, error) {
	tutor, err := s.tutors.FindByID(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}
	if tutor.UserID != input.CallerUserID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.tutors.UpdateProfile(ctx, input.TutorID, ports.TutorProfileUpdate{
		Description: input.Description,
		Experience:  input.Experience,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("tutor_id", updated.ID).Msg("tutor profile updated")
	return updated, nil
}
