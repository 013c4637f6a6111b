package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// StudentService implements student profile reads and edits.
type StudentService struct {
	students ports.StudentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewStudentService(students ports.StudentRepository, users ports.UserRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{students: students, users: users, logger: logger}
}

func (s *StudentService) Get(ctx context.Context, id int64) (*ports.StudentDetail, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, student.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.StudentDetail{Student: *student, User: *user}, nil
}

// UpdateEducationLevel changes the level on the caller's own student profile.
func (s *StudentService) UpdateEducationLevel(ctx context.Context, input ports.UpdateStudentInput) (*domain.Student, error) {
	student, err := s.students.FindByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if student.UserID != input.CallerUserID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.students.UpdateEducationLevel(ctx, input.StudentID, input.EducationLevel)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("student_id", updated.ID).
		Str("education_level", updated.EducationLevel).
		Msg("student profile updated")
	return updated, nil
}
