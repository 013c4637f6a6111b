package service

import (
	"context"
	"errors"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// UserService implements account-level reads.
type UserService struct {
	users    ports.UserRepository
	tutors   ports.TutorRepository
	students ports.StudentRepository
}

func NewUserService(users ports.UserRepository, tutors ports.TutorRepository, students ports.StudentRepository) *UserService {
	return &UserService{users: users, tutors: tutors, students: students}
}

// Profile joins the user with its tutor or student profile id, when one exists.
func (s *UserService) Profile(ctx context.Context, user *domain.User) (*ports.UserProfile, error) {
	profile := &ports.UserProfile{User: user}

	tutor, err := s.tutors.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		profile.TutorID = &tutor.ID
	case !errors.Is(err, domain.ErrTutorNotFound):
		return nil, err
	}

	student, err := s.students.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		profile.StudentID = &student.ID
	case !errors.Is(err, domain.ErrStudentNotFound):
		return nil, err
	}

	return profile, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
