package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// LessonService implements lesson booking and lifecycle transitions.
type LessonService struct {
	lessons  ports.LessonRepository
	tutors   ports.TutorRepository
	students ports.StudentRepository
	subjects ports.SubjectRepository
	logger   zerolog.Logger
}

func NewLessonService(
	lessons ports.LessonRepository,
	tutors ports.TutorRepository,
	students ports.StudentRepository,
	subjects ports.SubjectRepository,
	logger zerolog.Logger,
) *LessonService {
	return &LessonService{
		lessons:  lessons,
		tutors:   tutors,
		students: students,
		subjects: subjects,
		logger:   logger,
	}
}

// Create books a lesson for the calling tutor. The tutor id comes from the
// caller's identity; student and subject must exist.
func (s *LessonService) Create(ctx context.Context, input ports.CreateLessonInput) (*domain.Lesson, error) {
	tutor, err := s.tutors.FindByUserID(ctx, input.CallerUserID)
	if err != nil {
		return nil, domain.ErrForbidden
	}
	if _, err := s.students.FindByID(ctx, input.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.subjects.FindByID(ctx, input.SubjectID); err != nil {
		return nil, err
	}

	lesson, err := s.lessons.Create(ctx, &domain.Lesson{
		TutorID:   tutor.ID,
		StudentID: input.StudentID,
		SubjectID: input.SubjectID,
		Date:      input.Date,
		Time:      input.Time,
		Status:    domain.LessonScheduled,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("lesson_id", lesson.ID).
		Int64("tutor_id", lesson.TutorID).
		Int64("student_id", lesson.StudentID).
		Msg("lesson created")
	return lesson, nil
}

func (s *LessonService) ListByStudent(ctx context.Context, studentID int64) ([]*domain.Lesson, error) {
	return s.lessons.ListByStudent(ctx, studentID)
}

func (s *LessonService) ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Lesson, error) {
	return s.lessons.ListByTutor(ctx, tutorID)
}

// UpdateStatus applies a lifecycle transition on a lesson owned by the caller.
func (s *LessonService) UpdateStatus(ctx context.Context, input ports.UpdateLessonStatusInput) (*domain.Lesson, error) {
	if !input.Status.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	lesson, err := s.lessons.FindByID(ctx, input.LessonID)
	if err != nil {
		return nil, err
	}

	tutor, err := s.tutors.FindByUserID(ctx, input.CallerUserID)
	if err != nil || tutor.ID != lesson.TutorID {
		return nil, domain.ErrForbidden
	}

	if !lesson.Status.CanTransitionTo(input.Status) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.lessons.UpdateStatus(ctx, lesson.ID, lesson.Status, input.Status); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("lesson_id", lesson.ID).
		Str("from", string(lesson.Status)).
		Str("to", string(input.Status)).
		Msg("lesson status updated")

	lesson.Status = input.Status
	return lesson, nil
}
