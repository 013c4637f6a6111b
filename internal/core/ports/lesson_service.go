package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// CreateLessonInput carries all data needed to book a lesson. The tutor is
// resolved from the authenticated caller, never taken from the payload.
type CreateLessonInput struct {
	CallerUserID int64
	StudentID    int64
	SubjectID    int64
	Date         string // "2006-01-02"
	Time         string // "15:04" or "15:04:05"
}

// UpdateLessonStatusInput carries a status transition request.
type UpdateLessonStatusInput struct {
	LessonID     int64
	CallerUserID int64
	Status       domain.LessonStatus
}

// LessonService defines use-case operations for lessons.
type LessonService interface {
	Create(ctx context.Context, input CreateLessonInput) (*domain.Lesson, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*domain.Lesson, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Lesson, error)
	// UpdateStatus applies a lifecycle transition on a lesson owned by the
	// caller. Invalid transitions return domain.ErrInvalidTransition;
	// another tutor's lesson returns domain.ErrForbidden.
	UpdateStatus(ctx context.Context, input UpdateLessonStatusInput) (*domain.Lesson, error)
}
