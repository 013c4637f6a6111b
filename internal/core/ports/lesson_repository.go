package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// LessonRepository defines persistence operations for lessons.
type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	FindByID(ctx context.Context, id int64) (*domain.Lesson, error)
	// ListByStudent and ListByTutor return lessons ordered by date then time.
	ListByStudent(ctx context.Context, studentID int64) ([]*domain.Lesson, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]*domain.Lesson, error)
	// UpdateStatus moves the lesson to status only if its current status
	// still equals from. When the row changed underneath the caller it
	// returns domain.ErrInvalidTransition, so a stale read can never
	// overwrite a terminal status.
	UpdateStatus(ctx context.Context, id int64, from, to domain.LessonStatus) error
}
