package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// StudentRepository defines persistence operations for student profiles.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Student, error)
	UpdateEducationLevel(ctx context.Context, id int64, level string) (*domain.Student, error)
}
