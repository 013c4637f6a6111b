package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// TutorProfileUpdate carries the optional fields of a tutor profile edit.
// Nil fields are left untouched.
type TutorProfileUpdate struct {
	Description *string
	Experience  *int
}

// TutorRepository defines persistence operations for tutor profiles.
type TutorRepository interface {
	Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error)
	FindByID(ctx context.Context, id int64) (*domain.Tutor, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Tutor, error)
	List(ctx context.Context) ([]*domain.Tutor, error)
	UpdateProfile(ctx context.Context, id int64, update TutorProfileUpdate) (*domain.Tutor, error)
	UpdateRating(ctx context.Context, id int64, rating float64) error
}
