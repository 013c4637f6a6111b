package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// TutorDetail is the tutor profile joined with its user record.
type TutorDetail struct {
	Tutor domain.Tutor
	User  domain.User
}

// UpdateTutorInput carries a tutor profile edit together with the caller
// identity used for the ownership check.
type UpdateTutorInput struct {
	TutorID      int64
	CallerUserID int64
	Description  *string
	Experience   *int
}

// TutorService defines use-case operations for tutors.
type TutorService interface {
	List(ctx context.Context) ([]TutorDetail, error)
	Get(ctx context.Context, id int64) (*TutorDetail, error)
	// UpdateProfile edits a tutor's own profile. Editing another tutor's
	// profile returns domain.ErrForbidden.
	UpdateProfile(ctx context.Context, input UpdateTutorInput) (*domain.Tutor, error)
}
