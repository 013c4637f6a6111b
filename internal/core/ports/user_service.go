package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// UserProfile is a user joined with its role profile identifiers, as served
// by the "who am I" endpoint.
type UserProfile struct {
	User      *domain.User
	TutorID   *int64
	StudentID *int64
}

// UserService defines use-case operations on accounts themselves.
type UserService interface {
	Profile(ctx context.Context, user *domain.User) (*UserProfile, error)
	// List returns every registered user. Admin only, enforced at the edge.
	List(ctx context.Context) ([]*domain.User, error)
}
