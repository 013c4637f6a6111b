package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      domain.Role
}

// RegisteredUser is the result of a successful registration. Exactly one of
// TutorID/StudentID is set for the tutor and student roles; both are nil for
// admins.
type RegisteredUser struct {
	User      *domain.User
	TutorID   *int64
	StudentID *int64
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisteredUser, error)
	// Login verifies email+password and returns a signed token. All failure
	// modes collapse to domain.ErrInvalidCredentials so that account
	// existence cannot be probed.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
