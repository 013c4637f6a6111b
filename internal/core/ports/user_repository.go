package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// UserRepository defines persistence operations for users and their credentials.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail returns the user together with its stored credential.
	// The credential never travels past the auth service.
	FindByEmail(ctx context.Context, email string) (*domain.User, *domain.Credential, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	// Create inserts the user and its credential in a single transaction:
	// if either write fails, neither persists. A unique violation on email
	// or phone surfaces as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User, passwordHash string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
