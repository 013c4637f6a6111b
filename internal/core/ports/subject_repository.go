package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// SubjectRepository defines read operations for the subject catalogue.
// Subjects are seeded by migration and have no write path in the API.
type SubjectRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
}
