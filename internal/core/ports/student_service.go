package ports

import (
	"context"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

// StudentDetail is the student profile joined with its user record.
type StudentDetail struct {
	Student domain.Student
	User    domain.User
}

// UpdateStudentInput carries an education-level change together with the
// caller identity used for the ownership check.
type UpdateStudentInput struct {
	StudentID      int64
	CallerUserID   int64
	EducationLevel string
}

// StudentService defines use-case operations for students.
type StudentService interface {
	Get(ctx context.Context, id int64) (*StudentDetail, error)
	UpdateEducationLevel(ctx context.Context, input UpdateStudentInput) (*domain.Student, error)
}
