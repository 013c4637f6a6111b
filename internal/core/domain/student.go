package domain

import "errors"

var ErrStudentNotFound = errors.New("student not found")

// Education levels a student profile may carry.
const (
	LevelBeginner     = "Beginner"
	LevelElementary   = "Elementary"
	LevelIntermediate = "Intermediate"
)

// Student is the profile attached to a user with the student role.
type Student struct {
	ID             int64  `json:"student_id"`
	UserID         int64  `json:"user_id"`
	EducationLevel string `json:"education_level"`
	Interests      string `json:"interests"`
}
