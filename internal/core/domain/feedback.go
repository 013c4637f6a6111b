package domain

import (
	"errors"
	"time"
)

// ErrLessonMismatch is returned when feedback references a lesson that does
// not link the supplied tutor and student.
var ErrLessonMismatch = errors.New("lesson does not match tutor and student")

var ErrFeedbackNotFound = errors.New("feedback not found")

// Feedback is a student's rating of a completed lesson.
type Feedback struct {
	ID        int64     `json:"feedback_id"`
	LessonID  int64     `json:"lesson_id"`
	TutorID   int64     `json:"tutor_id"`
	StudentID int64     `json:"student_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
