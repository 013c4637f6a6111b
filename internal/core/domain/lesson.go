package domain

import "errors"

// LessonStatus represents the lifecycle state of a lesson.
type LessonStatus string

const (
	LessonScheduled LessonStatus = "scheduled"
	LessonCompleted LessonStatus = "completed"
	LessonCanceled  LessonStatus = "canceled"
)

// validTransitions defines the allowed state machine transitions.
// Completed and canceled lessons are terminal.
var validTransitions = map[LessonStatus][]LessonStatus{
	LessonScheduled: {LessonCompleted, LessonCanceled},
}

var ErrInvalidTransition = errors.New("invalid lesson status transition")
var ErrLessonNotFound = errors.New("lesson not found")

// Valid reports whether the status belongs to the closed set.
func (s LessonStatus) Valid() bool {
	switch s {
	case LessonScheduled, LessonCompleted, LessonCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s LessonStatus) CanTransitionTo(next LessonStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lesson links a tutor, a student and a subject at a point in time.
// Date and time are kept as their wire representations ("2006-01-02" and
// "15:04:05") to match the DATE/TIME split in storage.
type Lesson struct {
	ID        int64        `json:"lesson_id"`
	TutorID   int64        `json:"tutor_id"`
	StudentID int64        `json:"student_id"`
	SubjectID int64        `json:"subject_id"`
	Date      string       `json:"lesson_date"`
	Time      string       `json:"lesson_time"`
	Status    LessonStatus `json:"status"`
}
