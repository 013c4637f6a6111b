package domain

import "errors"

var ErrSubjectNotFound = errors.New("subject not found")

// Subject is a teachable discipline lessons are booked against.
type Subject struct {
	ID          int64  `json:"subject_id"`
	Name        string `json:"subject_name"`
	Description string `json:"description,omitempty"`
}
