package domain

import "errors"

var ErrTutorNotFound = errors.New("tutor not found")

// Tutor is the profile attached to a user with the tutor role.
type Tutor struct {
	ID          int64   `json:"tutor_id"`
	UserID      int64   `json:"user_id"`
	Description string  `json:"description"`
	Experience  int     `json:"experience"`
	Rating      float64 `json:"rating"`
}
