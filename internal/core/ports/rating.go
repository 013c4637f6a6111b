package ports

import "context"

// RatingService recomputes a tutor's aggregate rating from its feedback.
type RatingService interface {
	Recalculate(ctx context.Context, tutorID int64) error
}

// RatingQueue hands a tutor id to the asynchronous rating recompute pipeline.
// Enqueue never blocks the caller beyond the queue buffer.
type RatingQueue interface {
	Enqueue(tutorID int64)
}
