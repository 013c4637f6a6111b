package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/api/metrics"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes rating recomputation jobs to a fixed set of workers
// sharded by tutor id, so recomputes for the same tutor never run
// concurrently and cannot race each other's writes.
type Dispatcher struct {
	workers []chan int64
	ratings ports.RatingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, ratings ports.RatingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan int64, numWorkers),
		ratings: ratings,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan int64, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a recompute job to the worker responsible for the tutor.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(tutorID int64) {
	d.workers[d.shardIndex(tutorID)] <- tutorID
}

// shardIndex maps a tutor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(tutorID int64) int {
	return int(tutorID % int64(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan int64) {
	for {
		select {
		case <-ctx.Done():
			return
		case tutorID, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.ratings.Recalculate(ctx, tutorID); err != nil {
				metrics.RatingRecomputesTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Int64("tutor_id", tutorID).
					Int("worker_id", id).
					Msg("rating recompute failed")
				continue
			}
			metrics.RatingRecomputesTotal.WithLabelValues("ok").Inc()
			metrics.RatingRecomputeDuration.Observe(time.Since(start).Seconds())
		}
	}
}
