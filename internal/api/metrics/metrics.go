// Package metrics defines and registers all custom Prometheus metrics for the
// tutoring API. It is the single source of truth for metric names, labels,
// and help strings.
//
// All metrics register themselves with the default Prometheus registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tutoring"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "tutor" or "student"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// TokenVerificationsTotal counts bearer-token checks on protected routes.
// Label:
//   - result: "valid" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of access token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Lesson metrics ────────────────────────────────────────────────────────────

// LessonsBookedTotal counts newly booked lessons.
var LessonsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lessons_booked_total",
		Help:      "Total number of lessons booked.",
	},
)

// LessonTransitionsTotal counts lesson status changes.
// Label:
//   - status: the new lesson status ("completed" or "canceled")
var LessonTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lesson_transitions_total",
		Help:      "Total number of lesson status transitions, by new status.",
	},
	[]string{"status"},
)

// ── Rating metrics ────────────────────────────────────────────────────────────

// RatingRecomputesTotal counts asynchronous tutor rating recomputations.
// Label:
//   - result: "ok" or "error"
var RatingRecomputesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_recomputes_total",
		Help:      "Total number of tutor rating recomputations, labelled by result.",
	},
	[]string{"result"},
)

// RatingRecomputeDuration measures how long a single rating recompute takes.
var RatingRecomputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_recompute_duration_seconds",
		Help:      "Duration of a tutor rating recomputation.",
		Buckets:   prometheus.DefBuckets,
	},
)
