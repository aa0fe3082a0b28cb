// Package metrics defines and registers all custom Prometheus metrics for the
// time-clock API. It is the single source of truth for metric names, labels,
// and help strings.
//
// The promauto constructors register everything with the default Prometheus
// registry at package load time; the /metrics route is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timeclock"

// ── Work session metrics ──────────────────────────────────────────────────────

// SessionsStartedTotal counts clock-ins that produced a new work entry.
var SessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of work sessions started.",
	},
)

// SessionsEndedTotal counts clock-outs that closed an open work entry.
var SessionsEndedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of work sessions ended.",
	},
)

// SessionDurationMinutes measures the duration of completed sessions.
// Buckets span a quick errand up to a double shift.
var SessionDurationMinutes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_duration_minutes",
		Help:      "Duration in minutes of completed work sessions.",
		Buckets:   []float64{15, 30, 60, 120, 240, 480, 600, 720, 960},
	},
)

// SessionErrorsTotal counts clock-in/clock-out requests that failed.
// Label:
//   - reason: short description of the failure (e.g. "already_open", "entry_not_found")
var SessionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_errors_total",
		Help:      "Total number of failed work session operations.",
	},
	[]string{"reason"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsBuiltTotal counts wage report requests.
// Labels:
//   - selector: "all" or "single" depending on the employee selector
//   - scope: "month" when a month restriction was supplied, "all_time" otherwise
var ReportsBuiltTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_built_total",
		Help:      "Total number of wage reports built, by selector and scope.",
	},
	[]string{"selector", "scope"},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// EmployeeChangesTotal counts mutations of the employee directory.
// Label:
//   - action: "add", "update", or "delete"
var EmployeeChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_changes_total",
		Help:      "Total number of employee directory mutations, by action.",
	},
	[]string{"action"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
