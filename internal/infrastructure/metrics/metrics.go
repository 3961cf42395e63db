package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AssignmentMetrics covers the assignment write path and the
// reconciliation passes.
type AssignmentMetrics struct {
	AssignmentsCreatedTotal prometheus.CounterVec
	AssignmentsStoppedTotal prometheus.CounterVec

	LinksActivatedTotal   prometheus.CounterVec
	LinksDeactivatedTotal prometheus.CounterVec

	ReconcilerPassDuration    prometheus.HistogramVec
	ReconcilerPassErrorsTotal prometheus.CounterVec

	AssignmentErrorsTotal prometheus.CounterVec
}

func NewAssignmentMetrics() *AssignmentMetrics {
	return &AssignmentMetrics{
		AssignmentsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_assignments_created_total",
				Help: "Assignment records created, by assignee type",
			},
			[]string{"assignee_type"},
		),

		AssignmentsStoppedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_assignments_stopped_total",
				Help: "Assignment records stopped before their window elapsed",
			},
			[]string{"assignee_type"},
		),

		LinksActivatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_links_activated_total",
				Help: "Zone-commercial links flipped to active",
			},
			[]string{"source"},
		),

		LinksDeactivatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_links_deactivated_total",
				Help: "Zone-commercial links flipped to inactive",
			},
			[]string{"source"},
		),

		ReconcilerPassDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reconciler_pass_duration_seconds",
				Help:    "Duration of one reconciliation pass",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"pass"},
		),

		ReconcilerPassErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciler_pass_errors_total",
				Help: "Per-record failures inside reconciliation passes",
			},
			[]string{"pass"},
		),

		AssignmentErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_assignment_errors_total",
				Help: "Rejected or failed assignment operations",
			},
			[]string{"operation", "error_type"},
		),
	}
}

func (m *AssignmentMetrics) RecordAssignmentCreated(assigneeType string) {
	m.AssignmentsCreatedTotal.WithLabelValues(assigneeType).Inc()
}

func (m *AssignmentMetrics) RecordAssignmentStopped(assigneeType string) {
	m.AssignmentsStoppedTotal.WithLabelValues(assigneeType).Inc()
}

func (m *AssignmentMetrics) RecordLinkActivated(source string) {
	m.LinksActivatedTotal.WithLabelValues(source).Inc()
}

func (m *AssignmentMetrics) RecordLinkDeactivated(source string) {
	m.LinksDeactivatedTotal.WithLabelValues(source).Inc()
}

func (m *AssignmentMetrics) RecordPassDuration(pass string, durationSeconds float64) {
	m.ReconcilerPassDuration.WithLabelValues(pass).Observe(durationSeconds)
}

func (m *AssignmentMetrics) RecordPassError(pass string) {
	m.ReconcilerPassErrorsTotal.WithLabelValues(pass).Inc()
}

func (m *AssignmentMetrics) RecordError(operation, errorType string) {
	m.AssignmentErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
