// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "frota"

// Regeneration results.
const (
	RegenerationCreated    = "created"
	RegenerationExisting   = "existing"
	RegenerationNoTemplate = "no_template"
	RegenerationInactive   = "inactive"
)

var (
	// HTTPRequestsTotal counts served requests.
	// Labels: method, route, status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PayablesPaidTotal counts payables transitioned to Pago.
	// Labels: category, outcome (paid, already_paid)
	PayablesPaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "finance",
			Name:      "payables_paid_total",
			Help:      "Total number of accounts payable entries marked as paid",
		},
		[]string{"category", "outcome"},
	)

	// CostsCreatedTotal counts cost rows written.
	// Labels: origin
	CostsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "finance",
			Name:      "costs_created_total",
			Help:      "Total number of cost rows created by origin",
		},
		[]string{"origin"},
	)

	// RecurringRegenerationsTotal counts next-cycle regeneration attempts.
	// Labels: result (created, existing, no_template, inactive)
	RecurringRegenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "finance",
			Name:      "recurring_regenerations_total",
			Help:      "Total number of next-cycle regenerations by result",
		},
		[]string{"result"},
	)

	// PayablesGeneratedTotal counts payables created by monthly generation runs.
	// Labels: source (recurring_expense, salary)
	PayablesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "finance",
			Name:      "payables_generated_total",
			Help:      "Total number of payables created by monthly generation",
		},
		[]string{"source"},
	)

	// NotificationsTotal counts damage notification outcomes reported by the dispatcher.
	// Labels: result (queued, sent, failed)
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "damage_total",
			Help:      "Total number of damage notifications by result",
		},
		[]string{"result"},
	)

	// SchedulerRunsTotal counts scheduled generation runs.
	// Labels: job, result (success, error)
	SchedulerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Total number of scheduled job runs",
		},
		[]string{"job", "result"},
	)
)
