// Package metrics exposes Prometheus counters for provisioning outcomes.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "snapfest_events_created_total", Help: "Total events provisioned successfully"},
	)
	CreateFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "snapfest_event_create_failures_total", Help: "Total failed event creations by stage"},
		[]string{"stage"},
	)
	EventsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "snapfest_events_deleted_total", Help: "Total event records deleted"},
	)
	RoleLinkSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "snapfest_role_link_skipped_total", Help: "Total creations where the best-effort user-record update failed"},
	)
)

func Register() {
	prometheus.MustRegister(EventsCreated, CreateFailures, EventsDeleted, RoleLinkSkipped)
}
