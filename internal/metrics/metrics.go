// Package metrics holds the process-wide Prometheus registry and the
// collectors that do not belong to any single reconciler loop (those live
// alongside their owner in internal/reconciler): gauges for the Paused and
// MouseFollowsFocus tunables and the attached-monitor count, a mutex
// hold-time histogram, and the dropped-command counter. Only
// CommandsDropped is updated by axwmd (in internal/ipc.Server); nothing
// sets the gauges or calls TimeMutation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles a dedicated prometheus.Registry (not the global
// DefaultRegisterer, so tests can construct an isolated Registry per case
// the way internal/reconciler's Metrics does) with axwmd's process-level
// collectors.
type Registry struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Paused            prometheus.Gauge
	MouseFollowsFocus prometheus.Gauge
	MonitorsAttached  prometheus.Gauge
	MutexHoldSeconds  prometheus.Histogram
	CommandsDropped   *prometheus.CounterVec
}

// New builds and registers every collector against a fresh registry.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		Registerer: reg,
		Gatherer:   reg,
		Paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "axwm",
			Name:      "paused",
			Help:      "1 when reconciliation is paused, 0 otherwise.",
		}),
		MouseFollowsFocus: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "axwm",
			Name:      "mouse_follows_focus",
			Help:      "1 when mouse-follows-focus is enabled, 0 otherwise.",
		}),
		MonitorsAttached: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "axwm",
			Name:      "monitors_attached",
			Help:      "Number of monitors currently known to the topology.",
		}),
		MutexHoldSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "axwm",
			Name:      "mutex_hold_seconds",
			Help:      "Time a mutation held the topology mutex.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		CommandsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "axwm",
			Subsystem: "ipc",
			Name:      "commands_dropped_total",
			Help:      "Commands dropped because the topology mutex was not free within budget.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		r.Paused,
		r.MouseFollowsFocus,
		r.MonitorsAttached,
		r.MutexHoldSeconds,
		r.CommandsDropped,
	)
	return r
}

// TimeMutation returns a func to defer that records the elapsed time in
// MutexHoldSeconds: `defer reg.TimeMutation()()`.
func (r *Registry) TimeMutation() func() {
	start := time.Now()
	return func() {
		r.MutexHoldSeconds.Observe(time.Since(start).Seconds())
	}
}
