package reconciler

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus collectors the three reconciler loops and
// their Supervisor report to (SPEC_FULL.md §5 expansion: "ambient
// observability is carried regardless of feature Non-goals").
type Metrics struct {
	LoopRestarts  *prometheus.CounterVec
	LoopPanics    *prometheus.CounterVec
	EventsHandled *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoopRestarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "axwm",
			Subsystem: "reconciler",
			Name:      "loop_restarts_total",
			Help:      "Number of times a reconciler loop body returned and was restarted by the supervisor.",
		}, []string{"loop"}),
		LoopPanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "axwm",
			Subsystem: "reconciler",
			Name:      "loop_panics_total",
			Help:      "Number of panics recovered from a reconciler loop body.",
		}, []string{"loop"}),
		EventsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "axwm",
			Subsystem: "reconciler",
			Name:      "events_handled_total",
			Help:      "Number of notifications handled per reconciler kind.",
		}, []string{"reconciler", "kind"}),
	}
	reg.MustRegister(m.LoopRestarts, m.LoopPanics, m.EventsHandled)
	return m
}
