// Package reconciler implements the three coordinated loops that consume
// event-producer output and mutate the topology, plus the supervisor that
// restarts a crashed loop (spec.md §4.5, §9).
package reconciler

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/panics"
)

// Loop is one supervised reconciler body: run once, blocking until ctx is
// cancelled or it panics.
type Loop struct {
	Name string
	Run  func(ctx context.Context)
}

// Supervisor restarts a Loop after logging any panic it recovers, the Go
// rendering of spec.md §9's "loop { handle_notifications(); log_restart(); }".
type Supervisor struct {
	logger  *logrus.Entry
	metrics *Metrics
}

func NewSupervisor(logger *logrus.Entry, metrics *Metrics) *Supervisor {
	return &Supervisor{logger: logger, metrics: metrics}
}

// Supervise runs loop.Run repeatedly until ctx is cancelled, restarting it
// every time the body returns (including via recovered panic) and logging
// a warning each time (spec.md §4.5: "Each loop is wrapped in a supervisor
// that restarts it on panic with a warning").
func (s *Supervisor) Supervise(ctx context.Context, loop Loop) {
	for {
		if ctx.Err() != nil {
			return
		}

		var c panics.Catcher
		c.Try(func() {
			loop.Run(ctx)
		})

		if r := c.Recovered(); r != nil {
			s.logger.WithFields(logrus.Fields{
				"loop":  loop.Name,
				"panic": r.Value,
				"stack": r.Stack,
			}).Error("reconciler loop panicked, restarting")
			if s.metrics != nil {
				s.metrics.LoopPanics.WithLabelValues(loop.Name).Inc()
				s.metrics.LoopRestarts.WithLabelValues(loop.Name).Inc()
			}
			continue
		}

		if ctx.Err() != nil {
			return
		}
		s.logger.WithField("loop", loop.Name).Warn("reconciler loop exited, restarting")
		if s.metrics != nil {
			s.metrics.LoopRestarts.WithLabelValues(loop.Name).Inc()
		}
	}
}
