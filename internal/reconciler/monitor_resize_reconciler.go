package reconciler

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/events"
	"github.com/axwm/axwm/internal/geometry"
)

// DisplayBoundsQuery resolves a display id to its current pixel bounds.
// The real CoreGraphics display query is outside this module's scope
// (spec.md Non-goals: "no real accessibility API bindings"); any concrete
// binding supplies this.
type DisplayBoundsQuery func(displayID string) (geometry.Rect, bool)

// MonitorResizeReconciler consumes events.MonitorNotification and
// re-derives a monitor's work area when its display bounds change
// (spec.md §4.5.3, S5).
type MonitorResizeReconciler struct {
	wm      *core.WindowManager
	ch      *events.Channels
	issuer  *WriteIssuer
	query   DisplayBoundsQuery
	logger  *logrus.Entry
	metrics *Metrics
}

func NewMonitorResizeReconciler(wm *core.WindowManager, ch *events.Channels, query DisplayBoundsQuery, issuer *WriteIssuer, logger *logrus.Entry, metrics *Metrics) *MonitorResizeReconciler {
	return &MonitorResizeReconciler{wm: wm, ch: ch, issuer: issuer, query: query, logger: logger, metrics: metrics}
}

func (r *MonitorResizeReconciler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-r.ch.MonitorNotifications.Recv():
			r.handle(n)
		}
	}
}

func (r *MonitorResizeReconciler) handle(n events.MonitorNotification) {
	if n.Kind != events.MonitorResize {
		return
	}
	if r.metrics != nil {
		r.metrics.EventsHandled.WithLabelValues("monitor_resize", n.DisplayID).Inc()
	}

	bounds, ok := r.query(n.DisplayID)
	if !ok {
		if r.logger != nil {
			r.logger.WithField("display_id", n.DisplayID).Warn("monitor resize notification for unknown display, dropping")
		}
		return
	}

	r.issuer.Issue(r.wm.UpdateMonitorWorkArea(n.DisplayID, bounds))
}
