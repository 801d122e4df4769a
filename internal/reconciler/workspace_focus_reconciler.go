package reconciler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/events"
)

// focusCooldown is the minimum spacing between workspace-focus
// reconciliations (spec.md §4.5.2, original_source's COOLDOWN_MS = 1000).
const focusCooldown = time.Second

// WorkspaceFocusReconciler consumes events.WorkspaceFocusNotification and
// aligns the model's focused monitor/workspace with what macOS's active
// space actually is, debounced to one reconciliation per focusCooldown and
// guarded against reconciling into an empty workspace (spec.md §4.5.2, S4).
type WorkspaceFocusReconciler struct {
	wm       *core.WindowManager
	ch       *events.Channels
	issuer   *WriteIssuer
	logger   *logrus.Entry
	metrics  *Metrics
	limiter  *rate.Limiter
	inFlight atomic.Bool
}

func NewWorkspaceFocusReconciler(wm *core.WindowManager, ch *events.Channels, issuer *WriteIssuer, logger *logrus.Entry, metrics *Metrics) *WorkspaceFocusReconciler {
	return &WorkspaceFocusReconciler{
		wm:      wm,
		ch:      ch,
		issuer:  issuer,
		logger:  logger,
		metrics: metrics,
		limiter: rate.NewLimiter(rate.Every(focusCooldown), 1),
	}
}

func (r *WorkspaceFocusReconciler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-r.ch.WorkspaceFocus.Recv():
			r.handle(n)
		}
	}
}

func (r *WorkspaceFocusReconciler) handle(n events.WorkspaceFocusNotification) {
	if !r.inFlight.CompareAndSwap(false, true) {
		if r.logger != nil {
			r.logger.WithField("triggered_by", n.TriggeredBy).Debug("workspace focus reconciliation already in progress, dropping")
		}
		return
	}
	defer r.inFlight.Store(false)

	if r.metrics != nil {
		r.metrics.EventsHandled.WithLabelValues("workspace_focus", n.TriggeredBy).Inc()
	}

	if !r.limiter.Allow() {
		if r.logger != nil {
			r.logger.WithField("triggered_by", n.TriggeredBy).Debug("workspace focus reconciliation cooling down, dropping")
		}
		return
	}

	curMonitor, curWorkspace, ok := r.wm.FocusedPair()
	if ok && curMonitor == n.MonitorIdx && curWorkspace == n.WorkspaceIdx {
		return
	}

	if r.wm.FocusedWorkspaceIsEmpty() {
		// S4: an empty workspace never steals focus from a non-empty one.
		return
	}

	r.issuer.Issue(r.wm.FocusMonitorWorkspace(n.MonitorIdx, n.WorkspaceIdx))
}
