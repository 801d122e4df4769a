package reconciler

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/events"
)

// WriteIssuer resolves a core.Write's WindowID back to an
// accessibility.Element and issues it through an accessibility.Writer,
// after the topology mutex has already been released by the mutation that
// produced the write (spec.md §4.3 step 5, §5).
type WriteIssuer struct {
	Factory accessibility.Factory
	Writer  accessibility.Writer
	// Elements resolves a window id to its accessibility.Element; the core
	// model only stores ids on Write, so the issuer needs a side index.
	Elements func(windowID string) (accessibility.Element, bool)
	Reaper   *events.Reaper
	Logger   *logrus.Entry
}

// Issue applies every write in ws, reaping any element that reports
// InvalidUIElement (spec.md §7: "detected when a position/size write
// fails and the element is no longer valid. Triggers the reaper").
func (i *WriteIssuer) Issue(writes []core.Write) {
	for _, w := range writes {
		element, ok := i.Elements(w.WindowID)
		if !ok {
			continue
		}
		var err error
		switch w.Kind {
		case core.WriteSetFrame:
			err = i.Writer.SetFrame(element, w.Rect)
		case core.WriteFocus:
			err = i.Writer.Focus(element)
		case core.WriteShow:
			err = i.Writer.Show(element)
		case core.WriteHide:
			err = i.Writer.Hide(element)
		}
		if err == nil {
			continue
		}
		if accessibility.IsInvalidUIElement(err) && i.Reaper != nil {
			i.Reaper.InvalidWindow(w.WindowID)
			continue
		}
		if i.Logger != nil {
			i.Logger.WithError(err).WithField("window_id", w.WindowID).Warn("accessibility write failed")
		}
	}
}

// EventReconciler consumes events.WindowManagerEvent and mutates the
// topology accordingly (spec.md §4.5.1).
type EventReconciler struct {
	wm      *core.WindowManager
	ch      *events.Channels
	issuer  *WriteIssuer
	logger  *logrus.Entry
	metrics *Metrics
}

func NewEventReconciler(wm *core.WindowManager, ch *events.Channels, issuer *WriteIssuer, logger *logrus.Entry, metrics *Metrics) *EventReconciler {
	return &EventReconciler{wm: wm, ch: ch, issuer: issuer, logger: logger, metrics: metrics}
}

// Run drains events.Channels.WindowManagerEvents until ctx is cancelled;
// intended to be run under Supervisor.Supervise.
func (r *EventReconciler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-r.ch.WindowManagerEvents.Recv():
			r.handle(evt)
		}
	}
}

func (r *EventReconciler) handle(evt events.WindowManagerEvent) {
	if r.wm.Tunables.Paused.Load() {
		return
	}
	if r.metrics != nil {
		r.metrics.EventsHandled.WithLabelValues("event", evt.Kind.String()).Inc()
	}

	switch evt.Kind {
	case events.EventFocusChange:
		app, ok := r.wm.ApplicationForPid(evt.Pid)
		if !ok {
			return
		}
		windowID := evt.WindowID
		if windowID == "" {
			if id, ok := app.Element.WindowID(); ok {
				windowID = id
			}
		}
		if windowID == "" {
			return
		}
		r.issuer.Issue(r.wm.FocusWindow(windowID))

		if evt.Notification == events.NotificationMainWindowChanged {
			r.issuer.Issue(r.wm.ReapWindow(windowID))
		}

	case events.EventShow:
		app, ok := r.wm.ApplicationForPid(evt.Pid)
		if !ok {
			return
		}
		windowID, ok := app.Element.WindowID()
		if !ok {
			return
		}
		if r.wm.FocusedWorkspaceContainsWindow(windowID) {
			return // spurious re-show
		}
		w := &core.Window{ID: windowID, Pid: evt.Pid, Element: app.Element}
		r.issuer.Issue(r.wm.AddWindowToFocusedWorkspace(w))

	case events.EventDestroy:
		app, ok := r.wm.ApplicationForPid(evt.Pid)
		if ok {
			if id, ok := app.Element.WindowID(); ok {
				r.issuer.Issue(r.wm.ReapWindow(id))
			}
		}
		r.wm.GarbageCollectApplications(evt.Pid)

	case events.EventMinimize:
		r.issuer.Issue(r.wm.MinimizeWindow(evt.WindowID))

	case events.EventRestore:
		app, ok := r.wm.ApplicationForPid(evt.Pid)
		if !ok {
			return
		}
		w := &core.Window{ID: evt.WindowID, Pid: evt.Pid, Element: app.Element}
		r.issuer.Issue(r.wm.RestoreWindow(w))
	}
}
