package events

import (
	"context"

	"github.com/axwm/axwm/internal/accessibility"
)

// AccessibilityListener normalizes one application's raw accessibility
// callbacks into WindowManagerEvent values (spec.md §4.4). The real
// callback registration against the host's observer run loop is an
// external collaborator; this type is the normalization step every
// concrete binding would call into.
type AccessibilityListener struct {
	channels *Channels
}

func NewAccessibilityListener(channels *Channels) *AccessibilityListener {
	return &AccessibilityListener{channels: channels}
}

// Deliver is the accessibility.NotificationCallback this listener
// registers via accessibility.Factory.AddToRunLoop.
func (l *AccessibilityListener) Deliver(element accessibility.Element, notification string, _ any) {
	windowID, _ := element.WindowID()
	evt, ok := FromNotification(AccessibilityNotification(notification), element.Pid(), windowID)
	if !ok {
		return
	}
	l.channels.WindowManagerEvents.TrySend(evt)
}

// SystemNotificationListener translates OS workspace/session notifications
// into typed events, and into a WindowManagerEvent when a pid can be
// recovered from the payload (spec.md §4.4).
type SystemNotificationListener struct {
	channels *Channels
}

func NewSystemNotificationListener(channels *Channels) *SystemNotificationListener {
	return &SystemNotificationListener{channels: channels}
}

func (l *SystemNotificationListener) Deliver(n SystemNotification) {
	l.channels.SystemNotifications.TrySend(n)
	if n.Pid == 0 {
		return
	}
	switch n.Kind {
	case SystemAppTerminated:
		l.channels.WindowManagerEvents.TrySend(WindowManagerEvent{Kind: EventDestroy, Pid: n.Pid})
	case SystemAppLaunched, SystemAppUnhidden:
		l.channels.WindowManagerEvents.TrySend(WindowManagerEvent{Kind: EventShow, Pid: n.Pid})
	}
}

// DisplayReconfigListener translates display callbacks into
// MonitorNotification values (spec.md §4.4).
type DisplayReconfigListener struct {
	channels *Channels
}

func NewDisplayReconfigListener(channels *Channels) *DisplayReconfigListener {
	return &DisplayReconfigListener{channels: channels}
}

func (l *DisplayReconfigListener) Resize(displayID string) {
	l.channels.MonitorNotifications.TrySend(MonitorNotification{Kind: MonitorResize, DisplayID: displayID})
}

func (l *DisplayReconfigListener) ConnectionChange(displayID string) {
	l.channels.MonitorNotifications.TrySend(MonitorNotification{Kind: MonitorDisplayConnectionChange, DisplayID: displayID})
}

// InputEventTap watches global mouse-up/key-up. Every event triggers a
// reaper rescan (MouseUpKeyUp is always sent, "to recheck validity" per
// spec.md §4.4); when a foreground window id is available it additionally
// emits a ManualNotification.
type InputEventTap struct {
	channels *Channels
}

func NewInputEventTap(channels *Channels) *InputEventTap {
	return &InputEventTap{channels: channels}
}

func (t *InputEventTap) Deliver(foregroundWindowID string) {
	t.channels.ReaperNotifications.TrySend(ReaperNotification{Kind: ReaperMouseUpKeyUp})
	if foregroundWindowID != "" {
		t.channels.ManualNotifications.TrySend(ManualNotification{Kind: ManualShowOnInputEvent, WindowID: foregroundWindowID})
	}
}

// Reaper publishes InvalidWindow notifications on write failure, in
// addition to the MouseUpKeyUp notifications InputEventTap already
// contributes (spec.md §4.4).
type Reaper struct {
	channels *Channels
}

func NewReaper(channels *Channels) *Reaper {
	return &Reaper{channels: channels}
}

func (r *Reaper) InvalidWindow(windowID string) {
	r.channels.ReaperNotifications.TrySend(ReaperNotification{Kind: ReaperInvalidWindow, WindowID: windowID})
}

// CommandListener is the UNIX-socket command producer; the socket
// framing/parsing lives in internal/ipc. This type is the seam a parsed
// SocketMessage crosses into the event pipeline, kept here so every
// producer — including the command path — funnels through the same
// Channels bundle (spec.md §4.4).
type CommandListener struct {
	channels *Channels
}

func NewCommandListener(channels *Channels) *CommandListener {
	return &CommandListener{channels: channels}
}

// Dispatch is a placeholder seam: internal/ipc calls directly into
// core.WindowManager mutations rather than round-tripping through a
// channel, since spec.md §4.4 describes the command listener as
// "delegates to the corresponding WindowManager mutation" — no
// intermediate event type is named for it, unlike the other five
// producers which normalize into one.
func (l *CommandListener) Dispatch(ctx context.Context, fn func(context.Context)) {
	fn(ctx)
}
