package events

import "github.com/sirupsen/logrus"

// defaultDepth matches spec.md §5's "typical depth 20-50" for every
// inter-thread queue.
const defaultDepth = 32

// Bounded wraps a channel of T with a TrySend that drops and logs on
// overflow instead of blocking (spec.md §4.4, §5: "publish with try-send;
// drop on overflow with a warning. This back-pressures misbehaving
// producers without blocking the OS event thread").
type Bounded[T any] struct {
	ch     chan T
	name   string
	logger *logrus.Entry
	onDrop func()
}

func NewBounded[T any](name string, depth int, logger *logrus.Entry, onDrop func()) *Bounded[T] {
	if depth <= 0 {
		depth = defaultDepth
	}
	return &Bounded[T]{ch: make(chan T, depth), name: name, logger: logger, onDrop: onDrop}
}

// TrySend publishes v without blocking, reporting whether it was enqueued.
func (b *Bounded[T]) TrySend(v T) bool {
	select {
	case b.ch <- v:
		return true
	default:
		if b.logger != nil {
			b.logger.WithField("channel", b.name).Warn("channel full, dropping event")
		}
		if b.onDrop != nil {
			b.onDrop()
		}
		return false
	}
}

// Recv exposes the underlying receive-only channel for a consumer's
// select loop.
func (b *Bounded[T]) Recv() <-chan T {
	return b.ch
}

// Channels bundles one Bounded channel per producer kind, created once per
// daemon instance and threaded through the WindowManager/reconcilers
// rather than held as a process-wide singleton registry — one of the two
// models spec.md §9 calls acceptable for "global" channel identity.
type Channels struct {
	WindowManagerEvents *Bounded[WindowManagerEvent]
	SystemNotifications *Bounded[SystemNotification]
	MonitorNotifications *Bounded[MonitorNotification]
	ReaperNotifications *Bounded[ReaperNotification]
	ManualNotifications *Bounded[ManualNotification]
	WorkspaceFocus       *Bounded[WorkspaceFocusNotification]
}

func NewChannels(logger *logrus.Entry, onDrop func()) *Channels {
	return &Channels{
		WindowManagerEvents:  NewBounded[WindowManagerEvent]("window_manager_events", 0, logger, onDrop),
		SystemNotifications:  NewBounded[SystemNotification]("system_notifications", 0, logger, onDrop),
		MonitorNotifications: NewBounded[MonitorNotification]("monitor_notifications", 0, logger, onDrop),
		ReaperNotifications:  NewBounded[ReaperNotification]("reaper_notifications", 0, logger, onDrop),
		ManualNotifications:  NewBounded[ManualNotification]("manual_notifications", 0, logger, onDrop),
		WorkspaceFocus:       NewBounded[WorkspaceFocusNotification]("workspace_focus", 0, logger, onDrop),
	}
}
