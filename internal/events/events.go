// Package events defines the typed event and notification shapes the
// producers emit and the reconcilers consume, plus the bounded-channel
// infrastructure that connects them (spec.md §4.4, §5).
package events

// AccessibilityNotification names the host notification an event was
// derived from, carried through for logging even once normalized into a
// WindowManagerEvent (grounded on
// original_source/komorebi/src/window_manager_event.rs).
type AccessibilityNotification string

const (
	NotificationMainWindowChanged     AccessibilityNotification = "AXMainWindowChanged"
	NotificationApplicationActivated  AccessibilityNotification = "AXApplicationActivated"
	NotificationWindowCreated         AccessibilityNotification = "AXWindowCreated"
	NotificationApplicationShown      AccessibilityNotification = "AXApplicationShown"
	NotificationUIElementDestroyed    AccessibilityNotification = "AXUIElementDestroyed"
	NotificationWindowMiniaturized    AccessibilityNotification = "AXWindowMiniaturized"
	NotificationWindowDeminiaturized  AccessibilityNotification = "AXWindowDeminiaturized"
)

// WindowManagerEventKind tags the variant of a WindowManagerEvent.
type WindowManagerEventKind int

const (
	EventFocusChange WindowManagerEventKind = iota
	EventShow
	EventDestroy
	EventMinimize
	EventRestore
)

func (k WindowManagerEventKind) String() string {
	switch k {
	case EventFocusChange:
		return "focus_change"
	case EventShow:
		return "show"
	case EventDestroy:
		return "destroy"
	case EventMinimize:
		return "minimize"
	case EventRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// WindowManagerEvent is the normalized shape every accessibility callback
// is translated into before reaching the event reconciler (spec.md §4.4).
type WindowManagerEvent struct {
	Kind         WindowManagerEventKind
	Notification AccessibilityNotification
	Pid          int
	WindowID     string // empty unless Kind is Minimize/Restore, or FocusChange carried one
}

// FromNotification mirrors
// WindowManagerEvent::from_ax_notification: it maps a raw accessibility
// notification name (plus pid/optional window id) onto a typed event, or
// reports ok=false for notifications the core does not act on.
func FromNotification(n AccessibilityNotification, pid int, windowID string) (WindowManagerEvent, bool) {
	switch n {
	case NotificationMainWindowChanged, NotificationApplicationActivated:
		return WindowManagerEvent{Kind: EventFocusChange, Notification: n, Pid: pid, WindowID: windowID}, true
	case NotificationWindowCreated, NotificationApplicationShown:
		return WindowManagerEvent{Kind: EventShow, Notification: n, Pid: pid}, true
	case NotificationUIElementDestroyed:
		return WindowManagerEvent{Kind: EventDestroy, Notification: n, Pid: pid}, true
	case NotificationWindowMiniaturized:
		if windowID == "" {
			return WindowManagerEvent{}, false
		}
		return WindowManagerEvent{Kind: EventMinimize, Notification: n, Pid: pid, WindowID: windowID}, true
	case NotificationWindowDeminiaturized:
		if windowID == "" {
			return WindowManagerEvent{}, false
		}
		return WindowManagerEvent{Kind: EventRestore, Notification: n, Pid: pid, WindowID: windowID}, true
	default:
		return WindowManagerEvent{}, false
	}
}

// SystemNotificationKind enumerates the OS workspace/session notifications
// the system-notification listener translates (spec.md §4.4).
type SystemNotificationKind int

const (
	SystemAppLaunched SystemNotificationKind = iota
	SystemAppTerminated
	SystemSessionActive
	SystemSessionInactive
	SystemAppHidden
	SystemAppUnhidden
	SystemVolumeMounted
	SystemVolumeUnmounted
	SystemActiveSpaceChanged
	SystemWake
)

type SystemNotification struct {
	Kind SystemNotificationKind
	Pid  int // 0 when the notification payload carries no process id
}

// MonitorNotificationKind enumerates display-reconfiguration callbacks
// (spec.md §4.4).
type MonitorNotificationKind int

const (
	MonitorResize MonitorNotificationKind = iota
	MonitorDisplayConnectionChange
)

type MonitorNotification struct {
	Kind      MonitorNotificationKind
	DisplayID string
}

// ReaperNotificationKind enumerates the two triggers that make the reaper
// rescan the topology (spec.md §4.4).
type ReaperNotificationKind int

const (
	ReaperInvalidWindow ReaperNotificationKind = iota
	ReaperMouseUpKeyUp
)

type ReaperNotification struct {
	Kind     ReaperNotificationKind
	WindowID string // set only when Kind is ReaperInvalidWindow
}

// ManualNotificationKind enumerates input-tap-derived notifications that
// are not reaper triggers (spec.md §4.4).
type ManualNotificationKind int

const (
	ManualShowOnInputEvent ManualNotificationKind = iota
)

type ManualNotification struct {
	Kind     ManualNotificationKind
	WindowID string
}

// WorkspaceFocusNotification is the payload the workspace-focus reconciler
// debounces (spec.md §4.5.2).
type WorkspaceFocusNotification struct {
	MonitorIdx   int
	WorkspaceIdx int
	TriggeredBy  string
}
