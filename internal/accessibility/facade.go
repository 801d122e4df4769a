package accessibility

import "github.com/axwm/axwm/internal/geometry"

// Element is an opaque handle to a UI element owned by some application —
// the accessibility-API analogue of a window or application object.
// Equality is handle identity, not structural.
type Element interface {
	// WindowID returns the stable OS window id for this element, or false
	// if the element does not represent a window (e.g. an application
	// root element).
	WindowID() (string, bool)
	// Pid is the owning process id.
	Pid() int
	// Title reads the element's cached title attribute.
	Title() (string, error)
}

// Observer is a per-process accessibility notification subscription
// primitive (spec.md §4.6).
type Observer interface {
	// AddNotification subscribes name on element. Re-subscribing an
	// already-registered (element, name) pair is treated as success
	// (spec.md §4.6: "treats already registered as success").
	AddNotification(element Element, name string, context any) error
	// RemoveNotification unsubscribes name from element.
	RemoveNotification(element Element, name string) error
	// Invalidate tears down the observer; after it returns, no further
	// callbacks for this observer occur.
	Invalidate() error
}

// NotificationCallback is invoked by an Observer's run loop attachment for
// every subscribed notification that fires.
type NotificationCallback func(element Element, notification string, context any)

// Factory constructs observers and resolves elements, the entry point of
// the façade (spec.md §4.6).
type Factory interface {
	// CreateObserver never returns a partially constructed Observer: on
	// any underlying error the call fails without leaking (spec.md §4.6).
	CreateObserver(pid int, callback NotificationCallback) (Observer, error)
	// AddToRunLoop subscribes every name in names on element via observer.
	AddToRunLoop(observer Observer, element Element, names []string, context any) error
	// ApplicationElement resolves the root UI element for a running
	// process id.
	ApplicationElement(pid int) (Element, error)
}

// Writer issues OS-directed geometry and focus commands against an
// Element. Every method returns a typed *Error on failure so the caller
// (the reconciler) can distinguish a transient failure from an
// InvalidUIElement that should trigger a reap (spec.md §7).
type Writer interface {
	SetPosition(element Element, x, y int) error
	SetSize(element Element, width, height int) error
	SetFrame(element Element, rect geometry.Rect) error
	Focus(element Element) error
	Show(element Element) error
	Hide(element Element) error
}
