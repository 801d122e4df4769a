package accessibility

import "github.com/axwm/axwm/internal/geometry"

// Noop discards every write and reports every element as valid. It is the
// Writer/Factory used when the host event loop is unavailable, e.g. a
// non-interactive test run or a platform without the accessibility
// permission granted yet.
type Noop struct{}

var (
	_ Writer  = Noop{}
	_ Factory = Noop{}
)

func (Noop) SetPosition(Element, int, int) error           { return nil }
func (Noop) SetSize(Element, int, int) error                { return nil }
func (Noop) SetFrame(Element, geometry.Rect) error           { return nil }
func (Noop) Focus(Element) error                             { return nil }
func (Noop) Show(Element) error                              { return nil }
func (Noop) Hide(Element) error                              { return nil }

func (Noop) CreateObserver(pid int, cb NotificationCallback) (Observer, error) {
	return noopObserver{}, nil
}

func (Noop) AddToRunLoop(Observer, Element, []string, any) error { return nil }

func (Noop) ApplicationElement(pid int) (Element, error) {
	return nil, NewError("ApplicationElement", NotImplemented)
}

type noopObserver struct{}

func (noopObserver) AddNotification(Element, string, any) error { return nil }
func (noopObserver) RemoveNotification(Element, string) error   { return nil }
func (noopObserver) Invalidate() error                           { return nil }
