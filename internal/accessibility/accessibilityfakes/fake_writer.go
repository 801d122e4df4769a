package accessibilityfakes

import (
	"sync"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/geometry"
)

// FakeWriter records every write it receives and lets a test program a
// per-element failure (e.g. accessibility.InvalidUIElement) without a
// gomock.Controller, for reconciler tests that want to assert "this
// element's next write fails" inline.
type FakeWriter struct {
	mu      sync.Mutex
	Frames  map[string]geometry.Rect
	Focused string
	Shown   map[string]bool
	FailNext map[string]*accessibility.Error
}

func NewFakeWriter() *FakeWriter {
	return &FakeWriter{
		Frames:   make(map[string]geometry.Rect),
		Shown:    make(map[string]bool),
		FailNext: make(map[string]*accessibility.Error),
	}
}

var _ accessibility.Writer = (*FakeWriter)(nil)

func (f *FakeWriter) failFor(element accessibility.Element) error {
	id, _ := element.WindowID()
	if err, ok := f.FailNext[id]; ok {
		delete(f.FailNext, id)
		return err
	}
	return nil
}

func (f *FakeWriter) SetPosition(element accessibility.Element, x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor(element); err != nil {
		return err
	}
	id, _ := element.WindowID()
	r := f.Frames[id]
	r.Left, r.Top = x, y
	f.Frames[id] = r
	return nil
}

func (f *FakeWriter) SetSize(element accessibility.Element, width, height int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor(element); err != nil {
		return err
	}
	id, _ := element.WindowID()
	r := f.Frames[id]
	r.Right, r.Bottom = width, height
	f.Frames[id] = r
	return nil
}

func (f *FakeWriter) SetFrame(element accessibility.Element, rect geometry.Rect) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor(element); err != nil {
		return err
	}
	id, _ := element.WindowID()
	f.Frames[id] = rect
	return nil
}

func (f *FakeWriter) Focus(element accessibility.Element) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor(element); err != nil {
		return err
	}
	id, _ := element.WindowID()
	f.Focused = id
	return nil
}

func (f *FakeWriter) Show(element accessibility.Element) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor(element); err != nil {
		return err
	}
	id, _ := element.WindowID()
	f.Shown[id] = true
	return nil
}

func (f *FakeWriter) Hide(element accessibility.Element) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor(element); err != nil {
		return err
	}
	id, _ := element.WindowID()
	f.Shown[id] = false
	return nil
}
