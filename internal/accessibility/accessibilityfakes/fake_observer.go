// Package accessibilityfakes holds hand-written test doubles for the
// accessibility façade, written in the counterfeiter generated-fake idiom
// (a struct per interface method recording call args and returning
// pre-programmed results) rather than relying on code generation.
package accessibilityfakes

import (
	"sync"

	"github.com/axwm/axwm/internal/accessibility"
)

// FakeObserver is a spy/stub double for accessibility.Observer.
type FakeObserver struct {
	mu sync.Mutex

	AddNotificationStub        func(accessibility.Element, string, any) error
	addNotificationCalls       []addNotificationCall
	AddNotificationReturns     error

	RemoveNotificationStub    func(accessibility.Element, string) error
	removeNotificationCalls   []removeNotificationCall
	RemoveNotificationReturns error

	InvalidateStub    func() error
	invalidateCalls   int
	InvalidateReturns error
}

type addNotificationCall struct {
	Element accessibility.Element
	Name    string
	Context any
}

type removeNotificationCall struct {
	Element accessibility.Element
	Name    string
}

var _ accessibility.Observer = (*FakeObserver)(nil)

func (f *FakeObserver) AddNotification(element accessibility.Element, name string, context any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addNotificationCalls = append(f.addNotificationCalls, addNotificationCall{element, name, context})
	if f.AddNotificationStub != nil {
		return f.AddNotificationStub(element, name, context)
	}
	return f.AddNotificationReturns
}

func (f *FakeObserver) AddNotificationCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.addNotificationCalls)
}

func (f *FakeObserver) AddNotificationArgsForCall(i int) (accessibility.Element, string, any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.addNotificationCalls[i]
	return c.Element, c.Name, c.Context
}

func (f *FakeObserver) RemoveNotification(element accessibility.Element, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeNotificationCalls = append(f.removeNotificationCalls, removeNotificationCall{element, name})
	if f.RemoveNotificationStub != nil {
		return f.RemoveNotificationStub(element, name)
	}
	return f.RemoveNotificationReturns
}

func (f *FakeObserver) RemoveNotificationCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.removeNotificationCalls)
}

func (f *FakeObserver) Invalidate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidateCalls++
	if f.InvalidateStub != nil {
		return f.InvalidateStub()
	}
	return f.InvalidateReturns
}

func (f *FakeObserver) InvalidateCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalidateCalls
}
