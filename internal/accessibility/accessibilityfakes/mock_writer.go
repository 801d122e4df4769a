package accessibilityfakes

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/geometry"
)

// MockWriter is a gomock.Controller-driven mock for accessibility.Writer,
// hand-written in the shape mockgen would generate for this interface —
// the corpus's other mocking idiom (golang/mock) covers Writer while
// FakeObserver above covers Observer in the counterfeiter idiom, so the
// same façade is exercised by both test doubles.
type MockWriter struct {
	ctrl     *gomock.Controller
	recorder *MockWriterMockRecorder
}

type MockWriterMockRecorder struct {
	mock *MockWriter
}

func NewMockWriter(ctrl *gomock.Controller) *MockWriter {
	m := &MockWriter{ctrl: ctrl}
	m.recorder = &MockWriterMockRecorder{m}
	return m
}

func (m *MockWriter) EXPECT() *MockWriterMockRecorder {
	return m.recorder
}

var _ accessibility.Writer = (*MockWriter)(nil)

func (m *MockWriter) SetPosition(element accessibility.Element, x, y int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPosition", element, x, y)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockWriterMockRecorder) SetPosition(element, x, y any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPosition", reflect.TypeOf((*MockWriter)(nil).SetPosition), element, x, y)
}

func (m *MockWriter) SetSize(element accessibility.Element, width, height int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetSize", element, width, height)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockWriterMockRecorder) SetSize(element, width, height any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSize", reflect.TypeOf((*MockWriter)(nil).SetSize), element, width, height)
}

func (m *MockWriter) SetFrame(element accessibility.Element, rect geometry.Rect) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetFrame", element, rect)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockWriterMockRecorder) SetFrame(element, rect any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetFrame", reflect.TypeOf((*MockWriter)(nil).SetFrame), element, rect)
}

func (m *MockWriter) Focus(element accessibility.Element) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Focus", element)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockWriterMockRecorder) Focus(element any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Focus", reflect.TypeOf((*MockWriter)(nil).Focus), element)
}

func (m *MockWriter) Show(element accessibility.Element) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Show", element)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockWriterMockRecorder) Show(element any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Show", reflect.TypeOf((*MockWriter)(nil).Show), element)
}

func (m *MockWriter) Hide(element accessibility.Element) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hide", element)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockWriterMockRecorder) Hide(element any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hide", reflect.TypeOf((*MockWriter)(nil).Hide), element)
}
