package core

import "github.com/axwm/axwm/internal/geometry"

// WriteKind identifies the OS-directed side effect a Write describes.
type WriteKind int

const (
	WriteSetFrame WriteKind = iota
	WriteFocus
	WriteShow
	WriteHide
)

// Write is an OS-directed side effect produced by a topology mutation. The
// caller issues it through accessibility.Writer only after the topology
// mutex has been released (spec.md §4.3 step 5, §5).
type Write struct {
	Kind     WriteKind
	WindowID string
	Rect     geometry.Rect
}

