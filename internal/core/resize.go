package core

import (
	"github.com/axwm/axwm/internal/geometry"
	"github.com/axwm/axwm/internal/layout"
)

// resizeStep is the per-command adjustment magnitude for
// ResizeContainerEdge/ResizeContainerAxis. spec.md §4.2.2 defines how an
// adjustment is applied but not its step size; this value (in the same
// integer pixel units as every other Rect field) is this implementation's
// choice, left as a Workspace-independent constant rather than a tunable
// since no invariant depends on its exact magnitude.
const resizeStep = 50

// Sizing selects whether a resize command grows or shrinks an edge.
type Sizing int

const (
	SizingIncrease Sizing = iota
	SizingDecrease
)

func (s Sizing) delta() int {
	if s == SizingDecrease {
		return -resizeStep
	}
	return resizeStep
}

// Axis selects which pair of opposing edges ResizeContainerAxis adjusts.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func ensureAdjustment(ws *Workspace, idx int) {
	for len(ws.ResizeDims) <= idx {
		ws.ResizeDims = append(ws.ResizeDims, geometry.Adjustment{})
	}
}

// ResizeContainerEdge grows or shrinks the focused container's side named
// by dir, by accumulating into ws.ResizeDims[idx] (spec.md §4.2.2: "applied
// to each computed rectangle before neighbors are computed").
func (wm *WindowManager) ResizeContainerEdge(dir layout.Direction, sizing Sizing) []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		idx, ok := ws.Containers.FocusedIndex()
		if !ok {
			return nil
		}
		ensureAdjustment(ws, idx)
		delta := sizing.delta()
		switch dir {
		case layout.Left:
			ws.ResizeDims[idx].Left += delta
		case layout.Right:
			ws.ResizeDims[idx].Right += delta
		case layout.Up:
			ws.ResizeDims[idx].Top += delta
		case layout.Down:
			ws.ResizeDims[idx].Bottom += delta
		}
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// ResizeContainerAxis grows or shrinks both edges along axis symmetrically.
func (wm *WindowManager) ResizeContainerAxis(axis Axis, sizing Sizing) []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		idx, ok := ws.Containers.FocusedIndex()
		if !ok {
			return nil
		}
		ensureAdjustment(ws, idx)
		delta := sizing.delta()
		switch axis {
		case AxisHorizontal:
			ws.ResizeDims[idx].Left += delta
			ws.ResizeDims[idx].Right += delta
		case AxisVertical:
			ws.ResizeDims[idx].Top += delta
			ws.ResizeDims[idx].Bottom += delta
		}
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// Retile forces the focused workspace to re-derive its rectangles from
// scratch, useful after an external geometry change the reconcilers have
// not yet observed.
func (wm *WindowManager) Retile() []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// ToggleFloat moves the focused container's focused window out of its tiled
// container into the workspace's floating layer. When the workspace has no
// tiled container, it instead moves the most recently floated window back
// into a fresh container (spec.md §3: "Floating layer — windows in a
// workspace excluded from layout and positioned by the user"). Floating windows get
// no SetFrame write, since their geometry is the user's to set.
func (wm *WindowManager) ToggleFloat() []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}

		c, ok := ws.Containers.Focused()
		if ok {
			winIdx, ok := c.Windows.FocusedIndex()
			if !ok {
				return nil
			}
			w, ok := c.Windows.Remove(winIdx)
			if !ok {
				return nil
			}
			ws.Floating = append(ws.Floating, w)
			writes := updateWorkspace(ws, m.workArea(), wm.Layouts)
			return append(writes, Write{Kind: WriteShow, WindowID: w.ID})
		}

		if len(ws.Floating) == 0 {
			return nil
		}
		w := ws.Floating[len(ws.Floating)-1]
		ws.Floating = ws.Floating[:len(ws.Floating)-1]
		fresh := NewContainer()
		fresh.Windows.AppendBack(w)
		newIdx := ws.Containers.AppendBack(fresh)
		ws.Containers.Focus(newIdx)
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// ToggleWorkspaceLayer flips the focused workspace between the Tiling and
// Floating layer (spec.md §3's workspace `layer` attribute), disabling
// tiled layout derivation while Floating so every window is left exactly
// where the user (or the OS) put it.
func (wm *WindowManager) ToggleWorkspaceLayer() []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		if ws.Layer == Tiling {
			ws.Layer = Floating
			ws.Tile = false
		} else {
			ws.Layer = Tiling
			ws.Tile = true
		}
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}
