package core

import (
	"github.com/axwm/axwm/internal/layout"
	"github.com/axwm/axwm/internal/ring"
)

// CycleDirection selects which way CycleContainerWindowInDirection rotates
// a container's window ring.
type CycleDirection int

const (
	CyclePrevious CycleDirection = iota
	CycleNext
)

// focusWrites returns the Focus/Show writes for ws's currently focused
// container's currently focused window, or nil if ws has no containers.
func focusWrites(ws *Workspace) []Write {
	c, ok := ws.Containers.Focused()
	if !ok {
		return nil
	}
	w, ok := c.Windows.Focused()
	if !ok {
		return nil
	}
	return []Write{
		{Kind: WriteFocus, WindowID: w.ID},
		{Kind: WriteShow, WindowID: w.ID},
	}
}

// FocusContainerInDirection moves focus within the focused workspace; no
// geometry changes are produced unless MouseFollowsFocus is set, in which
// case the newly focused window is also re-shown (spec.md §4.3).
func (wm *WindowManager) FocusContainerInDirection(dir layout.Direction) []Write {
	return wm.withLock(func() []Write {
		ws, err := wm.FocusedWorkspace()
		if err != nil {
			return nil
		}
		idx, ok := ws.Containers.FocusedIndex()
		if !ok {
			return nil
		}
		count := ws.Containers.Len()
		target, ok := layout.IndexInDirection(ws.LayoutKind, idx, count, dir)
		if !ok {
			return nil
		}
		ws.Containers.Focus(target)
		if !wm.Tunables.MouseFollowsFocus.Load() {
			return nil
		}
		return focusWrites(ws)
	})
}

// MoveContainerInDirection swaps the focused container with its neighbor
// in-place. When there is no neighbor on the current monitor and
// CrossMonitorMove is enabled, the container instead migrates to the next
// monitor's focused workspace (spec.md §4.3).
func (wm *WindowManager) MoveContainerInDirection(dir layout.Direction) []Write {
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
		count := ws.Containers.Len()
		target, ok := layout.IndexInDirection(ws.LayoutKind, idx, count, dir)
		if ok {
			ws.Containers.Swap(idx, target)
			ws.Containers.Focus(target)
			return updateWorkspace(ws, m.workArea(), wm.Layouts)
		}

		if !wm.Tunables.CrossMonitorMove.Load() || wm.Monitors.Len() < 2 {
			return nil
		}

		c, ok := ws.Containers.Remove(idx)
		if !ok {
			return nil
		}
		srcWrites := updateWorkspace(ws, m.workArea(), wm.Layouts)

		monitors := wm.Monitors.Elements()
		curIdx := indexOfMonitor(monitors, m)
		dest := monitors[(curIdx+1)%len(monitors)]
		destWs, ok := dest.Workspaces.Focused()
		if !ok {
			return srcWrites
		}
		destWs.Containers.AppendBack(c)
		destWrites := updateWorkspace(destWs, dest.workArea(), wm.Layouts)
		return append(srcWrites, destWrites...)
	})
}

func indexOfMonitor(monitors []*Monitor, target *Monitor) int {
	for i, m := range monitors {
		if m == target {
			return i
		}
	}
	return 0
}

// AddWindowToContainer merges the neighbor container in direction dir into
// the focused container (spec.md §4.3).
func (wm *WindowManager) AddWindowToContainer(dir layout.Direction) []Write {
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
		count := ws.Containers.Len()
		target, ok := layout.IndexInDirection(ws.LayoutKind, idx, count, dir)
		if !ok {
			return nil
		}

		containers := ws.Containers.Elements()
		focused := containers[idx]
		neighbor := containers[target]
		for _, w := range neighbor.Windows.Elements() {
			focused.Windows.AppendBack(w)
		}
		// Emptying the neighbor's ring rather than removing the container
		// here lets garbageCollectContainers (run inside updateWorkspace)
		// prune it, so ring indices never shift under us mid-merge.
		neighbor.Windows = ring.New[*Window]()
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// RemoveWindowFromContainer splits the focused window out of the focused
// container into its own new container, inserted immediately after the
// source container (spec.md §4.3).
func (wm *WindowManager) RemoveWindowFromContainer() []Write {
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
		containers := ws.Containers.Elements()
		source := containers[idx]
		if source.Windows.Len() < 2 {
			return nil
		}
		winIdx, ok := source.Windows.FocusedIndex()
		if !ok {
			return nil
		}
		w, ok := source.Windows.Remove(winIdx)
		if !ok {
			return nil
		}

		fresh := NewContainer()
		fresh.Windows.AppendBack(w)
		newIdx := ws.Containers.Insert(idx+1, fresh)
		ws.Containers.Focus(newIdx)
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// CycleContainerWindowInDirection rotates the focused container's window
// ring by swapping the focused window with its neighbor and refocusing the
// swapped slot, so repeated calls walk the stack (spec.md §4.3).
func (wm *WindowManager) CycleContainerWindowInDirection(dir CycleDirection) []Write {
	return wm.withLock(func() []Write {
		ws, err := wm.FocusedWorkspace()
		if err != nil {
			return nil
		}
		c, ok := ws.Containers.Focused()
		if !ok {
			return nil
		}
		count := c.Windows.Len()
		if count < 2 {
			return nil
		}
		idx, ok := c.Windows.FocusedIndex()
		if !ok {
			return nil
		}
		var target int
		if dir == CycleNext {
			target = (idx + 1) % count
		} else {
			target = (idx - 1 + count) % count
		}
		c.Windows.Swap(idx, target)
		c.Windows.Focus(target)
		return focusWrites(ws)
	})
}

// ChangeWorkspaceLayoutDefault replaces the focused workspace's layout and
// re-derives its rectangles (spec.md §4.3).
func (wm *WindowManager) ChangeWorkspaceLayoutDefault(kind layout.Kind) []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		ws.LayoutKind = kind
		ws.CustomLayout = ""
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// TogglePause flips the Paused tunable. While paused, the event reconciler
// drains its channel without mutating the topology (spec.md §4.3, §4.5.1);
// the workspace-focus and monitor-resize reconcilers do not consult it.
func (wm *WindowManager) TogglePause() {
	for {
		old := wm.Tunables.Paused.Load()
		if wm.Tunables.Paused.CompareAndSwap(old, !old) {
			return
		}
	}
}

// FocusWorkspace focuses the workspace at idx on the focused monitor and
// re-derives its rectangles (spec.md §4.3).
func (wm *WindowManager) FocusWorkspace(idx int) []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		m.Workspaces.Focus(idx)
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// MoveContainerToWorkspace moves the focused container from the focused
// workspace to workspace idx on the same monitor, optionally inserting it
// at targetContainerIdx and focusing the destination (spec.md §4.3).
func (wm *WindowManager) MoveContainerToWorkspace(idx int, follow bool, targetContainerIdx int) []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		src, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		containerIdx, ok := src.Containers.FocusedIndex()
		if !ok {
			return nil
		}
		c, ok := src.Containers.Remove(containerIdx)
		if !ok {
			return nil
		}
		srcWrites := updateWorkspace(src, m.workArea(), wm.Layouts)

		m.Workspaces.Focus(idx)
		dest, ok := m.Workspaces.Focused()
		if !ok {
			return srcWrites
		}
		insertAt := targetContainerIdx
		if insertAt < 0 || insertAt > dest.Containers.Len() {
			insertAt = dest.Containers.Len()
		}
		newIdx := dest.Containers.Insert(insertAt, c)
		if follow {
			dest.Containers.Focus(newIdx)
		} else {
			m.Workspaces.Focus(indexOfWorkspace(m.Workspaces.Elements(), src))
		}
		destWrites := updateWorkspace(dest, m.workArea(), wm.Layouts)
		return append(srcWrites, destWrites...)
	})
}

func indexOfWorkspace(workspaces []*Workspace, target *Workspace) int {
	for i, ws := range workspaces {
		if ws == target {
			return i
		}
	}
	return 0
}

// ToggleMonocle promotes the focused container to fill the work area, or
// restores it to its stored position if monocle is already active
// (spec.md §4.3).
func (wm *WindowManager) ToggleMonocle() []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}

		if ws.Monocle != nil {
			restore := ws.MonocleRestore
			if restore < 0 || restore > ws.Containers.Len() {
				restore = ws.Containers.Len()
			}
			ws.Containers.Insert(restore, ws.Monocle)
			ws.Monocle = nil
			return updateWorkspace(ws, m.workArea(), wm.Layouts)
		}

		idx, ok := ws.Containers.FocusedIndex()
		if !ok {
			return nil
		}
		c, ok := ws.Containers.Remove(idx)
		if !ok {
			return nil
		}
		ws.Monocle = c
		ws.MonocleRestore = idx
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}
