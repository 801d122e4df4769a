package core

import "github.com/axwm/axwm/internal/geometry"

// shrinkByOffset subtracts independent per-side strips from size to
// produce a work area (spec.md §3: "work_area_size (display minus
// system-reserved strips)"). Unlike geometry.Adjustment.Apply, which grows
// edges outward for positive deltas (§4.2.2's resize semantics),
// work-area offsets always shrink — each side's offset is the width of the
// reserved strip on that edge.
func shrinkByOffset(size geometry.Rect, off geometry.Adjustment) geometry.Rect {
	return geometry.Rect{
		Left:   size.Left + off.Left,
		Top:    size.Top + off.Top,
		Right:  size.Right - off.Left - off.Right,
		Bottom: size.Bottom - off.Top - off.Bottom,
	}
}

// FocusedPair returns the focused monitor and workspace indices, the
// comparison key the workspace-focus reconciler debounces on (spec.md
// §4.5.2).
func (wm *WindowManager) FocusedPair() (monitorIdx, workspaceIdx int, ok bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	mIdx, ok := wm.Monitors.FocusedIndex()
	if !ok {
		return 0, 0, false
	}
	m, _ := wm.Monitors.Focused()
	wIdx, ok := m.Workspaces.FocusedIndex()
	if !ok {
		return mIdx, 0, false
	}
	return mIdx, wIdx, true
}

// FocusedWorkspaceIsEmpty reports whether the focused workspace has no
// tiled containers — the trigger for the empty-workspace guard in
// spec.md §4.5.2.
func (wm *WindowManager) FocusedWorkspaceIsEmpty() bool {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	ws, err := wm.focusedWorkspaceLocked()
	if err != nil {
		return true
	}
	return ws.Containers.Len() == 0
}

func (wm *WindowManager) focusedWorkspaceLocked() (*Workspace, error) {
	m, ok := wm.Monitors.Focused()
	if !ok {
		return nil, ErrNoFocusedMonitor
	}
	ws, ok := m.Workspaces.Focused()
	if !ok {
		return nil, ErrNoFocusedWorkspace
	}
	return ws, nil
}

// FocusMonitorWorkspace focuses workspaceIdx on monitorIdx, recording the
// monitor's previously focused workspace, and re-derives the newly
// focused workspace's rectangles — the reconciliation step of spec.md
// §4.5.2 ("focus the target monitor, record previous workspace on it,
// focus the target workspace, load the new workspace").
func (wm *WindowManager) FocusMonitorWorkspace(monitorIdx, workspaceIdx int) []Write {
	return wm.withLock(func() []Write {
		wm.Monitors.Focus(monitorIdx)
		m, ok := wm.Monitors.Focused()
		if !ok {
			return nil
		}
		if prevIdx, ok := m.Workspaces.FocusedIndex(); ok {
			m.LastFocusedWorkspace = prevIdx
		}
		m.Workspaces.Focus(workspaceIdx)
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// FindWindow locates the workspace and container owning windowID, if any.
func (wm *WindowManager) FindWindow(windowID string) (monitorIdx, workspaceIdx int, c *Container, ok bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	for mi, m := range wm.Monitors.Elements() {
		for wi, ws := range m.Workspaces.Elements() {
			for _, container := range ws.Containers.Elements() {
				for _, w := range container.Windows.Elements() {
					if w.ID == windowID {
						return mi, wi, container, true
					}
				}
			}
		}
	}
	return 0, 0, nil, false
}

// FocusWindow focuses the container owning windowID within its workspace
// (and that workspace within its monitor), returning the writes needed to
// reflect the new focus (spec.md §4.5.1 FocusChange handling).
func (wm *WindowManager) FocusWindow(windowID string) []Write {
	return wm.withLock(func() []Write {
		for mi, m := range wm.Monitors.Elements() {
			for wi, ws := range m.Workspaces.Elements() {
				containers := ws.Containers.Elements()
				for ci, container := range containers {
					for _, w := range container.Windows.Elements() {
						if w.ID != windowID {
							continue
						}
						wm.Monitors.Focus(mi)
						m.Workspaces.Focus(wi)
						ws.Containers.Focus(ci)
						return focusWrites(ws)
					}
				}
			}
		}
		return nil
	})
}

// FocusedWorkspaceContainsWindow reports whether windowID is present anywhere in the
// focused workspace, used by the event reconciler's Show handler to
// detect a spurious re-show (spec.md §4.5.1).
func (wm *WindowManager) FocusedWorkspaceContainsWindow(windowID string) bool {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	ws, err := wm.focusedWorkspaceLocked()
	if err != nil {
		return false
	}
	for _, c := range ws.Containers.Elements() {
		for _, w := range c.Windows.Elements() {
			if w.ID == windowID {
				return true
			}
		}
	}
	return false
}

// AddWindowToFocusedWorkspace wraps w in a new container and appends it to
// the focused workspace, the "create a new container for it" step of
// spec.md §4.5.1's Show handler.
func (wm *WindowManager) AddWindowToFocusedWorkspace(w *Window) []Write {
	return wm.withLock(func() []Write {
		m, err := wm.FocusedMonitor()
		if err != nil {
			return nil
		}
		ws, ok := m.Workspaces.Focused()
		if !ok {
			return nil
		}
		c := NewContainer()
		c.Windows.AppendBack(w)
		idx := ws.Containers.AppendBack(c)
		ws.Containers.Focus(idx)
		return updateWorkspace(ws, m.workArea(), wm.Layouts)
	})
}

// MinimizeWindow moves windowID out of its container into a minimized set
// (modeled here as simple removal; restoration re-adds it as a fresh
// container, since spec.md does not define ordering guarantees for where
// a restored window returns to) and re-derives the workspace.
func (wm *WindowManager) MinimizeWindow(windowID string) []Write {
	return wm.withLock(func() []Write {
		for _, m := range wm.Monitors.Elements() {
			for _, ws := range m.Workspaces.Elements() {
				if reapFromWorkspace(ws, windowID) {
					return updateWorkspace(ws, m.workArea(), wm.Layouts)
				}
			}
		}
		return nil
	})
}

// RestoreWindow re-adds a previously minimized window to the focused
// workspace as a new container.
func (wm *WindowManager) RestoreWindow(w *Window) []Write {
	return wm.AddWindowToFocusedWorkspace(w)
}

// UpdateMonitorWorkArea recomputes mon.WorkAreaSize by proportionally
// scaling its four edge offsets from old to new size, and re-derives the
// focused workspace (spec.md §4.5.3).
func (wm *WindowManager) UpdateMonitorWorkArea(monitorID string, newSize geometry.Rect) []Write {
	return wm.withLock(func() []Write {
		for _, m := range wm.Monitors.Elements() {
			if m.ID != monitorID {
				continue
			}
			if m.Size == newSize {
				return nil
			}
			left, top, right, bottom := geometry.ScaleOffsets(
				m.Size, newSize,
				m.WorkAreaOffset.Left, m.WorkAreaOffset.Top, m.WorkAreaOffset.Right, m.WorkAreaOffset.Bottom,
			)
			m.Size = newSize
			m.WorkAreaOffset = geometry.Adjustment{Left: left, Top: top, Right: right, Bottom: bottom}
			m.WorkAreaSize = shrinkByOffset(m.Size, m.WorkAreaOffset)

			ws, ok := m.Workspaces.Focused()
			if !ok {
				return nil
			}
			return updateWorkspace(ws, m.workArea(), wm.Layouts)
		}
		return nil
	})
}
