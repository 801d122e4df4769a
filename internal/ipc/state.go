package ipc

import (
	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/pkg/protocol"
)

// BuildSnapshot assembles the State query's response body under wm's
// mutex, so concurrent mutations never produce a torn read (spec.md §6's
// "State" query, an (expansion) addition over spec.md §6's base protocol).
func BuildSnapshot(wm *core.WindowManager) protocol.StateSnapshot {
	var snap protocol.StateSnapshot
	wm.Inspect(func() {
		monitors := wm.Monitors.Elements()
		focusedMonitor, _ := wm.Monitors.FocusedIndex()
		for mi, m := range monitors {
			ms := protocol.MonitorState{
				ID:                   m.ID,
				Focused:              mi == focusedMonitor,
				LastFocusedWorkspace: m.LastFocusedWorkspace,
			}
			workspaces := m.Workspaces.Elements()
			focusedWorkspace, _ := m.Workspaces.FocusedIndex()
			for wi, ws := range workspaces {
				wsState := protocol.WorkspaceState{
					Name:      ws.Name,
					Focused:   wi == focusedWorkspace,
					Layout:    ws.LayoutKind.String(),
					Monocle:   ws.Monocle != nil,
					Maximized: ws.Maximized != nil,
				}
				containers := ws.Containers.Elements()
				focusedContainer, _ := ws.Containers.FocusedIndex()
				for ci, c := range containers {
					wsState.Containers = append(wsState.Containers, containerState(c, ci == focusedContainer))
				}
				ms.Workspaces = append(ms.Workspaces, wsState)
			}
			snap.Monitors = append(snap.Monitors, ms)
		}
	})
	return snap
}

func containerState(c *core.Container, focused bool) protocol.ContainerState {
	cs := protocol.ContainerState{ID: c.ID, Focused: focused}
	focusedWindow, _ := c.Windows.FocusedIndex()
	for wi, w := range c.Windows.Elements() {
		title, _ := w.Element.Title()
		cs.Windows = append(cs.Windows, protocol.WindowState{
			ID:      w.ID,
			Pid:     w.Pid,
			Title:   title,
			Focused: wi == focusedWindow,
		})
	}
	return cs
}
