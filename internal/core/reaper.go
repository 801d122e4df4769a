package core

// ReapWindow removes windowID from every workspace in the topology — tiled
// containers, floating, monocle, maximized — and forces a workspace update
// for each workspace it changed. Reaping an absent window id is a no-op
// (spec.md §8 invariant 10). wm.applications is not touched here; the
// caller removes an application separately via GarbageCollectApplications.
func (wm *WindowManager) ReapWindow(windowID string) []Write {
	return wm.withLock(func() []Write {
		var writes []Write
		for _, m := range wm.Monitors.Elements() {
			for _, ws := range m.Workspaces.Elements() {
				if reapFromWorkspace(ws, windowID) {
					writes = append(writes, updateWorkspace(ws, m.workArea(), wm.Layouts)...)
				}
			}
		}
		return writes
	})
}

// reapFromWorkspace removes windowID from ws if present, reporting whether
// anything changed.
func reapFromWorkspace(ws *Workspace, windowID string) bool {
	changed := false

	for _, c := range ws.Containers.Elements() {
		if removeWindowFromRing(c, windowID) {
			changed = true
		}
	}
	if ws.Monocle != nil && removeWindowFromRing(ws.Monocle, windowID) {
		changed = true
		if ws.Monocle.Windows.IsEmpty() {
			ws.Monocle = nil
		}
	}
	if ws.Maximized != nil && ws.Maximized.ID == windowID {
		ws.Maximized = nil
		changed = true
	}

	floating := ws.Floating[:0]
	for _, w := range ws.Floating {
		if w.ID == windowID {
			changed = true
			continue
		}
		floating = append(floating, w)
	}
	ws.Floating = floating

	return changed
}

func removeWindowFromRing(c *Container, windowID string) bool {
	for i, w := range c.Windows.Elements() {
		if w.ID == windowID {
			c.Windows.Remove(i)
			return true
		}
	}
	return false
}

// GarbageCollectApplications removes pid from wm.applications when it has
// no windows left anywhere in the topology (spec.md §3 lifecycle). The
// event reconciler calls it after reaping on a Destroy event.
func (wm *WindowManager) GarbageCollectApplications(pid int) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	for _, m := range wm.Monitors.Elements() {
		for _, ws := range m.Workspaces.Elements() {
			for _, c := range ws.Containers.Elements() {
				for _, w := range c.Windows.Elements() {
					if w.Pid == pid {
						return
					}
				}
			}
			for _, w := range ws.Floating {
				if w.Pid == pid {
					return
				}
			}
			if ws.Monocle != nil {
				for _, w := range ws.Monocle.Windows.Elements() {
					if w.Pid == pid {
						return
					}
				}
			}
			if ws.Maximized != nil && ws.Maximized.Pid == pid {
				return
			}
		}
	}
	delete(wm.applications, pid)
}
