package core

import (
	"errors"
	"time"

	"github.com/axwm/axwm/internal/geometry"
	"github.com/axwm/axwm/internal/layout"
)

var (
	ErrNoFocusedMonitor   = errors.New("core: no focused monitor")
	ErrNoFocusedWorkspace = errors.New("core: no focused workspace")
)

// FocusedMonitor returns the currently focused monitor, or an error when
// Monitors is empty (spec.md §3 invariant: exactly one focused monitor
// when non-empty).
func (wm *WindowManager) FocusedMonitor() (*Monitor, error) {
	m, ok := wm.Monitors.Focused()
	if !ok {
		return nil, ErrNoFocusedMonitor
	}
	return m, nil
}

// FocusedWorkspace returns the focused workspace of the focused monitor.
func (wm *WindowManager) FocusedWorkspace() (*Workspace, error) {
	m, err := wm.FocusedMonitor()
	if err != nil {
		return nil, err
	}
	ws, ok := m.Workspaces.Focused()
	if !ok {
		return nil, ErrNoFocusedWorkspace
	}
	return ws, nil
}

// workArea returns the monitor's work area after its padding is applied.
func (m *Monitor) workArea() geometry.Rect {
	return m.WorkAreaSize.AddPadding(m.Padding)
}

// updateWorkspace re-derives ws's rectangles against area and returns the
// Write side effects needed to bring the OS in sync (spec.md §4.3 step 3).
// It never calls a blocking OS API itself — only the mutex-protected model
// is touched here, matching §5's "writes occur after mutex release" rule.
func updateWorkspace(ws *Workspace, area geometry.Rect, registry *layout.Registry) []Write {
	var writes []Write

	if ws.Monocle != nil {
		rects := layout.Arrange(layout.Columns, area.AddPadding(ws.WorkspacePad), 1, layout.Options{})
		writes = append(writes, containerWrites(ws.Monocle, rects[0])...)
		return writes
	}

	if ws.Maximized != nil {
		writes = append(writes, Write{Kind: WriteSetFrame, WindowID: ws.Maximized.ID, Rect: area.AddPadding(ws.WorkspacePad)})
		return writes
	}

	if !ws.Tile {
		return writes
	}

	garbageCollectContainers(ws)

	count := ws.Containers.Len()
	if count == 0 {
		ws.lastRects = nil
		return writes
	}

	focusedIdx, _ := ws.Containers.FocusedIndex()
	opts := layout.Options{
		Adjustments: ws.ResizeDims,
		Flip:        ws.LayoutFlip,
		Focused:     focusedIdx,
		Previous:    ws.lastRects,
	}

	workArea := area.AddPadding(ws.WorkspacePad)
	var rects []geometry.Rect
	if alg, ok := lookupCustomLayout(ws, registry); ok {
		rects = alg.Tile(workArea, count, opts)
	} else {
		rects = layout.Arrange(ws.LayoutKind, workArea, count, opts)
	}
	ws.lastRects = rects

	containers := ws.Containers.Elements()
	for i, c := range containers {
		r := rects[i].AddPadding(ws.ContainerPad)
		writes = append(writes, containerWrites(c, r)...)
	}
	return writes
}

func containerWrites(c *Container, r geometry.Rect) []Write {
	var writes []Write
	for _, w := range c.Windows.Elements() {
		writes = append(writes, Write{Kind: WriteSetFrame, WindowID: w.ID, Rect: r})
	}
	if focused, ok := c.Windows.Focused(); ok {
		writes = append(writes, Write{Kind: WriteShow, WindowID: focused.ID})
	}
	return writes
}

func lookupCustomLayout(ws *Workspace, registry *layout.Registry) (layout.Algorithm, bool) {
	if ws.CustomLayout == "" || registry == nil {
		return nil, false
	}
	return registry.Lookup(ws.CustomLayout)
}

// garbageCollectContainers removes containers whose window ring is empty,
// shifting focus like ring.Remove would (spec.md §3, §8 invariant 3:
// "empty containers do not persist across a mutation boundary").
func garbageCollectContainers(ws *Workspace) {
	containers := ws.Containers.Elements()
	for i := len(containers) - 1; i >= 0; i-- {
		if containers[i].Windows.IsEmpty() {
			ws.Containers.Remove(i)
		}
	}
}

// withLock runs fn under wm's mutex and returns its Write side effects.
// Every exported mutation method is a thin wrapper around withLock so the
// mutex is never held while the caller issues the returned writes
// (spec.md §4.3 step 5).
func (wm *WindowManager) withLock(fn func() []Write) []Write {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	return fn()
}

// lockPollInterval is the spin granularity WithLockTimeout polls at while
// waiting for wm.mu; sync.Mutex has no try-lock-with-timeout primitive, so
// this approximates spec.md §5's `try_lock_for(1 s)` the idiomatic Go way.
const lockPollInterval = time.Millisecond

// Inspect runs fn with wm's mutex held and no mutation in mind — the
// read-only counterpart to withLock, used by callers outside this package
// that need a consistent view of the topology (state queries, overlay
// frame snapshots) without reaching into wm's fields unsynchronized.
func (wm *WindowManager) Inspect(fn func()) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	fn()
}

// WithLockTimeout runs fn under wm's mutex if it can be acquired within
// timeout, otherwise reports ok=false without running fn — the command
// socket's "drop with a warning, client retries" budget (spec.md §5, S6).
func (wm *WindowManager) WithLockTimeout(timeout time.Duration, fn func() []Write) (writes []Write, ok bool) {
	deadline := time.Now().Add(timeout)
	for {
		if wm.mu.TryLock() {
			defer wm.mu.Unlock()
			return fn(), true
		}
		if time.Now().After(deadline) {
			return nil, false
		}
		time.Sleep(lockPollInterval)
	}
}

// ApplicationForPid resolves an Application by pid, the sole lookup path
// that breaks the Window↔Application cycle (spec.md §9).
func (wm *WindowManager) ApplicationForPid(pid int) (*Application, bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	app, ok := wm.applications[pid]
	return app, ok
}

// RegisterApplication installs app in the pid map, creating the entry on
// first window sighting for that pid (spec.md §3 lifecycle).
func (wm *WindowManager) RegisterApplication(app *Application) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.applications[app.Pid] = app
}

// UnregisterApplication removes pid from the map unconditionally, without
// checking the topology for remaining windows (GarbageCollectApplications
// is the checking variant; spec.md §3 lifecycle).
func (wm *WindowManager) UnregisterApplication(pid int) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	delete(wm.applications, pid)
}
