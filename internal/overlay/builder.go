package overlay

import "github.com/axwm/axwm/internal/core"

// BuildFrame captures the focused monitor's focused workspace as a Frame.
// It returns ok=false when there is no focused monitor or workspace yet
// (startup, or every monitor detached), in which case there is nothing for
// a renderer to draw.
func BuildFrame(wm *core.WindowManager) (frame Frame, ok bool) {
	wm.Inspect(func() {
		m, ferr := wm.FocusedMonitor()
		if ferr != nil {
			return
		}
		ws, wsOk := m.Workspaces.Focused()
		if !wsOk {
			return
		}

		frame.MonitorID = m.ID
		frame.WorkspaceName = ws.Name
		frame.Layer = ws.Layer.String()

		if fc, fcOk := ws.Containers.Focused(); fcOk {
			frame.FocusedContainerID = fc.ID
		}

		rects := ws.LastRects()
		for i, c := range ws.Containers.Elements() {
			if i >= len(rects) {
				break
			}
			frame.Containers = append(frame.Containers, ContainerFrame{
				ContainerID: c.ID,
				Rect:        rects[i],
			})
		}
		ok = true
	})
	return frame, ok
}
