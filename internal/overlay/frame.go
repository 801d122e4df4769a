// Package overlay implements the border/overlay manager's input contract
// (spec.md §4.7): whenever the focused workspace's rectangles change, the
// new layout is made available to an external renderer as an overlay.Frame.
// This package never draws a pixel — it only marshals rectangles.
package overlay

import "github.com/axwm/axwm/internal/geometry"

// ContainerFrame is one tiled container's rectangle at the moment a Frame
// was captured.
type ContainerFrame struct {
	ContainerID string        `json:"container_id"`
	Rect        geometry.Rect `json:"rect"`
}

// Frame is the overlay manager's entire input contract: the rectangles an
// external renderer needs to draw borders around the focused workspace's
// containers, which one is focused, and whether the workspace is currently
// in the tiling or floating layer (borders are typically suppressed in the
// floating layer, since windows there are not rectangle-managed by core).
type Frame struct {
	MonitorID          string           `json:"monitor_id"`
	WorkspaceName      string           `json:"workspace_name"`
	Layer              string           `json:"layer"`
	FocusedContainerID string           `json:"focused_container_id,omitempty"`
	Containers         []ContainerFrame `json:"containers"`
}
