// Package core implements the topology model — WindowManager, Monitor,
// Workspace, Container, Window, Application — and the mutation operations
// that keep it internally consistent while reconcilers drive it from OS
// events (spec.md §3, §4.3).
package core

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/geometry"
	"github.com/axwm/axwm/internal/layout"
	"github.com/axwm/axwm/internal/ring"
)

// Layer distinguishes a workspace's tiled and floating windows.
type Layer int

const (
	Tiling Layer = iota
	Floating
)

func (l Layer) String() string {
	if l == Floating {
		return "floating"
	}
	return "tiling"
}

// Application is identified by process id and owns the per-process
// accessibility observer. One Application exists per live process id
// (spec.md §3); it is destroyed when the reaper detects the process died.
type Application struct {
	Pid      int
	Element  accessibility.Element
	Observer accessibility.Observer
}

// Window is identified by a stable OS window id. It deliberately stores
// only the owning pid, not a pointer to Application, breaking the
// Window↔Application cycle via WindowManager.applications (spec.md §9).
type Window struct {
	ID       string
	Pid      int
	Element  accessibility.Element
	Observer accessibility.Observer
	Title    string
}

// Container is a stack of windows treated as one tile by the layout
// engine. Its window ring must be non-empty except transiently during a
// mutation (spec.md §3 invariant), enforced by garbageCollectContainers.
type Container struct {
	ID      string
	Locked  bool
	Windows *ring.Ring[*Window]
}

func NewContainer() *Container {
	return &Container{ID: uuid.NewString(), Windows: ring.New[*Window]()}
}

// Workspace owns a ring of containers plus floating windows and the
// monocle/maximized single-window views (spec.md §3).
type Workspace struct {
	Name       string
	Containers *ring.Ring[*Container]
	Floating   []*Window

	Monocle        *Container
	MonocleRestore int // index the promoted container held before monocle

	Maximized *Window

	LayoutKind    layout.Kind
	CustomLayout  string // name in a layout.Registry, when LayoutKind is outside the 9 built-ins
	LayoutFlip    layout.FlipAxis
	ResizeDims    []geometry.Adjustment
	WorkspacePad  int
	ContainerPad  int
	Tile          bool
	Layer         Layer
	lastRects     []geometry.Rect
}

// LastRects returns the rectangles updateWorkspace most recently derived
// for this workspace's containers, in the same order as
// Containers.Elements() — the overlay manager's sole read path into
// layout output (spec.md §4.7).
func (ws *Workspace) LastRects() []geometry.Rect {
	return ws.lastRects
}

func NewWorkspace(name string) *Workspace {
	return &Workspace{
		Name:       name,
		Containers: ring.New[*Container](),
		LayoutKind: layout.BSP,
		Tile:       true,
	}
}

// Monitor owns a ring of workspaces (spec.md §3). Size is the full display
// rect; WorkAreaSize is Size minus OS-reserved strips (menu bar, dock).
type Monitor struct {
	ID             string
	Serial         string
	Size           geometry.Rect
	WorkAreaSize   geometry.Rect
	WorkAreaOffset geometry.Adjustment
	Padding        int
	Workspaces     *ring.Ring[*Workspace]

	LastFocusedWorkspace int
}

func NewMonitor(id string, size geometry.Rect) *Monitor {
	return &Monitor{
		ID:           id,
		Size:         size,
		WorkAreaSize: size,
		Workspaces:   ring.New[*Workspace](),
	}
}

// Tunables groups the process-wide atomics called out in spec.md §5/§9:
// configuration tunables and reconciler flags that are read far more often
// than they are written, so they are atomics rather than mutex-guarded
// fields even though they live inside WindowManager.
type Tunables struct {
	Paused            atomic.Bool
	MouseFollowsFocus atomic.Bool
	FloatOverride     atomic.Bool
	CrossMonitorMove  atomic.Bool
	DefaultPadding    atomic.Int64
}

// WindowManager is the root aggregate (spec.md §3). A single
// sync.Mutex guards the whole tree; atomics guard the tunables in
// Tunables so hot reads (e.g. "are we paused?") never contend on it.
type WindowManager struct {
	mu sync.Mutex

	Monitors     *ring.Ring[*Monitor]
	applications map[int]*Application

	Tunables Tunables

	Writer  accessibility.Writer
	Factory accessibility.Factory
	Layouts *layout.Registry

	Logger *logrus.Entry
	Tracer trace.Tracer
}

func New(writer accessibility.Writer, factory accessibility.Factory, logger *logrus.Entry, tracer trace.Tracer) *WindowManager {
	return &WindowManager{
		Monitors:     ring.New[*Monitor](),
		applications: make(map[int]*Application),
		Writer:       writer,
		Factory:      factory,
		Layouts:      layout.NewRegistry(),
		Logger:       logger,
		Tracer:       tracer,
	}
}
