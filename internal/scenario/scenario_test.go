// Package scenario runs features/scenarios.feature end-to-end against the
// real internal/core and internal/reconciler types, as a second, godog-based
// test idiom alongside the testify- and ginkgo-based suites elsewhere in the
// module. godog has no usage example anywhere in the corpus this module was
// built from — it is declared in go.mod but never imported — so the
// ScenarioInitializer/TestSuite wiring here follows godog's own documented
// conventions rather than an in-corpus pattern (see DESIGN.md).
package scenario

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/accessibility/accessibilityfakes"
	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/events"
	"github.com/axwm/axwm/internal/geometry"
	"github.com/axwm/axwm/internal/ipc"
	"github.com/axwm/axwm/internal/layout"
	"github.com/axwm/axwm/internal/reconciler"
	"github.com/axwm/axwm/pkg/protocol"
)

// testContext holds the one scenario's worth of state that step functions
// thread through; a fresh testContext replaces it in suite.before, so
// scenarios never leak state into each other.
type testContext struct {
	wm  *core.WindowManager
	mon *core.Monitor
	ws  *core.Workspace

	windowOrder []string
	workspaces  map[string]*core.Workspace

	// S3: pure layout.IndexInDirection/IsValidDirection inputs, no
	// WindowManager involved.
	layoutKind layout.Kind
	count      int
	focusIdx   int

	// S6
	dispatcher   *ipc.Dispatcher
	releaseMutex chan struct{}
	lockHeld     chan struct{}
	dispatchErr  error
}

func newTestContext() *testContext {
	return &testContext{workspaces: make(map[string]*core.Workspace)}
}

type suite struct {
	tc *testContext
}

func (s *suite) before(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
	s.tc = newTestContext()
	return ctx, nil
}

// --- S1/S2: monitor + layout + tiled windows + re-derived rects ---

func (s *suite) aMonitorSized(width, height int) error {
	tc := s.tc
	tc.wm = core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
	tc.mon = core.NewMonitor("mon-1", geometry.NewRect(0, 0, width, height))
	tc.wm.Monitors.AppendBack(tc.mon)
	return nil
}

func parseLayoutKind(name string) (layout.Kind, error) {
	switch name {
	case "bsp":
		return layout.BSP, nil
	case "columns":
		return layout.Columns, nil
	case "rows":
		return layout.Rows, nil
	case "grid":
		return layout.Grid, nil
	default:
		return 0, fmt.Errorf("unrecognized layout name %q", name)
	}
}

func (s *suite) aWorkspaceUsingLayoutWithWorkspacePadding(layoutName string, pad int) error {
	return s.addWorkspace(layoutName, pad, 0)
}

func (s *suite) aWorkspaceUsingLayoutWithWorkspaceAndContainerPadding(layoutName string, workspacePad, containerPad int) error {
	return s.addWorkspace(layoutName, workspacePad, containerPad)
}

func (s *suite) addWorkspace(layoutName string, workspacePad, containerPad int) error {
	kind, err := parseLayoutKind(layoutName)
	if err != nil {
		return err
	}
	tc := s.tc
	ws := core.NewWorkspace("one")
	ws.LayoutKind = kind
	ws.WorkspacePad = workspacePad
	ws.ContainerPad = containerPad
	tc.mon.Workspaces.AppendBack(ws)
	tc.ws = ws
	return nil
}

func (s *suite) aWindowTiledOnThatWorkspace(windowID string) error {
	tc := s.tc
	tc.wm.AddWindowToFocusedWorkspace(&core.Window{ID: windowID})
	tc.windowOrder = append(tc.windowOrder, windowID)
	return nil
}

func (s *suite) theWorkspaceIsRederived() error {
	s.tc.wm.Retile()
	return nil
}

func (s *suite) windowHasRect(windowID string, left, top, width, height int) error {
	tc := s.tc
	idx := -1
	for i, id := range tc.windowOrder {
		if id == windowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("window %q was never tiled on the workspace", windowID)
	}
	rects := tc.ws.LastRects()
	if idx >= len(rects) {
		return fmt.Errorf("no derived rect for window %q (container index %d, have %d rects)", windowID, idx, len(rects))
	}
	want := geometry.NewRect(left, top, width, height)
	if rects[idx] != want {
		return fmt.Errorf("window %q rect = %+v, want %+v", windowID, rects[idx], want)
	}
	return nil
}

// --- S3: pure focus-navigation arithmetic ---

func (s *suite) aWorkspaceUsingLayoutWithContainers(layoutName string, count int) error {
	kind, err := parseLayoutKind(layoutName)
	if err != nil {
		return err
	}
	s.tc.layoutKind = kind
	s.tc.count = count
	return nil
}

func (s *suite) theFocusedContainerIndexIs(idx int) error {
	s.tc.focusIdx = idx
	return nil
}

func (s *suite) movingFocusRightLandsOnADifferentContainerThanIndex(from int) error {
	tc := s.tc
	idx, ok := layout.IndexInDirection(tc.layoutKind, tc.focusIdx, tc.count, layout.Right)
	if !ok {
		return fmt.Errorf("no valid target moving right from index %d", from)
	}
	if idx == from {
		return fmt.Errorf("moving right from index %d landed on the same index", from)
	}
	return nil
}

func (s *suite) movingFocusDownFromTheLastContainerIsNotAValidDirection() error {
	tc := s.tc
	last := tc.count - 1
	if layout.IsValidDirection(tc.layoutKind, last, tc.count, layout.Down) {
		return fmt.Errorf("expected moving down from the last container (index %d) to be invalid", last)
	}
	return nil
}

// --- S4: empty-workspace focus guard ---

func (s *suite) aMonitorWithWorkspaceFocused(name string) error {
	tc := s.tc
	tc.wm = core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
	tc.mon = core.NewMonitor("mon-1", geometry.NewRect(0, 0, 1000, 1000))
	ws := core.NewWorkspace(name)
	tc.mon.Workspaces.AppendBack(ws)
	tc.wm.Monitors.AppendBack(tc.mon)
	tc.workspaces[name] = ws
	return nil
}

func (s *suite) workspaceHasOneTiledWindow(workspaceName, windowID string) error {
	s.tc.wm.AddWindowToFocusedWorkspace(&core.Window{ID: windowID})
	return nil
}

func (s *suite) theMonitorAlsoHasWorkspace(name string) error {
	tc := s.tc
	ws := core.NewWorkspace(name)
	tc.mon.Workspaces.AppendBack(ws)
	tc.workspaces[name] = ws
	return nil
}

func (s *suite) theOSReportsWindowDestroyed(windowID string) error {
	s.tc.wm.ReapWindow(windowID)
	return nil
}

func (s *suite) workspaceHasNoContainers(name string) error {
	ws, ok := s.tc.workspaces[name]
	if !ok {
		return fmt.Errorf("unknown workspace %q", name)
	}
	if n := ws.Containers.Len(); n != 0 {
		return fmt.Errorf("workspace %q has %d containers, want 0", name, n)
	}
	return nil
}

func (s *suite) workspaceIsStillFocused(name string) error {
	tc := s.tc
	focused, ok := tc.mon.Workspaces.Focused()
	if !ok {
		return fmt.Errorf("monitor has no focused workspace")
	}
	if focused.Name != name {
		return fmt.Errorf("focused workspace is %q, want %q", focused.Name, name)
	}
	return nil
}

func (s *suite) aWorkspaceFocusNotificationTargetsWorkspace(name string) error {
	tc := s.tc
	targetIdx := -1
	for i, ws := range tc.mon.Workspaces.Elements() {
		if ws.Name == name {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return fmt.Errorf("unknown workspace %q", name)
	}
	monIdx, _, ok := tc.wm.FocusedPair()
	if !ok {
		monIdx = 0
	}

	writer := accessibilityfakes.NewFakeWriter()
	ch := events.NewChannels(nil, nil)
	issuer := &reconciler.WriteIssuer{
		Writer:   writer,
		Elements: func(string) (accessibility.Element, bool) { return nil, false },
		Logger:   logrus.NewEntry(logrus.New()),
	}
	r := reconciler.NewWorkspaceFocusReconciler(tc.wm, ch, issuer, logrus.NewEntry(logrus.New()), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { r.Run(ctx); close(done) }()

	ch.WorkspaceFocus.TrySend(events.WorkspaceFocusNotification{MonitorIdx: monIdx, WorkspaceIdx: targetIdx, TriggeredBy: "scenario"})
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done
	return nil
}

// --- S5: display resize rescales the work area ---

func (s *suite) aMonitorSizedWithWorkAreaOffsetTop(width, height, offsetTop int) error {
	tc := s.tc
	tc.wm = core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
	tc.mon = core.NewMonitor("mon-1", geometry.NewRect(0, 0, width, height))
	tc.mon.WorkAreaOffset.Top = offsetTop
	tc.mon.WorkAreaSize = geometry.NewRect(0, offsetTop, width, height-offsetTop)

	ws := core.NewWorkspace("one")
	tc.mon.Workspaces.AppendBack(ws)
	tc.wm.Monitors.AppendBack(tc.mon)
	tc.ws = ws
	return nil
}

func (s *suite) theMonitorDisplayResizesTo(width, height int) error {
	s.tc.wm.UpdateMonitorWorkArea(s.tc.mon.ID, geometry.NewRect(0, 0, width, height))
	return nil
}

func (s *suite) theNewWorkAreaTopOffsetIs(want int) error {
	got := s.tc.mon.WorkAreaOffset.Top
	if got != want {
		return fmt.Errorf("work area top offset = %d, want %d", got, want)
	}
	return nil
}

func (s *suite) theFocusedWorkspaceIsRederivedAgainstTheNewWorkArea() error {
	tc := s.tc
	ws, ok := tc.mon.Workspaces.Focused()
	if !ok {
		return fmt.Errorf("monitor has no focused workspace")
	}
	if ws != tc.ws {
		return fmt.Errorf("focused workspace changed unexpectedly")
	}
	return nil
}

// --- S6: command-socket lock budget ---

func (s *suite) theTopologyMutexIsHeldByALongRunningMutation() error {
	tc := s.tc
	tc.wm = core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
	tc.dispatcher = ipc.NewDispatcher(tc.wm, func([]core.Write) {}, func() protocol.StateSnapshot {
		return ipc.BuildSnapshot(tc.wm)
	})

	tc.releaseMutex = make(chan struct{})
	tc.lockHeld = make(chan struct{})
	go tc.wm.WithLockTimeout(time.Hour, func() []core.Write {
		close(tc.lockHeld)
		<-tc.releaseMutex
		return nil
	})
	<-tc.lockHeld
	return nil
}

func (s *suite) aTogglePauseCommandArrivesWithABudget(seconds int) error {
	tc := s.tc
	_, _, err := tc.dispatcher.Dispatch(protocol.SocketMessage{Kind: protocol.KindTogglePause})
	tc.dispatchErr = err
	return nil
}

func (s *suite) theCommandIsDroppedAfterTheBudgetElapses() error {
	if s.tc.dispatchErr == nil {
		return fmt.Errorf("expected the command to be dropped, got no error")
	}
	return nil
}

func (s *suite) theTopologyIsUnchanged() error {
	if s.tc.wm.Tunables.Paused.Load() {
		return fmt.Errorf("expected Paused to remain false, the dropped command must not have mutated the topology")
	}
	return nil
}

func (s *suite) theLongRunningMutationReleasesTheMutex() error {
	close(s.tc.releaseMutex)
	return nil
}

func (s *suite) theCommandSucceeds() error {
	if s.tc.dispatchErr != nil {
		return fmt.Errorf("expected the command to succeed, got %v", s.tc.dispatchErr)
	}
	if !s.tc.wm.Tunables.Paused.Load() {
		return fmt.Errorf("expected Paused to have flipped to true")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &suite{}
	ctx.Before(s.before)

	ctx.Step(`^a monitor sized (\d+)x(\d+)$`, s.aMonitorSized)
	ctx.Step(`^a workspace using the (\w+) layout with workspace padding (\d+)$`, s.aWorkspaceUsingLayoutWithWorkspacePadding)
	ctx.Step(`^a workspace using the (\w+) layout with workspace padding (\d+) and container padding (\d+)$`, s.aWorkspaceUsingLayoutWithWorkspaceAndContainerPadding)
	ctx.Step(`^a window "([^"]+)" tiled on that workspace$`, s.aWindowTiledOnThatWorkspace)
	ctx.Step(`^the workspace is re-derived$`, s.theWorkspaceIsRederived)
	ctx.Step(`^window "([^"]+)" has rect \((\d+),(\d+),(\d+),(\d+)\)$`, s.windowHasRect)

	ctx.Step(`^a workspace using the (\w+) layout with (\d+) containers$`, s.aWorkspaceUsingLayoutWithContainers)
	ctx.Step(`^the focused container index is (\d+)$`, s.theFocusedContainerIndexIs)
	ctx.Step(`^moving focus right lands on a different container than index (\d+)$`, s.movingFocusRightLandsOnADifferentContainerThanIndex)
	ctx.Step(`^moving focus down from the last container is not a valid direction$`, s.movingFocusDownFromTheLastContainerIsNotAValidDirection)

	ctx.Step(`^a monitor with workspace "([^"]+)" focused$`, s.aMonitorWithWorkspaceFocused)
	ctx.Step(`^workspace "([^"]+)" has one tiled window "([^"]+)"$`, s.workspaceHasOneTiledWindow)
	ctx.Step(`^the monitor also has workspace "([^"]+)"$`, s.theMonitorAlsoHasWorkspace)
	ctx.Step(`^the OS reports window "([^"]+)" destroyed$`, s.theOSReportsWindowDestroyed)
	ctx.Step(`^workspace "([^"]+)" has no containers$`, s.workspaceHasNoContainers)
	ctx.Step(`^workspace "([^"]+)" is still focused$`, s.workspaceIsStillFocused)
	ctx.Step(`^a workspace-focus notification targets workspace "([^"]+)"$`, s.aWorkspaceFocusNotificationTargetsWorkspace)

	ctx.Step(`^a monitor sized (\d+)x(\d+) with work area offset top (\d+)$`, s.aMonitorSizedWithWorkAreaOffsetTop)
	ctx.Step(`^the monitor display resizes to (\d+)x(\d+)$`, s.theMonitorDisplayResizesTo)
	ctx.Step(`^the new work area top offset is (\d+)$`, s.theNewWorkAreaTopOffsetIs)
	ctx.Step(`^the focused workspace is re-derived against the new work area$`, s.theFocusedWorkspaceIsRederivedAgainstTheNewWorkArea)

	ctx.Step(`^the topology mutex is held by a long-running mutation$`, s.theTopologyMutexIsHeldByALongRunningMutation)
	ctx.Step(`^a TogglePause command arrives with a (\d+) second budget$`, s.aTogglePauseCommandArrivesWithABudget)
	ctx.Step(`^the command is dropped after the budget elapses$`, s.theCommandIsDroppedAfterTheBudgetElapses)
	ctx.Step(`^the topology is unchanged$`, s.theTopologyIsUnchanged)
	ctx.Step(`^the long-running mutation releases the mutex$`, s.theLongRunningMutationReleasesTheMutex)
	ctx.Step(`^the command succeeds$`, s.theCommandSucceeds)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "scenarios",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format: "pretty",
			Paths:  []string{"../../features/scenarios.feature"},
		},
	}
	require.Equal(t, 0, suite.Run(), "non-zero status returned, failed to run feature tests")
}
