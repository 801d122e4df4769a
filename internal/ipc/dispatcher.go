// Package ipc implements the command-socket server: newline-delimited JSON
// pkg/protocol.SocketMessage values in, core.WindowManager mutations out
// (spec.md §6).
package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/pkg/protocol"
)

// commandLockBudget is the command path's try_lock_for budget (spec.md §5,
// §8 scenario S6: "while a long mutation holds the mutex > 1 s ... client
// times out its send; server logs one warning; topology unchanged").
const commandLockBudget = time.Second

// ErrLockBudgetExceeded is returned when the topology mutex was not free
// within commandLockBudget; the caller must drop the command and log a
// warning rather than retry inline (the client is expected to retry).
var ErrLockBudgetExceeded = errors.New("ipc: command dropped, topology locked beyond budget")

// Dispatcher translates decoded SocketMessage values into core.WindowManager
// calls, issuing the resulting writes through a WriteIssuer-shaped
// callback. It is the sole entry point mutating commands take, keeping the
// topology's single mutation surface intact even with two external
// interfaces (socket + diagnostics HTTP) wired to the same WindowManager.
type Dispatcher struct {
	wm       *core.WindowManager
	issue    func(writes []core.Write)
	snapshot func() protocol.StateSnapshot
}

func NewDispatcher(wm *core.WindowManager, issue func([]core.Write), snapshot func() protocol.StateSnapshot) *Dispatcher {
	return &Dispatcher{wm: wm, issue: issue, snapshot: snapshot}
}

// Dispatch runs msg and, for KindState, returns the JSON response body the
// server writes before closing the connection. Every other variant emits
// no response, matching spec.md §6's response discipline.
func (d *Dispatcher) Dispatch(msg protocol.SocketMessage) (response []byte, isQuery bool, err error) {
	if msg.Kind == protocol.KindState {
		body, err := json.Marshal(d.snapshot())
		return body, true, err
	}

	// Probe the mutex with the same budget try_lock_for(1s) would give the
	// real mutation, then release it immediately: a free mutex here means
	// dispatchMutation's own (blocking) lock acquisition just below resolves
	// without the caller ever waiting past the budget. If the probe itself
	// times out, the command is dropped before dispatchMutation runs at all,
	// so the topology is left provably unchanged (spec.md §8 scenario S6).
	if _, ok := d.wm.WithLockTimeout(commandLockBudget, func() []core.Write { return nil }); !ok {
		return nil, false, ErrLockBudgetExceeded
	}

	writes, err := d.dispatchMutation(msg)
	if err != nil {
		return nil, false, err
	}
	d.issue(writes)
	return nil, false, nil
}

func (d *Dispatcher) dispatchMutation(msg protocol.SocketMessage) ([]core.Write, error) {
	switch msg.Kind {
	case protocol.KindFocusWindow:
		return d.wm.FocusContainerInDirection(msg.Direction), nil
	case protocol.KindMoveWindow:
		return d.wm.MoveContainerInDirection(msg.Direction), nil
	case protocol.KindStackWindow:
		return d.wm.AddWindowToContainer(msg.Direction), nil
	case protocol.KindUnstackWindow:
		return d.wm.RemoveWindowFromContainer(), nil
	case protocol.KindCycleStack:
		return d.wm.CycleContainerWindowInDirection(cycleDirection(msg.Cycle)), nil
	case protocol.KindChangeLayout:
		return d.wm.ChangeWorkspaceLayoutDefault(msg.Layout), nil
	case protocol.KindTogglePause:
		d.wm.TogglePause()
		return nil, nil
	case protocol.KindToggleMonocle:
		return d.wm.ToggleMonocle(), nil
	case protocol.KindToggleFloat:
		return d.wm.ToggleFloat(), nil
	case protocol.KindToggleWorkspaceLayer:
		return d.wm.ToggleWorkspaceLayer(), nil
	case protocol.KindFocusWorkspaceNumber:
		return d.wm.FocusWorkspace(workspaceIndex(msg.WorkspaceNumber)), nil
	case protocol.KindMoveContainerToWorkspaceNumber:
		return d.wm.MoveContainerToWorkspace(workspaceIndex(msg.WorkspaceNumber), true, -1), nil
	case protocol.KindSendContainerToWorkspaceNumber:
		return d.wm.MoveContainerToWorkspace(workspaceIndex(msg.WorkspaceNumber), false, -1), nil
	case protocol.KindResizeWindowEdge:
		return d.wm.ResizeContainerEdge(msg.Direction, sizing(msg.Sizing)), nil
	case protocol.KindResizeWindowAxis:
		return d.wm.ResizeContainerAxis(axis(msg.Axis), sizing(msg.Sizing)), nil
	case protocol.KindRetile:
		return d.wm.Retile(), nil
	default:
		return nil, fmt.Errorf("ipc: unrecognized message type %q", msg.Kind)
	}
}

// workspaceIndex converts the protocol's 1-based, user-facing workspace
// number (spec.md §6's "FocusWorkspaceNumber(u)") to the 0-based ring
// index core.WindowManager expects.
func workspaceIndex(n uint) int {
	if n == 0 {
		return 0
	}
	return int(n) - 1
}

func cycleDirection(c protocol.CycleDirection) core.CycleDirection {
	if c == protocol.CyclePrevious {
		return core.CyclePrevious
	}
	return core.CycleNext
}

func sizing(s protocol.Sizing) core.Sizing {
	if s == protocol.SizingDecrease {
		return core.SizingDecrease
	}
	return core.SizingIncrease
}

func axis(a protocol.Axis) core.Axis {
	if a == protocol.AxisVertical {
		return core.AxisVertical
	}
	return core.AxisHorizontal
}
