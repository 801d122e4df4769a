// Package protocol defines the wire shape of the command-socket protocol:
// one JSON object per line, each tagging a SocketMessage variant (spec.md
// §6). Mutating variants get no response; State is the one query variant
// and gets a JSON response followed by socket close.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/axwm/axwm/internal/layout"
)

// MessageKind tags which SocketMessage variant a decoded message carries.
type MessageKind string

const (
	KindFocusWindow                     MessageKind = "FocusWindow"
	KindMoveWindow                      MessageKind = "MoveWindow"
	KindStackWindow                     MessageKind = "StackWindow"
	KindUnstackWindow                   MessageKind = "UnstackWindow"
	KindCycleStack                      MessageKind = "CycleStack"
	KindChangeLayout                    MessageKind = "ChangeLayout"
	KindTogglePause                     MessageKind = "TogglePause"
	KindToggleMonocle                   MessageKind = "ToggleMonocle"
	KindToggleFloat                     MessageKind = "ToggleFloat"
	KindToggleWorkspaceLayer            MessageKind = "ToggleWorkspaceLayer"
	KindFocusWorkspaceNumber            MessageKind = "FocusWorkspaceNumber"
	KindMoveContainerToWorkspaceNumber  MessageKind = "MoveContainerToWorkspaceNumber"
	KindSendContainerToWorkspaceNumber  MessageKind = "SendContainerToWorkspaceNumber"
	KindResizeWindowEdge                MessageKind = "ResizeWindowEdge"
	KindResizeWindowAxis                MessageKind = "ResizeWindowAxis"
	KindRetile                          MessageKind = "Retile"
	// KindState is the one query variant (spec.md §6's "messages that are
	// queries emit the JSON response followed by socket close"), an
	// (expansion) addition SPEC_FULL.md §6 calls for explicitly.
	KindState MessageKind = "State"
)

// CycleDirection mirrors core.CycleDirection for wire purposes, kept
// independent so pkg/protocol never imports internal/core.
type CycleDirection string

const (
	CyclePrevious CycleDirection = "Previous"
	CycleNext     CycleDirection = "Next"
)

// Axis names a resize axis for ResizeWindowAxis.
type Axis string

const (
	AxisHorizontal Axis = "Horizontal"
	AxisVertical   Axis = "Vertical"
)

// Sizing names the direction of a resize step.
type Sizing string

const (
	SizingIncrease Sizing = "Increase"
	SizingDecrease Sizing = "Decrease"
)

// SocketMessage is the decoded shape of one newline-delimited JSON command
// (spec.md §6). Fields unused by a given Kind are left zero.
type SocketMessage struct {
	Kind MessageKind `json:"type"`

	// FocusWindow, MoveWindow, StackWindow, ResizeWindowEdge
	Direction layout.Direction `json:"direction,omitempty"`

	// CycleStack
	Cycle CycleDirection `json:"cycle,omitempty"`

	// ChangeLayout
	Layout layout.Kind `json:"layout,omitempty"`

	// FocusWorkspaceNumber, MoveContainerToWorkspaceNumber,
	// SendContainerToWorkspaceNumber
	WorkspaceNumber uint `json:"workspace_number,omitempty"`

	// ResizeWindowAxis
	Axis Axis `json:"axis,omitempty"`

	// ResizeWindowEdge, ResizeWindowAxis
	Sizing Sizing `json:"sizing,omitempty"`
}

// Encode marshals m as a single JSON line (without the trailing newline;
// the caller appends it per the socket framing in internal/ipc).
func (m SocketMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses one line of the socket protocol into a SocketMessage.
func Decode(line []byte) (SocketMessage, error) {
	var m SocketMessage
	if err := json.Unmarshal(line, &m); err != nil {
		return SocketMessage{}, fmt.Errorf("protocol: decode: %w", err)
	}
	if m.Kind == "" {
		return SocketMessage{}, fmt.Errorf("protocol: decode: missing type field")
	}
	return m, nil
}

// IsQuery reports whether m expects a JSON response rather than silence.
func (m SocketMessage) IsQuery() bool {
	return m.Kind == KindState
}
