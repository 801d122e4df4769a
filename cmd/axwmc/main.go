// Command axwmc is the thin command-socket client: it encodes one
// pkg/protocol.SocketMessage per invocation and writes it to axwmd's
// UNIX socket, printing the JSON response for the one query variant
// (spec.md §6).
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/axwm/axwm/internal/config"
	"github.com/axwm/axwm/internal/layout"
	"github.com/axwm/axwm/pkg/protocol"
)

func main() {
	root := &cobra.Command{
		Use:   "axwmc",
		Short: "axwm command-socket client",
	}
	root.PersistentFlags().String("socket", "", "path to axwmd's command socket (default: from config)")
	viper.BindPFlag("socket", root.PersistentFlags().Lookup("socket"))

	root.AddCommand(
		directionCmd("focus", protocol.KindFocusWindow),
		directionCmd("move", protocol.KindMoveWindow),
		directionCmd("stack", protocol.KindStackWindow),
		simpleCmd("unstack", protocol.KindUnstackWindow),
		cycleCmd(),
		layoutCmd(),
		simpleCmd("pause", protocol.KindTogglePause),
		simpleCmd("monocle", protocol.KindToggleMonocle),
		simpleCmd("float", protocol.KindToggleFloat),
		simpleCmd("layer", protocol.KindToggleWorkspaceLayer),
		simpleCmd("retile", protocol.KindRetile),
		workspaceCmd("workspace", protocol.KindFocusWorkspaceNumber),
		workspaceCmd("move-to-workspace", protocol.KindMoveContainerToWorkspaceNumber),
		workspaceCmd("send-to-workspace", protocol.KindSendContainerToWorkspaceNumber),
		resizeEdgeCmd(),
		resizeAxisCmd(),
		stateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "axwmc: %v\n", err)
		os.Exit(1)
	}
}

func socketPath() string {
	if p := viper.GetString("socket"); p != "" {
		return p
	}
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.SocketPath
}

// send writes msg as one newline-delimited JSON line to axwmd's socket and,
// for the one query variant, prints the response line before the
// connection closes (spec.md §6).
func send(msg protocol.SocketMessage) error {
	path := socketPath()
	conn, err := net.DialTimeout("unix", path, time.Second)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", path, err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(time.Second))

	body, err := msg.Encode()
	if err != nil {
		return err
	}
	if _, err := conn.Write(append(body, '\n')); err != nil {
		return err
	}

	if !msg.IsQuery() {
		return nil
	}

	scanner := bufio.NewScanner(conn)
	if scanner.Scan() {
		fmt.Println(scanner.Text())
	}
	return scanner.Err()
}

func simpleCmd(use string, kind protocol.MessageKind) *cobra.Command {
	return &cobra.Command{
		Use:  use,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(protocol.SocketMessage{Kind: kind})
		},
	}
}

func directionCmd(use string, kind protocol.MessageKind) *cobra.Command {
	return &cobra.Command{
		Use:       use + " <left|right|up|down>",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"left", "right", "up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseDirection(args[0])
			if err != nil {
				return err
			}
			return send(protocol.SocketMessage{Kind: kind, Direction: dir})
		},
	}
}

func cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "cycle <previous|next>",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"previous", "next"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var c protocol.CycleDirection
			switch args[0] {
			case "previous", "prev":
				c = protocol.CyclePrevious
			case "next":
				c = protocol.CycleNext
			default:
				return fmt.Errorf("unknown cycle direction %q", args[0])
			}
			return send(protocol.SocketMessage{Kind: protocol.KindCycleStack, Cycle: c})
		},
	}
}

func layoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "layout <bsp|columns|rows|vertical_stack|right_main_vertical_stack|horizontal_stack|ultrawide_vertical_stack|grid|scrolling>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseLayoutKind(args[0])
			if err != nil {
				return err
			}
			return send(protocol.SocketMessage{Kind: protocol.KindChangeLayout, Layout: k})
		},
	}
}

func workspaceCmd(use string, kind protocol.MessageKind) *cobra.Command {
	return &cobra.Command{
		Use:  use + " <n>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n uint
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("invalid workspace number %q", args[0])
			}
			return send(protocol.SocketMessage{Kind: kind, WorkspaceNumber: n})
		},
	}
}

func resizeEdgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "resize-edge <left|right|up|down> <increase|decrease>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseDirection(args[0])
			if err != nil {
				return err
			}
			sizing, err := parseSizing(args[1])
			if err != nil {
				return err
			}
			return send(protocol.SocketMessage{Kind: protocol.KindResizeWindowEdge, Direction: dir, Sizing: sizing})
		},
	}
}

func resizeAxisCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "resize-axis <horizontal|vertical> <increase|decrease>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var axis protocol.Axis
			switch args[0] {
			case "horizontal":
				axis = protocol.AxisHorizontal
			case "vertical":
				axis = protocol.AxisVertical
			default:
				return fmt.Errorf("unknown axis %q", args[0])
			}
			sizing, err := parseSizing(args[1])
			if err != nil {
				return err
			}
			return send(protocol.SocketMessage{Kind: protocol.KindResizeWindowAxis, Axis: axis, Sizing: sizing})
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "state",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(protocol.SocketMessage{Kind: protocol.KindState})
		},
	}
}

func parseDirection(s string) (layout.Direction, error) {
	switch s {
	case "left":
		return layout.Left, nil
	case "right":
		return layout.Right, nil
	case "up":
		return layout.Up, nil
	case "down":
		return layout.Down, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseSizing(s string) (protocol.Sizing, error) {
	switch s {
	case "increase":
		return protocol.SizingIncrease, nil
	case "decrease":
		return protocol.SizingDecrease, nil
	default:
		return "", fmt.Errorf("unknown sizing %q", s)
	}
}

func parseLayoutKind(s string) (layout.Kind, error) {
	switch s {
	case "bsp":
		return layout.BSP, nil
	case "columns":
		return layout.Columns, nil
	case "rows":
		return layout.Rows, nil
	case "vertical_stack":
		return layout.VerticalStack, nil
	case "right_main_vertical_stack":
		return layout.RightMainVerticalStack, nil
	case "horizontal_stack":
		return layout.HorizontalStack, nil
	case "ultrawide_vertical_stack":
		return layout.UltrawideVerticalStack, nil
	case "grid":
		return layout.Grid, nil
	case "scrolling":
		return layout.Scrolling, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}
