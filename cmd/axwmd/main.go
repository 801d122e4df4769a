package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/config"
	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/events"
	"github.com/axwm/axwm/internal/geometry"
	"github.com/axwm/axwm/internal/ipc"
	"github.com/axwm/axwm/internal/metrics"
	"github.com/axwm/axwm/internal/overlay"
	"github.com/axwm/axwm/internal/reconciler"
	"github.com/axwm/axwm/pkg/protocol"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

// daemon wires every subsystem into one process: the topology model, the
// bounded event channels, the three supervised reconciler loops, the
// command socket, and the read-only diagnostics/overlay HTTP surface.
// Grounded on cmd/aios-daemon/main.go's Server type and Start/
// WaitForShutdown lifecycle.
type daemon struct {
	logger *logrus.Entry
	tracer trace.Tracer
	cfg    config.Config

	wm       *core.WindowManager
	channels *events.Channels
	metrics  *metrics.Registry

	ipcServer  *ipc.Server
	httpServer *http.Server
	publisher  *overlay.Publisher
	supervisor *reconciler.Supervisor

	elementsMu sync.Mutex
	elements   map[string]accessibility.Element
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "axwmd",
		Short: "axwm tiling window manager daemon",
		Run:   run,
	}
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "axwmd: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("axwmd: failed to load config")
	}

	d := newDaemon(logger, cfg)
	if err := d.start(); err != nil {
		logger.WithError(err).Fatal("axwmd: failed to start")
	}
	d.waitForShutdown()
}

func newLogger() *logrus.Entry {
	logger := logrus.New()
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	return logger.WithField("component", "axwmd")
}

func newDaemon(logger *logrus.Entry, cfg config.Config) *daemon {
	reg := metrics.New()

	wm := core.New(accessibility.Noop{}, accessibility.Noop{}, logger, otel.Tracer("axwmd"))
	wm.Tunables.MouseFollowsFocus.Store(cfg.MouseFollowsFocus)

	channels := events.NewChannels(logger, nil)

	return &daemon{
		logger:     logger,
		tracer:     otel.Tracer("axwmd"),
		cfg:        cfg,
		wm:         wm,
		channels:   channels,
		metrics:    reg,
		publisher:  overlay.NewPublisher(logger),
		supervisor: reconciler.NewSupervisor(logger, nil),
		elements:   make(map[string]accessibility.Element),
	}
}

func (d *daemon) lookupElement(windowID string) (accessibility.Element, bool) {
	d.elementsMu.Lock()
	defer d.elementsMu.Unlock()
	el, ok := d.elements[windowID]
	return el, ok
}

func (d *daemon) start() error {
	ctx := context.Background()

	reaper := events.NewReaper(d.channels)
	issuer := &reconciler.WriteIssuer{
		Factory:  accessibility.Noop{},
		Writer:   accessibility.Noop{},
		Elements: d.lookupElement,
		Reaper:   reaper,
		Logger:   d.logger,
	}

	reconcilerMetrics := reconciler.NewMetrics(d.metrics.Registerer)
	d.supervisor = reconciler.NewSupervisor(d.logger, reconcilerMetrics)

	eventLoop := reconciler.NewEventReconciler(d.wm, d.channels, issuer, d.logger, reconcilerMetrics)
	focusLoop := reconciler.NewWorkspaceFocusReconciler(d.wm, d.channels, issuer, d.logger, reconcilerMetrics)
	resizeLoop := reconciler.NewMonitorResizeReconciler(d.wm, d.channels, noDisplayBounds, issuer, d.logger, reconcilerMetrics)

	go d.supervisor.Supervise(ctx, reconciler.Loop{Name: "event", Run: eventLoop.Run})
	go d.supervisor.Supervise(ctx, reconciler.Loop{Name: "workspace_focus", Run: focusLoop.Run})
	go d.supervisor.Supervise(ctx, reconciler.Loop{Name: "monitor_resize", Run: resizeLoop.Run})

	dispatcher := ipc.NewDispatcher(d.wm, issuer.Issue, func() protocol.StateSnapshot {
		return ipc.BuildSnapshot(d.wm)
	})

	d.ipcServer = &ipc.Server{
		SocketPath: d.cfg.SocketPath,
		Dispatcher: dispatcher,
		Logger:     d.logger,
		Metrics:    d.metrics,
	}
	if err := d.ipcServer.Listen(); err != nil {
		return fmt.Errorf("axwmd: binding command socket: %w", err)
	}
	go func() {
		if err := d.ipcServer.Serve(ctx); err != nil {
			d.logger.WithError(err).Error("axwmd: command socket server stopped")
		}
	}()

	router := NewRouter(d)
	d.httpServer = &http.Server{
		Addr:         d.cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		d.logger.WithField("addr", d.httpServer.Addr).Info("axwmd: starting diagnostics/overlay HTTP server")
		if err := d.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			d.logger.WithError(err).Fatal("axwmd: HTTP server failed")
		}
	}()

	go d.pumpOverlayFrames(ctx)

	d.logger.Info("axwmd started")
	return nil
}

// overlayPumpInterval bounds how quickly a renderer sees a layout change.
// The core model has no post-mutation hook a Publisher could subscribe
// to directly (mutations return Writes, not an event), so this polls
// BuildFrame and pushes only when the snapshot actually changed.
const overlayPumpInterval = 33 * time.Millisecond

func (d *daemon) pumpOverlayFrames(ctx context.Context) {
	var last overlay.Frame
	ticker := time.NewTicker(overlayPumpInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame, ok := overlay.BuildFrame(d.wm)
			if !ok || framesEqual(frame, last) {
				continue
			}
			last = frame
			d.publisher.Push(frame)
		}
	}
}

func framesEqual(a, b overlay.Frame) bool {
	if a.MonitorID != b.MonitorID || a.WorkspaceName != b.WorkspaceName ||
		a.Layer != b.Layer || a.FocusedContainerID != b.FocusedContainerID ||
		len(a.Containers) != len(b.Containers) {
		return false
	}
	for i := range a.Containers {
		if a.Containers[i] != b.Containers[i] {
			return false
		}
	}
	return true
}

// noDisplayBounds is the reconciler.DisplayBoundsQuery used until a real
// CoreGraphics binding is wired in; it always reports "unknown display",
// which the monitor-resize reconciler already treats as a safe no-op drop.
func noDisplayBounds(displayID string) (geometry.Rect, bool) {
	return geometry.Rect{}, false
}

func (d *daemon) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	d.logger.Info("axwmd: shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := d.httpServer.Shutdown(ctx); err != nil {
		d.logger.WithError(err).Error("axwmd: HTTP server shutdown error")
	}
	if err := d.ipcServer.Close(); err != nil {
		d.logger.WithError(err).Error("axwmd: command socket shutdown error")
	}
	d.logger.Info("axwmd: shutdown complete")
}
