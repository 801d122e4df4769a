package ipc

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/metrics"
)

// NewDiagnosticsRouter builds the read-only HTTP surface SPEC_FULL.md's
// ambient-stack expansion adds alongside the command socket: a liveness
// probe, a readiness probe gated on wm having at least one monitor, a
// JSON dump of the same state a KindState socket query returns, and (when
// reg is non-nil) a Prometheus scrape endpoint.
func NewDiagnosticsRouter(wm *core.WindowManager, reg *metrics.Registry) http.Handler {
	r := mux.NewRouter()
	r.Handle("/healthz", otelhttp.NewHandler(http.HandlerFunc(healthzHandler), "healthz"))
	r.Handle("/readyz", otelhttp.NewHandler(http.HandlerFunc(readyzHandler(wm)), "readyz"))
	r.Handle("/api/v1/state", otelhttp.NewHandler(http.HandlerFunc(stateHandler(wm)), "state"))
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func readyzHandler(wm *core.WindowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := false
		wm.Inspect(func() {
			ready = wm.Monitors.Len() > 0
		})
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("no monitors attached"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func stateHandler(wm *core.WindowManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := BuildSnapshot(wm)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
	}
}
