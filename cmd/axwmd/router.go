package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/axwm/axwm/internal/ipc"
)

// NewRouter combines the read-only diagnostics surface with the overlay
// manager's websocket subscription endpoint under one HTTP server, since
// this daemon exposes a single bound port rather than the teacher's
// separate app/metrics listeners.
func NewRouter(d *daemon) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/overlay", d.publisher.Subscribe).Methods("GET")
	r.PathPrefix("/").Handler(ipc.NewDiagnosticsRouter(d.wm, d.metrics))
	return r
}
