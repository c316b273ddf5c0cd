package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the chi router serving the watch-mode status surface.
func NewRouter(status *Status) chi.Router {
	r := chi.NewRouter()

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		last := status.Last()
		if last == nil {
			writeJSON(w, http.StatusOK, map[string]any{"last_run": nil})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"last_run": last})
	})

	return r
}
