package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/gatekeep/pkg/logger"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

type healthBody struct {
	OK bool `json:"ok"`
}

// LivenessHandler always answers 200 {"ok":true}.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeHealth(w, http.StatusOK, true)
	}
}

// ReadinessHandler runs every check and answers 503 {"ok":false} on the
// first failure.
func ReadinessHandler(log *slog.Logger, checks ...CheckFunc) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				writeHealth(w, http.StatusServiceUnavailable, false)
				return
			}
		}
		writeHealth(w, http.StatusOK, true)
	}
}

func writeHealth(w http.ResponseWriter, status int, ok bool) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(healthBody{OK: ok})
}
