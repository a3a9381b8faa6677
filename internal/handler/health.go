package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker
type HealthCheckerFunc func(ctx context.Context) error

// CheckHealth implements HealthChecker
func (f HealthCheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz runs every named check and reports unavailable if any fails.
// Failures are listed in name order.
func HandleReadyz(checks map[string]HealthChecker) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		var failures []string
		for _, name := range names {
			if err := checks[name].CheckHealth(ctx); err != nil {
				slog.Error(LogMsgReadinessFailed, "check", name, "error", err)
				failures = append(failures, name+": "+err.Error())
			}
		}

		if len(failures) > 0 {
			writeHealth(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: strings.Join(failures, "; "),
			})
			return
		}

		writeHealth(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

func writeHealth(w http.ResponseWriter, status int, response HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}
