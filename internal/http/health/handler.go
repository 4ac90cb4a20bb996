// Package health serves the liveness probe.
package health

import (
	"encoding/json"
	"net/http"

	applog "github.com/janisto/greeting/internal/platform/logging"
)

// Path is where the liveness probe is mounted.
const Path = "/health"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler reports the process as healthy. It has no dependencies to check.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{Status: "healthy"}); err != nil {
		applog.LogError(r.Context(), "failed to write health response", err)
	}
}
