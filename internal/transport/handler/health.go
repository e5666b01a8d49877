package handler

import (
	"net/http"
	"time"

	"github.com/pep299/learntube/internal/transport/response"
)

// Health serves GET /api/health.
type Health struct {
	version string
}

func NewHealth(version string) *Health {
	return &Health{version: version}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   h.version,
	})
}
