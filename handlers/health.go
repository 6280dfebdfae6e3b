// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports API status including database reachability

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Health returns API health status including the database ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":   "ok",
		"database": "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.inventory.Ping(ctx); err != nil {
		slog.Error("Database ping failed", "error", err)
		resp["status"] = "degraded"
		resp["database"] = "unavailable"
		h.writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
