// ABOUTME: HTTP handler for rack-space availability checks
// ABOUTME: Loads a fresh rack snapshot and reports conflicts, free spaces, and a suggestion

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/markalston/assetdex-dcim/metrics"
	"github.com/markalston/assetdex-dcim/models"
	"github.com/markalston/assetdex-dcim/services"
	"github.com/markalston/assetdex-dcim/store"
)

// CheckRackSpace answers whether a device of the given height fits at a position.
// The verdict is advisory; writes re-check inside their own transaction.
func (h *Handler) CheckRackSpace(w http.ResponseWriter, r *http.Request) {
	var req models.AvailabilityRequest
	if !h.decodeJSON(w, r, &req) {
		h.metrics.ObserveCheck(metrics.CheckInvalid)
		return
	}

	candidate := req.Candidate()
	if candidate.Rack == "" {
		h.metrics.ObserveCheck(metrics.CheckInvalid)
		h.writeError(w, "rack is required", http.StatusBadRequest)
		return
	}

	snap, err := h.inventory.Snapshot(r.Context(), candidate.Rack)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotUnavailable) {
			h.metrics.ObserveCheck(metrics.CheckUnavailable)
		}
		h.writeStoreError(w, err)
		return
	}

	result, err := h.evaluator.Evaluate(snap, candidate)
	if err != nil {
		h.metrics.ObserveCheck(metrics.CheckInvalid)
		h.writeStoreError(w, err)
		return
	}

	if result.Available {
		h.metrics.ObserveCheck(metrics.CheckAvailable)
	} else {
		h.metrics.ObserveCheck(metrics.CheckConflict)
		slog.Debug("Rack space conflict",
			"rack", services.SanitizeForLog(candidate.Rack),
			"position", candidate.StartUnit,
			"height", candidate.Height,
			"conflicts", len(result.Conflicts),
		)
	}

	h.writeJSON(w, http.StatusOK, models.NewAvailabilityResponse(result))
}
