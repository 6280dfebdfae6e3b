// ABOUTME: HTTP handlers for server inventory and placement writes
// ABOUTME: Placement writes are re-checked by the store; conflicts return 409 with a suggestion

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/markalston/assetdex-dcim/metrics"
	"github.com/markalston/assetdex-dcim/models"
	"github.com/markalston/assetdex-dcim/services"
	"github.com/markalston/assetdex-dcim/store"
)

// ListServers returns all servers, or only those mounted in ?rack=.
func (h *Handler) ListServers(w http.ResponseWriter, r *http.Request) {
	servers, err := h.inventory.ListServers(r.Context(), strings.TrimSpace(r.URL.Query().Get("rack")))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if servers == nil {
		servers = []models.Server{}
	}
	h.writeJSON(w, http.StatusOK, servers)
}

// GetServer returns one server by id.
func (h *Handler) GetServer(w http.ResponseWriter, r *http.Request) {
	srv, err := h.inventory.GetServer(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, srv)
}

// CreateServer adds a server to inventory, mounting it when rack and position are given.
func (h *Handler) CreateServer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	req.Hostname = strings.TrimSpace(req.Hostname)
	req.Rack = strings.TrimSpace(req.Rack)
	if err := services.ValidateHostname(req.Hostname); err != nil {
		h.writeErrorDetails(w, "Invalid server", err.Error(), http.StatusBadRequest)
		return
	}
	if (req.Rack == "") != (req.Position == 0) {
		h.writeError(w, "rack and position must be given together", http.StatusBadRequest)
		return
	}
	if req.UnitHeight != 0 {
		if err := services.ValidateUnitHeight(req.UnitHeight); err != nil {
			h.writeErrorDetails(w, "Invalid placement", err.Error(), http.StatusBadRequest)
			return
		}
	}

	srv, err := h.inventory.CreateServer(r.Context(), models.Server{
		Hostname:   req.Hostname,
		Model:      strings.TrimSpace(req.Model),
		Serial:     strings.TrimSpace(req.Serial),
		Rack:       req.Rack,
		Unit:       int(req.Position),
		UnitHeight: req.UnitHeight,
	})
	h.observeWrite("create", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.invalidateRacks()
	h.writeJSON(w, http.StatusCreated, srv)
}

// PlaceServer mounts or moves a server. The server's current units never
// count as a conflict against itself.
func (h *Handler) PlaceServer(w http.ResponseWriter, r *http.Request) {
	var req models.PlacementRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	req.Rack = strings.TrimSpace(req.Rack)
	if req.Rack == "" {
		h.writeError(w, "rack is required", http.StatusBadRequest)
		return
	}
	// Zero keeps the server's current height.
	if req.UnitHeight != 0 {
		if err := services.ValidateUnitHeight(req.UnitHeight); err != nil {
			h.writeErrorDetails(w, "Invalid placement", err.Error(), http.StatusBadRequest)
			return
		}
	}

	id := r.PathValue("id")
	srv, err := h.inventory.PlaceServer(r.Context(), id, req.Rack, int(req.Position), req.UnitHeight)
	h.observeWrite("place", err)
	if err != nil {
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			slog.Info("Placement rejected", "id", services.SanitizeForLog(id), "error", err)
		}
		h.writeStoreError(w, err)
		return
	}

	h.invalidateRacks()
	h.writeJSON(w, http.StatusOK, srv)
}

// UnrackServer clears a server's position without deleting it.
func (h *Handler) UnrackServer(w http.ResponseWriter, r *http.Request) {
	srv, err := h.inventory.UnrackServer(r.Context(), r.PathValue("id"))
	h.observeWrite("unrack", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.invalidateRacks()
	h.writeJSON(w, http.StatusOK, srv)
}

// DeleteServer removes a server from inventory.
func (h *Handler) DeleteServer(w http.ResponseWriter, r *http.Request) {
	err := h.inventory.DeleteServer(r.Context(), r.PathValue("id"))
	h.observeWrite("delete", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.invalidateRacks()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) observeWrite(operation string, err error) {
	var conflict *store.ConflictError
	switch {
	case err == nil:
		h.metrics.ObserveWrite(operation, metrics.WriteOK)
	case errors.As(err, &conflict):
		h.metrics.ObserveWrite(operation, metrics.WriteConflict)
	default:
		h.metrics.ObserveWrite(operation, metrics.WriteError)
	}
}
