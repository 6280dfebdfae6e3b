// ABOUTME: HTTP handlers for rack listing, creation, occupancy, and deletion
// ABOUTME: Rack listings are cached and invalidated on every inventory write

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/markalston/assetdex-dcim/models"
	"github.com/markalston/assetdex-dcim/services"
	"github.com/markalston/assetdex-dcim/store"
)

// ListRacks returns every rack with its used and free unit counts.
func (h *Handler) ListRacks(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		if cached, found := h.cache.Get(racksCacheKey); found {
			h.writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	// The query is shared with concurrent callers, so one client going away
	// must not cancel it for the rest.
	queryCtx := context.WithoutCancel(r.Context())
	racks, err, shared := h.racksFlight.Do(racksCacheKey, func() (any, error) {
		racks, err := h.inventory.ListRacks(queryCtx)
		if err != nil {
			return nil, err
		}
		if racks == nil {
			racks = []models.RackSummary{}
		}
		if h.cache != nil {
			h.cache.Set(racksCacheKey, racks)
		}
		return racks, nil
	})
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	if shared {
		slog.Debug("Rack list query shared with a concurrent request")
	}
	h.writeJSON(w, http.StatusOK, racks)
}

// CreateRack registers a new rack. total_units defaults to the configured capacity.
func (h *Handler) CreateRack(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRackRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := services.ValidateRackName(req.Name); err != nil {
		h.writeErrorDetails(w, "Invalid rack", err.Error(), http.StatusBadRequest)
		return
	}
	if req.TotalUnits != 0 {
		if err := services.ValidateRackUnits(req.TotalUnits); err != nil {
			h.writeErrorDetails(w, "Invalid rack", err.Error(), http.StatusBadRequest)
			return
		}
	}

	rack, err := h.inventory.CreateRack(r.Context(), models.Rack{
		Name:       req.Name,
		Location:   strings.TrimSpace(req.Location),
		TotalUnits: req.TotalUnits,
	})
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.invalidateRacks()
	slog.Info("Rack created", "rack", rack.Name, "total_units", rack.TotalUnits)
	h.writeJSON(w, http.StatusCreated, rack)
}

// GetRackOccupancy renders one rack: mounted servers plus every free run.
// This is the read path of the occupancy model.
func (h *Handler) GetRackOccupancy(w http.ResponseWriter, r *http.Request) {
	occupancy, err := h.loadOccupancy(r)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, occupancy)
}

// DeleteRack removes a rack; its servers stay in inventory, unracked.
func (h *Handler) DeleteRack(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("rack")
	if err := h.inventory.DeleteRack(r.Context(), name); err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.invalidateRacks()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loadOccupancy(r *http.Request) (models.RackOccupancy, error) {
	rack, servers, err := h.inventory.RackServers(r.Context(), r.PathValue("rack"))
	if err != nil {
		return models.RackOccupancy{}, err
	}
	if servers == nil {
		servers = []models.Server{}
	}

	snap := store.NewSnapshot(rack, servers)
	used := snap.UsedUnits()
	return models.RackOccupancy{
		Rack:       rack,
		Servers:    servers,
		FreeSpaces: snap.FreeSpaces(""),
		UsedUnits:  used,
		FreeUnits:  max(rack.TotalUnits-used, 0),
	}, nil
}
