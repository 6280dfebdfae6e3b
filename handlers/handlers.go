// ABOUTME: HTTP handlers for the rack-space API
// ABOUTME: Holds shared dependencies, JSON helpers, and the error-to-status mapping

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/markalston/assetdex-dcim/cache"
	"github.com/markalston/assetdex-dcim/config"
	"github.com/markalston/assetdex-dcim/metrics"
	"github.com/markalston/assetdex-dcim/models"
	"github.com/markalston/assetdex-dcim/services"
	"github.com/markalston/assetdex-dcim/store"
)

// maxRequestBodySize limits request bodies to 1MB.
const maxRequestBodySize = 1 << 20

const racksCacheKey = "racks:all"

//go:generate mockgen -destination=mock_inventory_test.go -package=handlers github.com/markalston/assetdex-dcim/handlers Inventory

// Inventory is the persistence the handlers need. *store.Store satisfies it.
type Inventory interface {
	Ping(ctx context.Context) error

	ListRacks(ctx context.Context) ([]models.RackSummary, error)
	CreateRack(ctx context.Context, rack models.Rack) (models.Rack, error)
	DeleteRack(ctx context.Context, name string) error
	RackServers(ctx context.Context, name string) (models.Rack, []models.Server, error)
	Snapshot(ctx context.Context, name string) (models.RackSnapshot, error)

	ListServers(ctx context.Context, rack string) ([]models.Server, error)
	GetServer(ctx context.Context, id string) (models.Server, error)
	CreateServer(ctx context.Context, srv models.Server) (models.Server, error)
	PlaceServer(ctx context.Context, id, rack string, unit, height int) (models.Server, error)
	UnrackServer(ctx context.Context, id string) (models.Server, error)
	DeleteServer(ctx context.Context, id string) error
}

// Handler serves the rack-space API over an Inventory.
type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	inventory Inventory
	evaluator *services.AvailabilityEvaluator
	metrics   *metrics.Metrics

	// racksFlight collapses concurrent rack-list cache misses into one query.
	racksFlight singleflight.Group
}

// NewHandler wires the API handlers. Every dependency may be nil in tests
// that only exercise the route table.
func NewHandler(cfg *config.Config, c *cache.Cache, inventory Inventory, m *metrics.Metrics) *Handler {
	return &Handler{
		cfg:       cfg,
		cache:     c,
		inventory: inventory,
		evaluator: services.NewAvailabilityEvaluator(),
		metrics:   m,
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeErrorDetails(w, message, "", code)
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// writeStoreError maps domain and store errors to HTTP responses.
// Conflicts carry the fresh availability verdict so clients can retry at the suggestion.
func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	var conflict *store.ConflictError
	switch {
	case errors.As(err, &conflict):
		h.writeJSON(w, http.StatusConflict, models.NewAvailabilityResponse(conflict.Result))
	case errors.Is(err, models.ErrInvalidPlacement), errors.Is(err, models.ErrInvalidUnitFormat):
		h.writeErrorDetails(w, "Invalid placement", err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrRackNotFound):
		h.writeError(w, "Rack not found", http.StatusNotFound)
	case errors.Is(err, store.ErrServerNotFound):
		h.writeError(w, "Server not found", http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicate):
		h.writeErrorDetails(w, "Resource already exists", err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrSnapshotUnavailable):
		slog.Error("Rack occupancy unavailable", "error", err)
		h.writeError(w, "could not check availability", http.StatusServiceUnavailable)
	default:
		slog.Error("Inventory operation failed", "error", err)
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON reads a size-limited JSON body into dst. It writes the error
// response itself and returns false when the body is unusable.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.writeError(w, "Request body too large", http.StatusBadRequest)
		case errors.Is(err, models.ErrInvalidUnitFormat):
			h.writeErrorDetails(w, "Invalid unit format", err.Error(), http.StatusBadRequest)
		default:
			h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		}
		return false
	}
	return true
}

// invalidateRacks drops cached rack listings after any write that changes usage.
func (h *Handler) invalidateRacks() {
	h.racksFlight.Forget(racksCacheKey)
	if h.cache != nil {
		h.cache.ClearPrefix("racks:")
	}
}
