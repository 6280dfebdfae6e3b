// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
	Class   RateClass        // Rate limit bucket the route draws from
}

// RateClass groups routes that share a rate limit.
type RateClass int

const (
	RateDefault RateClass = iota
	RateCheck
	RateWrite
)

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Racks
		{Method: http.MethodGet, Path: "/api/v1/racks", Handler: h.ListRacks},
		{Method: http.MethodPost, Path: "/api/v1/racks", Handler: h.CreateRack, Class: RateWrite},
		{Method: http.MethodGet, Path: "/api/v1/racks/{rack}", Handler: h.GetRackOccupancy},
		{Method: http.MethodDelete, Path: "/api/v1/racks/{rack}", Handler: h.DeleteRack, Class: RateWrite},
		{Method: http.MethodGet, Path: "/api/v1/racks/{rack}/export", Handler: h.ExportRack},

		// Availability
		{Method: http.MethodPost, Path: "/api/v1/rack-space/check", Handler: h.CheckRackSpace, Class: RateCheck},

		// Servers
		{Method: http.MethodGet, Path: "/api/v1/servers", Handler: h.ListServers},
		{Method: http.MethodPost, Path: "/api/v1/servers", Handler: h.CreateServer, Class: RateWrite},
		{Method: http.MethodGet, Path: "/api/v1/servers/{id}", Handler: h.GetServer},
		{Method: http.MethodPut, Path: "/api/v1/servers/{id}/placement", Handler: h.PlaceServer, Class: RateWrite},
		{Method: http.MethodDelete, Path: "/api/v1/servers/{id}/placement", Handler: h.UnrackServer, Class: RateWrite},
		{Method: http.MethodDelete, Path: "/api/v1/servers/{id}", Handler: h.DeleteServer, Class: RateWrite},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
