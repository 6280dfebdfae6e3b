// ABOUTME: Availability verdicts for rack placements and their wire format
// ABOUTME: Converts between typed API schemas and the core placement types

package models

import "strings"

// Suggestion is an alternative mounting position proposed after a conflict.
type Suggestion struct {
	StartUnit int    `json:"position"`
	Reason    string `json:"reason"`
}

// AvailabilityResult is the outcome of evaluating one candidate placement.
// FreeSpaces is always populated so the UI can show context.
type AvailabilityResult struct {
	Available  bool               `json:"available"`
	Conflicts  []RackUnitInterval `json:"conflicts"`
	FreeSpaces []FreeSpace        `json:"free_spaces"`
	Suggestion *Suggestion        `json:"suggestion,omitempty"`
}

// AvailabilityRequest is the body of POST /api/v1/rack-space/check.
type AvailabilityRequest struct {
	Rack            string       `json:"rack"`
	Position        UnitPosition `json:"position"`
	UnitHeight      int          `json:"unitHeight"`
	ExcludeServerID string       `json:"excludeServerId,omitempty"`
}

// Candidate converts the request to a core placement query.
func (r AvailabilityRequest) Candidate() CandidatePlacement {
	return CandidatePlacement{
		Rack:            strings.TrimSpace(r.Rack),
		StartUnit:       int(r.Position),
		Height:          r.UnitHeight,
		ExcludeDeviceID: strings.TrimSpace(r.ExcludeServerID),
	}
}

// ConflictingServer is a conflicting device as reported to API clients.
type ConflictingServer struct {
	ID         string `json:"id"`
	Hostname   string `json:"hostname"`
	Unit       string `json:"unit"`
	UnitHeight int    `json:"unit_height"`
}

// AvailabilityResponse is the wire form of an AvailabilityResult.
type AvailabilityResponse struct {
	Available          bool                `json:"available"`
	ConflictingServers []ConflictingServer `json:"conflictingServers,omitempty"`
	AvailableSpaces    []FreeSpace         `json:"availableSpaces"`
	Suggestion         *Suggestion         `json:"suggestion,omitempty"`
}

// NewAvailabilityResponse renders a result for API clients, formatting
// conflicting units as "U<n>".
func NewAvailabilityResponse(result AvailabilityResult) AvailabilityResponse {
	resp := AvailabilityResponse{
		Available:       result.Available,
		AvailableSpaces: result.FreeSpaces,
		Suggestion:      result.Suggestion,
	}
	if resp.AvailableSpaces == nil {
		resp.AvailableSpaces = []FreeSpace{}
	}
	for _, c := range result.Conflicts {
		resp.ConflictingServers = append(resp.ConflictingServers, ConflictingServer{
			ID:         c.DeviceID,
			Hostname:   c.Label,
			Unit:       FormatUnit(c.StartUnit),
			UnitHeight: c.Height,
		})
	}
	return resp
}

// PlacementRequest is the body of PUT /api/v1/servers/{id}/placement.
// A zero UnitHeight keeps the server's current height.
type PlacementRequest struct {
	Rack       string       `json:"rack"`
	Position   UnitPosition `json:"position"`
	UnitHeight int          `json:"unitHeight,omitempty"`
}

// CreateServerRequest is the body of POST /api/v1/servers.
// Rack and Position are optional; when both are set the server is mounted.
type CreateServerRequest struct {
	Hostname   string       `json:"hostname"`
	Model      string       `json:"model,omitempty"`
	Serial     string       `json:"serial,omitempty"`
	Rack       string       `json:"rack,omitempty"`
	Position   UnitPosition `json:"position,omitempty"`
	UnitHeight int          `json:"unitHeight"`
}

// CreateRackRequest is the body of POST /api/v1/racks.
type CreateRackRequest struct {
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	TotalUnits int    `json:"total_units,omitempty"`
}
