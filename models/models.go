// ABOUTME: Inventory data models for racks and servers
// ABOUTME: JSON-serializable structures matching frontend expectations

package models

import "time"

// Rack is a fixed-capacity container of devices, identified by name.
type Rack struct {
	Name       string    `json:"name"`
	Location   string    `json:"location,omitempty"`
	TotalUnits int       `json:"total_units"`
	CreatedAt  time.Time `json:"created_at"`
}

// RackSummary is a rack with its unit usage, used for listings.
type RackSummary struct {
	Rack
	ServerCount int `json:"server_count"`
	UsedUnits   int `json:"used_units"`
	FreeUnits   int `json:"free_units"`
}

// Server is an inventory device. Rack and Unit are empty/zero when unracked.
type Server struct {
	ID         string    `json:"id"`
	Hostname   string    `json:"hostname"`
	Model      string    `json:"model,omitempty"`
	Serial     string    `json:"serial,omitempty"`
	Rack       string    `json:"rack,omitempty"`
	Unit       int       `json:"unit,omitempty"`
	UnitHeight int       `json:"unit_height"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Racked reports whether the server currently has a mounting position.
func (s Server) Racked() bool {
	return s.Rack != "" && s.Unit > 0
}

// Interval returns the server's unit span for occupancy calculations.
func (s Server) Interval() RackUnitInterval {
	return RackUnitInterval{
		DeviceID:  s.ID,
		Label:     s.Hostname,
		StartUnit: s.Unit,
		Height:    s.UnitHeight,
	}
}

// RackOccupancy is the read-path view of one rack.
type RackOccupancy struct {
	Rack       Rack        `json:"rack"`
	Servers    []Server    `json:"servers"`
	FreeSpaces []FreeSpace `json:"availableSpaces"`
	UsedUnits  int         `json:"used_units"`
	FreeUnits  int         `json:"free_units"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}
