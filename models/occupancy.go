// ABOUTME: Rack occupancy model over closed integer unit intervals
// ABOUTME: Provides overlap tests, occupied-unit sets and free-space enumeration

package models

import (
	"fmt"
	"sort"
)

// DefaultRackUnits is the capacity of a standard rack in this deployment.
const DefaultRackUnits = 42

// RackUnitInterval is the span of units occupied by one device.
// Unit 1 is the bottom of the rack; a device occupies StartUnit upward.
type RackUnitInterval struct {
	DeviceID  string `json:"id"`
	Label     string `json:"hostname"`
	StartUnit int    `json:"start_unit"`
	Height    int    `json:"height"`
}

// EndUnit returns the highest unit the device occupies.
func (iv RackUnitInterval) EndUnit() int {
	return iv.StartUnit + iv.Height - 1
}

// Overlaps reports whether the device shares at least one unit with the
// span start..start+height-1.
func (iv RackUnitInterval) Overlaps(start, height int) bool {
	if iv.Height <= 0 || height <= 0 {
		return false
	}
	// Compare offsets rather than end units so huge heights cannot wrap.
	if start <= iv.StartUnit {
		return iv.StartUnit-start < height
	}
	return start-iv.StartUnit < iv.Height
}

// RackSnapshot is a point-in-time view of every device mounted in one rack.
// It is built per request and never mutated.
type RackSnapshot struct {
	Rack       string             `json:"rack"`
	TotalUnits int                `json:"total_units"`
	Devices    []RackUnitInterval `json:"devices"`
}

// CandidatePlacement is a proposed mounting position being checked.
type CandidatePlacement struct {
	Rack            string `json:"rack"`
	StartUnit       int    `json:"start_unit"`
	Height          int    `json:"height"`
	ExcludeDeviceID string `json:"exclude_device_id,omitempty"`
}

// EndUnit returns the highest unit the candidate would occupy.
func (c CandidatePlacement) EndUnit() int {
	return c.StartUnit + c.Height - 1
}

// Validate checks the candidate against a rack of totalUnits.
// Out-of-range values are rejected, never clamped.
func (c CandidatePlacement) Validate(totalUnits int) error {
	if c.Height <= 0 {
		return fmt.Errorf("%w: unit height must be at least 1, got %d", ErrInvalidPlacement, c.Height)
	}
	if c.StartUnit <= 0 {
		return fmt.Errorf("%w: position must be at least U1, got %d", ErrInvalidPlacement, c.StartUnit)
	}
	if c.Height > totalUnits {
		return fmt.Errorf("%w: a %dU device cannot fit a %d-unit rack", ErrInvalidPlacement, c.Height, totalUnits)
	}
	if c.StartUnit > totalUnits-c.Height+1 {
		return fmt.Errorf("%w: a %dU device at %s would extend to %s, rack has %d units",
			ErrInvalidPlacement, c.Height, FormatUnit(c.StartUnit), FormatUnit(c.EndUnit()), totalUnits)
	}
	return nil
}

// FreeSpace is a maximal run of unoccupied units. StartUnit is the top of the
// run (where a top-down scan enters it) and EndUnit the bottom.
type FreeSpace struct {
	StartUnit int `json:"startUnit"`
	EndUnit   int `json:"endUnit"`
	Size      int `json:"size"`
}

// Contains reports whether the span start..start+height-1 lies inside the run.
func (fs FreeSpace) Contains(start, height int) bool {
	return height > 0 && start >= fs.EndUnit && start <= fs.StartUnit && height <= fs.StartUnit-start+1
}

func (fs FreeSpace) String() string {
	return fmt.Sprintf("%s-%s", FormatUnit(fs.StartUnit), FormatUnit(fs.EndUnit))
}

// OccupiedUnitSet returns the union of units used by every device except
// excludeDeviceID. An empty excludeDeviceID excludes nothing.
func (s RackSnapshot) OccupiedUnitSet(excludeDeviceID string) map[int]struct{} {
	occupied := make(map[int]struct{})
	for _, d := range s.Devices {
		if excludeDeviceID != "" && d.DeviceID == excludeDeviceID {
			continue
		}
		for u := d.StartUnit; u <= d.EndUnit(); u++ {
			occupied[u] = struct{}{}
		}
	}
	return occupied
}

// ConflictsFor returns every device (other than the candidate's excluded
// device) that shares a unit with the candidate, ordered by StartUnit.
func (s RackSnapshot) ConflictsFor(c CandidatePlacement) []RackUnitInterval {
	conflicts := []RackUnitInterval{}
	for _, d := range s.Devices {
		if c.ExcludeDeviceID != "" && d.DeviceID == c.ExcludeDeviceID {
			continue
		}
		if d.Overlaps(c.StartUnit, c.Height) {
			conflicts = append(conflicts, d)
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].StartUnit < conflicts[j].StartUnit
	})
	return conflicts
}

// FreeSpaces scans from the top unit down to U1 and groups consecutive free
// units into maximal runs, top-of-rack first.
func (s RackSnapshot) FreeSpaces(excludeDeviceID string) []FreeSpace {
	occupied := s.OccupiedUnitSet(excludeDeviceID)
	spaces := []FreeSpace{}

	runStart := 0
	for u := s.TotalUnits; u >= 1; u-- {
		if _, used := occupied[u]; used {
			if runStart != 0 {
				spaces = append(spaces, newFreeSpace(runStart, u+1))
				runStart = 0
			}
			continue
		}
		if runStart == 0 {
			runStart = u
		}
	}
	// A run still open here reaches the bottom of the rack.
	if runStart != 0 {
		spaces = append(spaces, newFreeSpace(runStart, 1))
	}
	return spaces
}

// UsedUnits counts the units inside the rack that are occupied.
func (s RackSnapshot) UsedUnits() int {
	used := 0
	for u := range s.OccupiedUnitSet("") {
		if u >= 1 && u <= s.TotalUnits {
			used++
		}
	}
	return used
}

func newFreeSpace(top, bottom int) FreeSpace {
	return FreeSpace{StartUnit: top, EndUnit: bottom, Size: top - bottom + 1}
}
