// ABOUTME: Suggestion policy for alternative rack placements
// ABOUTME: First-fit from the top of the rack over precomputed free spaces

package services

import (
	"fmt"

	"github.com/markalston/assetdex-dcim/models"
)

// SuggestionPolicy picks an alternative start unit when a placement conflicts.
type SuggestionPolicy struct{}

// Candidates returns the free spaces tall enough for requiredHeight, keeping
// the input order (top of rack first).
func (SuggestionPolicy) Candidates(freeSpaces []models.FreeSpace, requiredHeight int) []models.FreeSpace {
	fits := []models.FreeSpace{}
	if requiredHeight <= 0 {
		return fits
	}
	for _, fs := range freeSpaces {
		if fs.Size >= requiredHeight {
			fits = append(fits, fs)
		}
	}
	return fits
}

// Suggest returns a placement in the first free space that fits, mounted flush
// with the top of that space. Returns nil when no space is tall enough.
func (p SuggestionPolicy) Suggest(freeSpaces []models.FreeSpace, requiredHeight int) *models.Suggestion {
	fits := p.Candidates(freeSpaces, requiredHeight)
	if len(fits) == 0 {
		return nil
	}

	space := fits[0]
	start := space.StartUnit - requiredHeight + 1
	return &models.Suggestion{
		StartUnit: start,
		Reason: fmt.Sprintf("Top-most free space %s (%dU) fits a %dU device at %s",
			space, space.Size, requiredHeight, models.FormatUnit(start)),
	}
}
