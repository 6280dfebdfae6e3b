// ABOUTME: Availability evaluator for proposed rack placements
// ABOUTME: Combines bounds validation, conflict detection and suggestions

package services

import (
	"fmt"

	"github.com/markalston/assetdex-dcim/models"
)

// AvailabilityEvaluator answers "can this device go here?" for one rack
// snapshot. It performs no I/O and holds no state, so a single instance is
// safe for concurrent use.
//
// The verdict is only as fresh as the snapshot. Writers must re-run Evaluate
// against a snapshot read inside their write transaction before committing.
type AvailabilityEvaluator struct {
	policy SuggestionPolicy
}

// NewAvailabilityEvaluator creates a new availability evaluator
func NewAvailabilityEvaluator() *AvailabilityEvaluator {
	return &AvailabilityEvaluator{}
}

// Evaluate checks candidate against snapshot. Invalid bounds return
// models.ErrInvalidPlacement and no result.
func (e *AvailabilityEvaluator) Evaluate(snapshot models.RackSnapshot, candidate models.CandidatePlacement) (models.AvailabilityResult, error) {
	totalUnits := snapshot.TotalUnits
	if totalUnits <= 0 {
		totalUnits = models.DefaultRackUnits
		snapshot.TotalUnits = totalUnits
	}

	if err := candidate.Validate(totalUnits); err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("rack %s: %w", snapshot.Rack, err)
	}

	conflicts := snapshot.ConflictsFor(candidate)
	result := models.AvailabilityResult{
		Available:  len(conflicts) == 0,
		Conflicts:  conflicts,
		FreeSpaces: snapshot.FreeSpaces(candidate.ExcludeDeviceID),
	}

	if !result.Available {
		result.Suggestion = e.policy.Suggest(result.FreeSpaces, candidate.Height)
	}

	return result, nil
}
