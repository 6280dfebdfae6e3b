// ABOUTME: Errors returned by the inventory store
// ABOUTME: Sentinels for lookups and reads, ConflictError for rejected placements

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markalston/assetdex-dcim/models"
)

var (
	ErrRackNotFound   = errors.New("rack not found")
	ErrServerNotFound = errors.New("server not found")
	ErrDuplicate      = errors.New("already exists")

	// ErrSnapshotUnavailable wraps any failure to read a rack's occupancy.
	// Callers must not derive an availability verdict when they see it.
	ErrSnapshotUnavailable = errors.New("rack occupancy snapshot unavailable")

	errFailedToOpen    = errors.New("failed to open database")
	errFailedToInit    = errors.New("failed to initialize schema")
	errFailedToBeginTx = errors.New("failed to begin transaction")
)

// ConflictError is returned when a write-time re-check finds the requested
// units occupied. Result holds the fresh verdict, including a suggestion.
type ConflictError struct {
	Rack   string
	Result models.AvailabilityResult
}

func (e *ConflictError) Error() string {
	labels := make([]string, 0, len(e.Result.Conflicts))
	for _, c := range e.Result.Conflicts {
		labels = append(labels, fmt.Sprintf("%s@%s", c.Label, models.FormatUnit(c.StartUnit)))
	}
	return fmt.Sprintf("placement in rack %s conflicts with %s", e.Rack, strings.Join(labels, ", "))
}
