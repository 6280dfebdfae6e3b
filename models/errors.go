// ABOUTME: Sentinel errors for rack-space placement and unit parsing
// ABOUTME: Callers test these with errors.Is after wrapping

package models

import "errors"

var (
	// ErrInvalidPlacement reports a candidate whose bounds fall outside the rack
	// or whose height is not positive. It is a validation error, not a conflict.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvalidUnitFormat reports a rack unit that is not of the form U<n>.
	ErrInvalidUnitFormat = errors.New("invalid unit format")
)
