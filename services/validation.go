// ABOUTME: Input validation functions for API parameters
// ABOUTME: Checks rack names and hostnames before they reach storage or logs

package services

import (
	"fmt"
	"regexp"
	"strings"
)

// rackNamePattern matches rack identifiers such as "R01", "dc1-row4-rack12".
var rackNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// hostnamePattern matches RFC 1123 hostnames (labels joined by dots).
var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

// MaxRackUnits bounds the capacity accepted for a new rack.
const MaxRackUnits = 100

// SanitizeForLog removes control characters from strings to prevent log
// injection when including user input in logs or error messages.
func SanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// ValidateRackName validates that a rack name has a safe format.
func ValidateRackName(name string) error {
	if name == "" {
		return fmt.Errorf("rack name cannot be empty")
	}
	if !rackNamePattern.MatchString(name) {
		return fmt.Errorf("invalid rack name format: %s", SanitizeForLog(name))
	}
	return nil
}

// ValidateHostname validates that a hostname is well formed.
func ValidateHostname(hostname string) error {
	if hostname == "" {
		return fmt.Errorf("hostname cannot be empty")
	}
	if len(hostname) > 253 || !hostnamePattern.MatchString(hostname) {
		return fmt.Errorf("invalid hostname format: %s", SanitizeForLog(hostname))
	}
	return nil
}

// ValidateUnitHeight validates an explicit device height. No device can be
// taller than the largest rack.
func ValidateUnitHeight(height int) error {
	if height < 1 || height > MaxRackUnits {
		return fmt.Errorf("unit height must be between 1 and %d, got %d", MaxRackUnits, height)
	}
	return nil
}

// ValidateRackUnits validates the capacity of a rack.
func ValidateRackUnits(units int) error {
	if units < 1 || units > MaxRackUnits {
		return fmt.Errorf("total units must be between 1 and %d, got %d", MaxRackUnits, units)
	}
	return nil
}
