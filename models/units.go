// ABOUTME: Conversion between wire-format rack units ("U25") and integers
// ABOUTME: Malformed units fail with ErrInvalidUnitFormat at the API boundary

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseUnit converts a unit string such as "U25" to 25.
// The prefix is case-insensitive and surrounding whitespace is ignored.
func ParseUnit(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 || (trimmed[0] != 'U' && trimmed[0] != 'u') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnitFormat, s)
	}

	digits := trimmed[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidUnitFormat, s)
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnitFormat, s)
	}
	return n, nil
}

// FormatUnit renders n as "U<n>".
func FormatUnit(n int) string {
	return "U" + strconv.Itoa(n)
}

// UnitPosition is a rack unit on the wire. It decodes from either a bare
// integer (25) or a unit string ("U25") and always encodes as an integer.
type UnitPosition int

// UnmarshalJSON implements json.Unmarshaler.
func (p *UnitPosition) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUnitFormat, data)
		}
		n, err := ParseUnit(s)
		if err != nil {
			return err
		}
		*p = UnitPosition(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUnitFormat, data)
	}
	*p = UnitPosition(n)
	return nil
}
