// Package tag contains the pure business logic for category tags.
package tag

import (
	"fmt"
	"strings"
)

// MaxNameLength bounds tag names so the colour hash stays well defined.
const MaxNameLength = 45

// ColorFor derives a stable six-digit hex colour from a tag name.
// Only the low 24 bits of the hash are used, so wrapping arithmetic gives the
// same result as an arbitrarily wide accumulator.
func ColorFor(name string) string {
	var hash uint64
	for _, r := range name {
		hash = uint64(r) + ((hash << 3) - hash)
	}

	var b strings.Builder
	for i := 0; i < 3; i++ {
		value := (hash >> (i * 8)) & 0xff
		hex := fmt.Sprintf("%X", value)
		if len(hex) < 2 {
			hex += "0"
		}
		b.WriteString(hex)
	}
	return b.String()
}

// ValidColor reports whether c is six hex digits.
func ValidColor(c string) bool {
	if len(c) != 6 {
		return false
	}
	for _, r := range c {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
