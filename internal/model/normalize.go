package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName trims surrounding whitespace and NFC-normalizes a display
// name. Snapshots round-trip byte-for-byte only if the same name always
// serializes to the same bytes, so normalization happens once, on input.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
