package store

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize trims and NFC-normalizes a user-supplied name so visually
// identical titles are stored byte-identically.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
