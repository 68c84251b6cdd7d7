// Package sanitize provides normalization for operator-entered values.
package sanitize

import (
	"strings"
	"unicode"
)

// Identifier normalizes a single-token lookup value such as a user ID,
// identity ID or email. Control characters are removed and surrounding
// whitespace trimmed; everything else, markup and entities included, is kept
// verbatim because it is part of the key.
func Identifier(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}
