// Package anchor derives heading anchors for intra-document link checks.
package anchor

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slug converts heading text into its anchor form. It NFD-normalizes,
// strips combining marks, lowercases, converts whitespace to dashes,
// strips characters other than letters, digits, dashes, and underscores,
// and collapses consecutive dashes.
func Slug(s string) string {
	// NFD normalize to decompose characters.
	s = norm.NFD.String(s)

	// Strip combining (Mn) marks and lowercase.
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	s = b.String()

	// Replace whitespace with dashes.
	b.Reset()
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Strip everything except letters, digits, dashes, and underscores.
	b.Reset()
	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Collapse consecutive dashes.
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	// Trim leading and trailing dashes.
	s = strings.Trim(s, "-")

	return s
}
