// Package naming derives canonical component names from user input.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	oerrors "github.com/rcgen/rcg/internal/errors"
)

// Separators removed by Normalize, in the order they are applied.
const (
	underscore = "_"
	hyphen     = "-"
)

// Normalize converts a raw folder or typed name into a PascalCase component
// name. Segments separated by underscores are capitalized and joined first,
// then the result is split on hyphens and joined the same way, so
// "user_profile-card" becomes "UserProfileCard".
//
// Only the first rune of each segment is upper-cased; the remainder is kept
// verbatim. Empty segments contribute nothing.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", oerrors.NewInvalidInputError(
			"name must not be empty",
			"Provide a component name such as user_profile or user-profile.",
		)
	}

	name := capitalizeJoin(raw, underscore)
	return capitalizeJoin(name, hyphen), nil
}

// capitalizeJoin splits s on sep and concatenates the segments with their
// first rune upper-cased.
func capitalizeJoin(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, segment := range strings.Split(s, sep) {
		b.WriteString(capitalize(segment))
	}
	return b.String()
}

// capitalize returns s with its first rune upper-cased. A leading byte that
// is not valid UTF-8 is kept as is.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
