// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeRunes removes duplicate runes from a slice. Order is preserved.
//
// Example:
//
//	DedupeRunes([]rune("aabbc"))
//	// Returns: []rune("abc")
func DedupeRunes(values []rune) []rune {
	if len(values) == 0 {
		return values
	}

	seen := make(map[rune]struct{}, len(values))
	result := make([]rune, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}

// Truncate shortens a string to at most max runes, appending "..." when
// anything was cut. Used for message previews of offending field values.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// GroupThousands inserts comma separators into the integer part of a plain
// decimal string ("1234567.89" -> "1,234,567.89"). Signs and missing
// fraction parts are handled; anything non-numeric is returned unchanged.
func GroupThousands(s string) string {
	sign := ""
	rest := s
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		sign, rest = rest[:1], rest[1:]
	}
	intPart := rest
	frac := ""
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		intPart, frac = rest[:dot], rest[dot:]
	}
	if intPart == "" {
		return s
	}
	for i := 0; i < len(intPart); i++ {
		if intPart[i] < '0' || intPart[i] > '9' {
			return s
		}
	}

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return sign + string(out) + frac
}
