// Package names provides the identifier-casing helpers shared by option
// normalization and named-asset lookup. The same logical asset may be
// authored as kebab-case, camelCase, or PascalCase depending on context, so
// lookups tolerate all three.
package names

import (
	"strings"
	"unicode"
)

// Camelize converts a kebab-case identifier to camelCase.
// Identifiers without hyphens are returned unchanged.
func Camelize(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	upper := false
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalize upper-cases the first rune of an identifier.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Hyphenate converts a camelCase identifier to kebab-case. It is the inverse
// of Camelize for identifiers that round-trip.
func Hyphenate(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Variants returns the lookup candidates for an identifier: the identifier
// itself, its camelCase form, and its PascalCase form, without duplicates and
// in that order.
func Variants(id string) []string {
	out := []string{id}
	camel := Camelize(id)
	if camel != id {
		out = append(out, camel)
	}
	pascal := Capitalize(camel)
	if pascal != id && pascal != camel {
		out = append(out, pascal)
	}
	return out
}
