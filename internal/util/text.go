package util

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeWhitespace trims and collapses whitespace to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// OrNone renders an optional value for display, using "None" when unset.
func OrNone[T any](v *T, format func(T) string) string {
	if v == nil {
		return "None"
	}
	return format(*v)
}
