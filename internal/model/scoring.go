package model

import "strings"

const (
	visaYes = "yes"
	visaNo  = "no"
)

// VisaToken maps the tri-state visa filter onto the lower-case token stored
// in the dataset.
func VisaToken(free bool) string {
	if free {
		return visaYes
	}
	return visaNo
}

// IsVisaFree reports whether a free-form visa flag is affirmative.
// Anything other than a case-insensitive "yes" is treated as no.
func IsVisaFree(flag string) bool {
	return strings.EqualFold(strings.TrimSpace(flag), visaYes)
}

// VisaMatches reports whether flag equals the requested token, compared
// case-insensitively. Garbled values match neither "yes" nor "no".
func VisaMatches(flag string, free bool) bool {
	return strings.EqualFold(strings.TrimSpace(flag), VisaToken(free))
}

// VisaBoost is the 0/1 scoring input derived from the visa flag.
func VisaBoost(flag string) float64 {
	if IsVisaFree(flag) {
		return 1
	}
	return 0
}
