package utils

import "regexp"

// User identifiers are either an email address or an E.164 phone number
// (leading + optional). The two patterns are mutually exclusive; email is
// tried first.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// IsValidID reports whether id is an acceptable user identifier.
func IsValidID(id string) bool {
	return emailPattern.MatchString(id) || phonePattern.MatchString(id)
}
