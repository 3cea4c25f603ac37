package utils

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the given string looks like an email address
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
