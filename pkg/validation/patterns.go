package validation

import (
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateEmail reports whether the string looks like an email address
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone reports whether the string is exactly ten digits
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
