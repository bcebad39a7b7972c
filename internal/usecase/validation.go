package usecase

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLength = 6
	maxNameLength     = 100
)

// ValidateEmail checks address shape without resolving the domain.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateName checks a catalog name is non-blank and within the length bound.
func ValidateName(name string) bool {
	return strings.TrimSpace(name) != "" && len(name) <= maxNameLength
}
