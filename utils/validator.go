// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// MissingFields returns the labels whose values are blank, in the order
// given. Form submissions with any required field empty are rejected
// before they reach a store.
func MissingFields(fields map[string]string, order []string) []string {
	missing := []string{}
	for _, label := range order {
		if strings.TrimSpace(fields[label]) == "" {
			missing = append(missing, label)
		}
	}
	return missing
}
