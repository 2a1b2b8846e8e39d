// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks a local Indian mobile number: exactly 10 digits,
// no country code. The dispatcher prefixes +91 when sending.
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	regex := `^[6-9]\d{9}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateFrequency reports whether the value is one of the recognized
// recurrence frequencies. Unrecognized values are stored but never fire,
// so the API rejects them up front.
func ValidateFrequency(freq string) bool {
	switch freq {
	case "Daily", "Weekly", "Monthly", "Alternate Days":
		return true
	}
	return false
}
