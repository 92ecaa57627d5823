package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidEmail reports whether the value looks like an email address.
func ValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(value)))
}

// ValidName reports whether the value is a usable person name component.
func ValidName(value string) bool {
	value = strings.TrimSpace(value)
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}

// ValidCourseCode reports whether the value is an uppercase alphanumeric code.
func ValidCourseCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	if code != strings.ToUpper(code) {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')) {
			return false
		}
	}
	return true
}
