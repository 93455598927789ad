package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Admission number pattern: 3-6 letters followed by 1-6 digits
	AdmissionNoPattern = `^[A-Z]{3,6}\d{1,6}$`

	// Kenyan-style phone: optional +, 7-15 digits
	PhonePattern = `^\+?\d{7,15}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email       *regexp.Regexp
	AdmissionNo *regexp.Regexp
	Phone       *regexp.Regexp
}{
	Email:       regexp.MustCompile(EmailPattern),
	AdmissionNo: regexp.MustCompile(AdmissionNoPattern),
	Phone:       regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether s looks like a usable email address.
// Blank and whitespace-only values are invalid rather than errors; the
// recipient resolver silently drops them.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidAdmissionNo reports whether s is a well-formed admission number.
func IsValidAdmissionNo(s string) bool {
	return CompiledPatterns.AdmissionNo.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}
