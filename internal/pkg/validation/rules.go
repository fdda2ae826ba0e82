package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Turkish mobile phone: 05XXXXXXXXX, optionally with +90/90 prefix
	PhonePattern = `^(\+?90)?0?5\d{9}$`

	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone *regexp.Regexp
	Email *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidPhone reports whether the value looks like a Turkish mobile
// number. Spaces and dashes are stripped before matching.
func IsValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return CompiledPatterns.Phone.MatchString(cleaned)
}

// IsValidEmail reports whether the value looks like an email address.
// Matching is case-insensitive.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsBlank reports whether the value is empty after trimming whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidName reports whether the value is a plausible person/school name
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	length := len([]rune(trimmed))
	return length >= NameMinLength && length <= NameMaxLength
}
