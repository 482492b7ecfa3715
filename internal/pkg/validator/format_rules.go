package validator

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// EmailMaxLen bounds email addresses.
	EmailMaxLen = 256
	// PhoneMaxLen bounds phone numbers.
	PhoneMaxLen = 20
)

var (
	reEmail = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 \-()]+$`)
)

// CheckEmail validates an optional email address.
//
// A blank value passes. The length rule takes priority over the shape rule.
func CheckEmail(field, value string) string {
	if IsBlank(value) {
		return ""
	}

	if charCount(value) > EmailMaxLen {
		return fmt.Sprintf("%s must not exceed %d characters", field, EmailMaxLen)
	}
	if !reEmail.MatchString(strings.TrimSpace(value)) {
		return fmt.Sprintf("%s must be a valid email address", field)
	}
	return ""
}

// CheckPhone validates an optional phone number made of digits, spaces,
// hyphens and parentheses with an optional leading "+".
func CheckPhone(field, value string) string {
	if IsBlank(value) {
		return ""
	}

	if charCount(value) > PhoneMaxLen {
		return fmt.Sprintf("%s must not exceed %d characters", field, PhoneMaxLen)
	}
	if !rePhone.MatchString(strings.TrimSpace(value)) {
		return fmt.Sprintf("%s may only contain digits, spaces, hyphens, parentheses and a leading +", field)
	}
	return ""
}
