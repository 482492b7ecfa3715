package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// NameMinLen is the minimum number of characters in a name.
	NameMinLen = 2
	// PersonNameMaxLen bounds rider and other person names.
	PersonNameMaxLen = 100
	// RestaurantNameMaxLen bounds restaurant names.
	RestaurantNameMaxLen = 200
)

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// charCount counts characters of the trimmed value.
func charCount(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// CheckRequired fails when value is blank.
func CheckRequired(field, value string) string {
	if IsBlank(value) {
		return fmt.Sprintf("%s is required", field)
	}
	return ""
}

// CheckName validates a required name of NameMinLen to maxLen characters.
//
// Rules are tried in order required, too short, too long and only the first
// failure is reported.
func CheckName(field, value string, maxLen int) string {
	if msg := CheckRequired(field, value); msg != "" {
		return msg
	}

	n := charCount(value)
	if n < NameMinLen {
		return fmt.Sprintf("%s must be at least %d characters", field, NameMinLen)
	}
	if n > maxLen {
		return fmt.Sprintf("%s must not exceed %d characters", field, maxLen)
	}
	return ""
}

// CheckLength fails when value is longer than maxLen characters.
//
// A blank value fails only when required is set; it never reaches the length
// rule.
func CheckLength(field, value string, maxLen int, required bool) string {
	if IsBlank(value) {
		if required {
			return CheckRequired(field, value)
		}
		return ""
	}

	if charCount(value) > maxLen {
		return fmt.Sprintf("%s must not exceed %d characters", field, maxLen)
	}
	return ""
}
