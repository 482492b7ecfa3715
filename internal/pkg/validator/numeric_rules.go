package validator

import "fmt"

// Numeric is the set of types accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CheckRange fails when value is outside the inclusive [minVal, maxVal] interval.
func CheckRange[T Numeric](field string, value, minVal, maxVal T) string {
	if value < minVal || value > maxVal {
		return fmt.Sprintf("%s must be between %v and %v (got %v)", field, minVal, maxVal, value)
	}
	return ""
}

// CheckNonNegative fails when value is below zero.
func CheckNonNegative[T Numeric](field string, value T) string {
	var zero T
	if value < zero {
		return fmt.Sprintf("%s cannot be negative", field)
	}
	return ""
}

// CheckPositiveMax fails when value is not greater than zero, or else when it
// is greater than maxVal. unit is appended to the upper bound in the message.
func CheckPositiveMax[T Numeric](field string, value, maxVal T, unit string) string {
	var zero T
	if value <= zero {
		return fmt.Sprintf("%s must be greater than 0", field)
	}
	if value > maxVal {
		if unit == "" {
			return fmt.Sprintf("%s cannot exceed %v", field, maxVal)
		}
		return fmt.Sprintf("%s cannot exceed %v %s", field, maxVal, unit)
	}
	return ""
}
