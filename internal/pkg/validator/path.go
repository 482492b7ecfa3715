package validator

import (
	"strconv"
	"strings"
)

// Path joins field path segments with ".", skipping empty segments.
//
//	Path("CurrentLocation", "Lat") == "CurrentLocation.Lat"
//	Path("", "Name") == "Name"
func Path(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// Index renders a positional path segment, e.g. Index("Menu", 2) == "Menu[2]".
func Index(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
