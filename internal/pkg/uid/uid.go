// Package uid generates identifiers: snowflake numbers for persisted
// entities and UUIDs for correlation and message keys.
package uid

// NumberID generates sortable 64-bit identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates opaque string identifiers.
type StringID interface {
	Generate() string
}
