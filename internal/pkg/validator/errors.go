package validator

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Errors maps a field path to the messages reported for it.
//
// Messages under one key keep the order in which they were added.
type Errors map[string][]string

// NewErrors returns an empty accumulator.
func NewErrors() Errors {
	return make(Errors)
}

// Add appends msg under field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Collect appends msg under field when msg is not empty.
//
// It is the glue between rules, which return "" on success, and the accumulator.
func (e Errors) Collect(field, msg string) {
	if msg == "" {
		return
	}
	e.Add(field, msg)
}

// Merge appends every message of other into e.
func (e Errors) Merge(other Errors) {
	for _, field := range other.Fields() {
		e[field] = append(e[field], other[field]...)
	}
}

// Has reports whether any message exists for field.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Get returns the messages recorded for field.
func (e Errors) Get(field string) []string {
	return e[field]
}

// First returns the first message recorded for field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the field paths that have messages, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field, msgs := range e {
		if len(msgs) > 0 {
			fields = append(fields, field)
		}
	}
	slices.Sort(fields)
	return fields
}

// Count returns the total number of messages.
func (e Errors) Count() int {
	n := 0
	for _, msgs := range e {
		n += len(msgs)
	}
	return n
}

// IsEmpty reports whether no message was recorded.
func (e Errors) IsEmpty() bool {
	return e.Count() == 0
}

// Values returns the underlying map.
func (e Errors) Values() map[string][]string {
	return e
}

// Error implements the error interface.
func (e Errors) Error() string {
	if e.IsEmpty() {
		return "validation error"
	}

	b, err := json.Marshal(map[string][]string(e))
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}
