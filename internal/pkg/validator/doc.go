// Package validator provides the rule engine used to check entity submissions
// before they are persisted.
//
// Checks never fail fast. Every rule reports at most one message and the
// caller collects it into an Errors accumulator keyed by field path, so a
// single pass produces the complete report for a submission. An empty Errors
// value means the input is valid.
//
// Rules are grouped by family (string_rules.go, format_rules.go,
// numeric_rules.go, geo_rules.go). Each rule is a pure function returning the
// failure message or "" when the value passes; rules hold no state and are
// safe for concurrent use.
//
// TagChecker adapts go-playground/validator v10 tags for the few rules that
// already exist in its registry (for example ISO 3166 country codes), with
// English messages provided by universal-translator.
package validator
