// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation types reported by the lint pass
const (
	ViolationInvalidField = "invalid_field"
	ViolationDateOrder    = "date_order"
	ViolationMarkup       = "markup"
	ViolationSchema       = "schema"
)

// SeverityWarning is the only severity the lint pass emits; findings never block decoding.
const SeverityWarning = "warning"

// Violation represents a single lint finding against a decoded resume
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Field    string `json:"field,omitempty"` // dotted path using input key names, e.g. basics.email
}

// Violations represents a collection of lint findings
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Add appends a warning-level finding
func (v *Violations) Add(kind, field, details string) {
	v.Violations = append(v.Violations, Violation{
		Type:     kind,
		Severity: SeverityWarning,
		Details:  details,
		Field:    field,
	})
}

// Empty reports whether there are no findings
func (v *Violations) Empty() bool {
	return v == nil || len(v.Violations) == 0
}
