// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// GrammarMismatchError is returned when a date string does not match YYYY(-MM)?(-DD)?
type GrammarMismatchError struct {
	Text string
}

func (e *GrammarMismatchError) Error() string {
	return fmt.Sprintf("not a valid date %q: date must match one of these formats - YYYY, YYYY-MM, YYYY-MM-DD", e.Text)
}

// InvalidCalendarDateError is returned when a date string matches the grammar but names
// a month or day that does not exist. Day is zero for year-month input.
type InvalidCalendarDateError struct {
	Text  string
	Year  int
	Month int
	Day   int
}

func (e *InvalidCalendarDateError) Error() string {
	component := "day"
	if e.Month < 1 || e.Month > 12 {
		component = "month"
	}
	return fmt.Sprintf("invalid calendar date %q: %s out of range", e.Text, component)
}
