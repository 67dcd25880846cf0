// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// partialDatePattern is the only accepted textual form: YYYY, YYYY-MM or YYYY-MM-DD.
var partialDatePattern = regexp.MustCompile(`^[0-9]{4}(-[0-9]{2})?(-[0-9]{2})?$`)

// Precision describes which components of a PartialDate are present.
type Precision int

const (
	// PrecisionYear is a year-only date, e.g. 2014
	PrecisionYear Precision = iota + 1
	// PrecisionYearMonth is a year and month, e.g. 2014-06
	PrecisionYearMonth
	// PrecisionFull is a full calendar date, e.g. 2014-06-29
	PrecisionFull
)

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionYearMonth:
		return "year-month"
	case PrecisionFull:
		return "full"
	default:
		return "unknown"
	}
}

// PartialDate is a calendar date where everything after the year is optional.
// Values are only produced by ParsePartialDate and are immutable afterwards.
type PartialDate struct {
	precision Precision
	year      int
	month     int
	day       int
}

// ParsePartialDate parses text of the form YYYY, YYYY-MM or YYYY-MM-DD.
// A month must be in 1-12 and a full date must exist on the proleptic Gregorian calendar.
func ParsePartialDate(text string) (PartialDate, error) {
	if !partialDatePattern.MatchString(text) {
		return PartialDate{}, &GrammarMismatchError{Text: text}
	}

	// The pattern guarantees 1-3 all-digit parts, so Atoi cannot fail.
	parts := strings.Split(text, "-")
	nums := make([]int, len(parts))
	for i, part := range parts {
		nums[i], _ = strconv.Atoi(part)
	}

	switch len(nums) {
	case 1:
		return PartialDate{precision: PrecisionYear, year: nums[0]}, nil
	case 2:
		if nums[1] < 1 || nums[1] > 12 {
			return PartialDate{}, &InvalidCalendarDateError{Text: text, Year: nums[0], Month: nums[1]}
		}
		return PartialDate{precision: PrecisionYearMonth, year: nums[0], month: nums[1]}, nil
	default:
		year, month, day := nums[0], nums[1], nums[2]
		if !isCalendarDate(year, month, day) {
			return PartialDate{}, &InvalidCalendarDateError{Text: text, Year: year, Month: month, Day: day}
		}
		return PartialDate{precision: PrecisionFull, year: year, month: month, day: day}, nil
	}
}

// MustParsePartialDate is like ParsePartialDate but panics on error.
// It is intended for tests and package-level fixtures.
func MustParsePartialDate(text string) PartialDate {
	d, err := ParsePartialDate(text)
	if err != nil {
		panic(err)
	}
	return d
}

// isCalendarDate reports whether year-month-day survives time.Date normalization unchanged
func isCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Precision returns which components are present.
func (d PartialDate) Precision() Precision { return d.precision }

// Year returns the year component, which is always present.
func (d PartialDate) Year() int { return d.year }

// Month returns the month component and whether it is present.
func (d PartialDate) Month() (int, bool) {
	return d.month, d.precision >= PrecisionYearMonth
}

// Day returns the day component and whether it is present.
func (d PartialDate) Day() (int, bool) {
	return d.day, d.precision == PrecisionFull
}

// IsZero reports whether d was never parsed.
func (d PartialDate) IsZero() bool { return d.precision == 0 }

// Equal reports whether both dates have the same precision and components.
func (d PartialDate) Equal(other PartialDate) bool { return d == other }

// Compare orders two dates using only the components both of them carry.
// "2020" and "2020-05" compare equal; "2020-04" sorts before "2020-05-01".
func (d PartialDate) Compare(other PartialDate) int {
	shared := min(d.precision, other.precision)
	pairs := [][2]int{{d.year, other.year}}
	if shared >= PrecisionYearMonth {
		pairs = append(pairs, [2]int{d.month, other.month})
	}
	if shared == PrecisionFull {
		pairs = append(pairs, [2]int{d.day, other.day})
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// String renders the date in the same grammar it was parsed from, with month and day
// zero-padded to two digits so that ParsePartialDate(d.String()) == d.
func (d PartialDate) String() string {
	switch d.precision {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.year)
	case PrecisionYearMonth:
		return fmt.Sprintf("%04d-%02d", d.year, d.month)
	case PrecisionFull:
		return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
	default:
		return ""
	}
}

// MarshalJSON encodes the date as a JSON string.
func (d PartialDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts only a JSON string; numbers and other kinds are rejected.
func (d *PartialDate) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParsePartialDate(text)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date as a YAML string scalar.
func (d PartialDate) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML parses the raw scalar text, so an unquoted 2024 is read as a year.
func (d *PartialDate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", node.Line)
	}
	parsed, err := ParsePartialDate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}
