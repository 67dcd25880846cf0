// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolations_Add(t *testing.T) {
	var v Violations
	assert.True(t, v.Empty())

	v.Add(ViolationInvalidField, "basics.email", "must be a valid email address")
	require.Len(t, v.Violations, 1)
	assert.False(t, v.Empty())
	assert.Equal(t, ViolationInvalidField, v.Violations[0].Type)
	assert.Equal(t, SeverityWarning, v.Violations[0].Severity)
	assert.Equal(t, "basics.email", v.Violations[0].Field)
}

func TestViolations_NilIsEmpty(t *testing.T) {
	var v *Violations
	assert.True(t, v.Empty())
}

func TestViolation_JSONOmitsEmptyField(t *testing.T) {
	violation := Violation{
		Type:     ViolationSchema,
		Severity: SeverityWarning,
		Details:  "(root): Invalid type",
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "schema"`)
	assert.Contains(t, string(jsonBytes), `"severity": "warning"`)
	assert.NotContains(t, string(jsonBytes), `"field"`)
}
