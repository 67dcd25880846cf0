package ingestion

import "fmt"

// ReadError represents a failure reading the input file (not found, permission, etc.)
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error: failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// UnknownFormatError represents an input whose extension maps to no decoder
type UnknownFormatError struct {
	Extension string
}

func (e *UnknownFormatError) Error() string {
	if e.Extension == "" {
		return "unknown format: could not determine file extension"
	}
	return fmt.Sprintf("unknown format: unrecognized file extension %q", e.Extension)
}

// DecodeError represents a structural mismatch between the input and the resume model,
// including date scalars that fail validation
type DecodeError struct {
	Format Format
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Format, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// EvaluationError represents a failure inside a data-templating evaluator
// (jsonnet or HCL); Message carries the evaluator's own output
type EvaluationError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error: %s: %s", e.Format, e.Message)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// BufferUnsupportedError is returned when a format that resolves imports against the
// filesystem is handed an in-memory buffer
type BufferUnsupportedError struct {
	Format Format
}

func (e *BufferUnsupportedError) Error() string {
	return fmt.Sprintf("%s can not be decoded from a buffer; load it from a file path", e.Format)
}
