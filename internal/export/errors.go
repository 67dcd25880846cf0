package export

import "fmt"

// ExportError represents a failure converting HTML to PDF
type ExportError struct {
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
