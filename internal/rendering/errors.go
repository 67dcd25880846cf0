// Package rendering turns a canonical resume into a standalone HTML document.
package rendering

import "fmt"

// TemplateError is returned when the document cannot be produced: the template failed
// to execute or a section has no view builder.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
