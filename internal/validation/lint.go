package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	rootschemas "github.com/jonathan/resume-builder/schemas"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// tagDateOrder is the validator tag reported for an end date before its start date
const tagDateOrder = "date_order"

// Options configures a lint run
type Options struct {
	// SchemaPath overrides the embedded resume schema
	SchemaPath string
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their input key names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(dateOrderRule(func(w types.WorkItem) (*types.PartialDate, *types.PartialDate) {
		return w.StartDate, w.EndDate
	}), types.WorkItem{})
	v.RegisterStructValidation(dateOrderRule(func(w types.VolunteerItem) (*types.PartialDate, *types.PartialDate) {
		return w.StartDate, w.EndDate
	}), types.VolunteerItem{})
	v.RegisterStructValidation(dateOrderRule(func(e types.EducationItem) (*types.PartialDate, *types.PartialDate) {
		return e.StartDate, e.EndDate
	}), types.EducationItem{})
	v.RegisterStructValidation(dateOrderRule(func(p types.ProjectsItem) (*types.PartialDate, *types.PartialDate) {
		return p.StartDate, p.EndDate
	}), types.ProjectsItem{})

	return v
}

// dateOrderRule reports endDate when it falls before startDate. Dates of different
// precision compare on their shared components, so 2020 and 2020-06 are not out of order.
func dateOrderRule[T any](dates func(T) (start, end *types.PartialDate)) validator.StructLevelFunc {
	return func(sl validator.StructLevel) {
		item, ok := sl.Current().Interface().(T)
		if !ok {
			return
		}
		start, end := dates(item)
		if start != nil && end != nil && end.Compare(*start) < 0 {
			sl.ReportError(end, "endDate", "EndDate", tagDateOrder, start.String())
		}
	}
}

// Lint runs every advisory check against resume. Findings never mean the document is
// unusable; the returned error is reserved for failures of the lint itself, such as an
// unreadable schema.
func Lint(resume *types.Resume, opts Options) (*types.Violations, error) {
	violations := &types.Violations{}

	if err := lintFields(resume, violations); err != nil {
		return nil, err
	}
	lintMarkup(resume, violations)
	if err := lintSchema(resume, opts.SchemaPath, violations); err != nil {
		return nil, err
	}

	return violations, nil
}

func lintFields(resume *types.Resume, violations *types.Violations) error {
	err := structValidator.Struct(resume)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &Error{Message: "struct validation failed", Cause: err}
	}

	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if fe.Tag() == tagDateOrder {
			violations.Add(types.ViolationDateOrder, field,
				fmt.Sprintf("%s %v is before startDate %s", field, fe.Value(), fe.Param()))
			continue
		}
		violations.Add(types.ViolationInvalidField, field, describeTag(field, fe.Tag()))
	}
	return nil
}

// fieldPath drops the root type name from a validator namespace ("Resume.basics.email")
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeTag(field, tag string) string {
	switch tag {
	case "email":
		return fmt.Sprintf("%s is not a valid email address", field)
	case "url":
		return fmt.Sprintf("%s is not an absolute URL", field)
	case "iso3166_1_alpha2":
		return fmt.Sprintf("%s is not an ISO-3166-1 alpha-2 country code", field)
	default:
		return fmt.Sprintf("%s failed the %s check", field, tag)
	}
}

func lintSchema(resume *types.Resume, schemaPath string, violations *types.Violations) error {
	document, err := json.Marshal(resume)
	if err != nil {
		return &Error{Message: "failed to encode resume for schema check", Cause: err}
	}

	if schemaPath != "" {
		err = schemas.ValidateDocumentFile(schemaPath, document)
	} else {
		err = schemas.ValidateDocument(rootschemas.ResumeSchema, document)
	}
	if err == nil {
		return nil
	}

	var schemaErr *schemas.ValidationError
	if !errors.As(err, &schemaErr) {
		return &Error{Message: "schema check failed", Cause: err}
	}
	for _, fe := range schemaErr.Errors {
		violations.Add(types.ViolationSchema, fe.Field, fe.Message)
	}
	return nil
}
