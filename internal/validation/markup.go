package validation

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jonathan/resume-builder/internal/types"
)

var strictPolicy = bluemonday.StrictPolicy()

// lintMarkup flags text fields that carry HTML. The renderer escapes them, so the
// markup shows up literally in the output.
func lintMarkup(resume *types.Resume, violations *types.Violations) {
	walkStrings(reflect.ValueOf(*resume), "", func(path, value string) {
		if hasMarkup(value) {
			violations.Add(types.ViolationMarkup, path,
				fmt.Sprintf("%s contains HTML markup, which will be rendered as literal text", path))
		}
	})
}

func hasMarkup(value string) bool {
	return html.UnescapeString(strictPolicy.Sanitize(value)) != value
}

// walkStrings calls fn for every string value reachable from v, with a dotted path
// built from json key names
func walkStrings(v reflect.Value, path string, fn func(path, value string)) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			walkStrings(v.Elem(), path, fn)
		}
	case reflect.String:
		fn(path, v.String())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			walkStrings(v.Index(i), fmt.Sprintf("%s[%d]", path, i), fn)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				continue
			}
			child := name
			if path != "" {
				child = path + "." + name
			}
			walkStrings(v.Field(i), child, fn)
		}
	}
}
