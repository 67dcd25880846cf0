package ingestion

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// hclFunctions is the function table available to HCL resume documents
var hclFunctions = map[string]function.Function{
	"concat":    stdlib.ConcatFunc,
	"format":    stdlib.FormatFunc,
	"join":      stdlib.JoinFunc,
	"lower":     stdlib.LowerFunc,
	"title":     stdlib.TitleFunc,
	"trimspace": stdlib.TrimSpaceFunc,
	"upper":     stdlib.UpperFunc,
}

// evaluateHCL evaluates every top-level attribute of an HCL document and returns the
// resulting object as JSON. Blocks are not part of the resume vocabulary and are
// reported as diagnostics.
func evaluateHCL(data []byte, filename string) ([]byte, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, hclError(diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, hclError(diags)
	}

	evalCtx := &hcl.EvalContext{Functions: hclFunctions}
	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, hclError(diags)
		}
		values[name] = val
	}

	obj := cty.ObjectVal(values)
	out, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return nil, &EvaluationError{
			Format:  FormatHCL,
			Message: "failed to convert evaluated document to JSON",
			Cause:   err,
		}
	}
	return out, nil
}

func hclError(diags hcl.Diagnostics) error {
	return &EvaluationError{
		Format:  FormatHCL,
		Message: diags.Error(),
		Cause:   diags,
	}
}
