package ingestion

import (
	"github.com/google/go-jsonnet"
)

// Evaluator bounds
const (
	JsonnetMaxStack = 200
	JsonnetMaxTrace = 20
)

// evaluateJsonnet runs the jsonnet program at path and returns its JSON output.
// Relative imports resolve against the directory of path; jpaths adds library search
// directories.
func evaluateJsonnet(path string, jpaths []string) (string, error) {
	vm := jsonnet.MakeVM()
	vm.MaxStack = JsonnetMaxStack
	vm.ErrorFormatter.SetMaxStackTraceSize(JsonnetMaxTrace)
	vm.Importer(&jsonnet.FileImporter{JPaths: jpaths})

	out, err := vm.EvaluateFile(path)
	if err != nil {
		return "", &EvaluationError{
			Format:  FormatJsonnet,
			Message: err.Error(),
			Cause:   err,
		}
	}
	return out, nil
}
