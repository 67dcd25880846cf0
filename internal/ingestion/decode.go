package ingestion

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/flynn/json5"
	jsonv2 "github.com/go-json-experiment/json"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/types"
)

// decode dispatches plain (non-evaluated) text to the matching decoder
func decode(data []byte, format Format) (*types.Resume, error) {
	switch format {
	case FormatJSON5:
		return decodeJSON5(data, format)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, &UnknownFormatError{Extension: string(format)}
	}
}

// decodeJSON5 parses JSON5 (a superset of JSON) into a generic tree, then re-encodes it as
// strict JSON for the typed decode. origin is the format reported on failure, which differs
// from json5 when the text came out of an evaluator.
func decodeJSON5(data []byte, origin Format) (*types.Resume, error) {
	var tree any
	if err := json5.Unmarshal(data, &tree); err != nil {
		return nil, &DecodeError{Format: origin, Cause: err}
	}

	canonical, err := json.Marshal(tree)
	if err != nil {
		return nil, &DecodeError{Format: origin, Cause: fmt.Errorf("failed to re-encode document: %w", err)}
	}

	return decodeJSON(canonical, origin)
}

// decodeJSON is the shared typed decode. Keys match case-sensitively, as in YAML, and
// unknown keys are ignored.
func decodeJSON(data []byte, origin Format) (*types.Resume, error) {
	var resume types.Resume
	if err := jsonv2.Unmarshal(data, &resume); err != nil {
		return nil, &DecodeError{Format: origin, Cause: err}
	}
	return &resume, nil
}

func decodeYAML(data []byte) (*types.Resume, error) {
	var resume types.Resume
	if err := yaml.Unmarshal(data, &resume); err != nil {
		return nil, &DecodeError{Format: FormatYAML, Cause: err}
	}
	return &resume, nil
}

// decodeTOML decodes into a generic table and bridges it through JSON so dates and
// unknown-key handling follow the same rules as every other format
func decodeTOML(data []byte) (*types.Resume, error) {
	var tree map[string]any
	if _, err := toml.Decode(string(data), &tree); err != nil {
		return nil, &DecodeError{Format: FormatTOML, Cause: err}
	}

	canonical, err := json.Marshal(normalizeTOML(tree))
	if err != nil {
		return nil, &DecodeError{Format: FormatTOML, Cause: fmt.Errorf("failed to re-encode document: %w", err)}
	}

	return decodeJSON(canonical, FormatTOML)
}

// tomlLocalDate is the zone BurntSushi/toml assigns to local dates such as 2020-06-01
const tomlLocalDate = "date-local"

// normalizeTOML rewrites TOML date values into the strings the resume model expects.
// A local date becomes YYYY-MM-DD. Every datetime, midnight included, keeps RFC 3339
// and is rejected later by the date grammar.
func normalizeTOML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = normalizeTOML(elem)
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normalizeTOML(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normalizeTOML(elem)
		}
		return out
	case time.Time:
		if v.Location().String() == tomlLocalDate {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	default:
		return v
	}
}
