// Package ingestion loads resume documents from disk or memory and normalizes every
// supported input format into the canonical types.Resume model.
package ingestion

import (
	"path/filepath"
	"strings"
)

// Format identifies the decoder used for an input
type Format string

// Supported input formats
const (
	FormatJSON5   Format = "json5"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatJsonnet Format = "jsonnet"
	FormatHCL     Format = "hcl"
)

// extensionFormats maps file extensions (case-sensitive, without the dot) to formats.
// There is no RON decoder, so .ron is reported as an unknown format.
var extensionFormats = map[string]Format{
	"json":    FormatJSON5,
	"json5":   FormatJSON5,
	"yaml":    FormatYAML,
	"yml":     FormatYAML,
	"toml":    FormatTOML,
	"jsonnet": FormatJsonnet,
	"hcl":     FormatHCL,
}

// FormatFromExtension resolves an extension such as "yml" (a leading dot is tolerated)
func FormatFromExtension(ext string) (Format, error) {
	ext = strings.TrimPrefix(ext, ".")
	format, ok := extensionFormats[ext]
	if !ok {
		return "", &UnknownFormatError{Extension: ext}
	}
	return format, nil
}

// FormatFromPath resolves the format from the final extension of path
func FormatFromPath(path string) (Format, error) {
	return FormatFromExtension(filepath.Ext(path))
}

// SupportedExtensions lists every recognized extension in a stable order
func SupportedExtensions() []string {
	return []string{"json", "json5", "yaml", "yml", "toml", "jsonnet", "hcl"}
}

// Evaluated reports whether the format is a data-templating language that is run through
// an evaluator to produce JSON before decoding
func (f Format) Evaluated() bool {
	return f == FormatJsonnet || f == FormatHCL
}

func (f Format) String() string {
	return string(f)
}
