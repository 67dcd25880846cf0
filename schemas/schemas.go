// Package schemas embeds the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// ResumeSchema is the JSON Resume schema used by the lint pass. It permits additional
// properties everywhere, matching the decoder's tolerance for unknown keys.
//
//go:embed resume.schema.json
var ResumeSchema []byte
