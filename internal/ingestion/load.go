package ingestion

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/types"
)

// Options tunes how documents are loaded
type Options struct {
	// JsonnetPaths are extra library search directories for jsonnet imports
	JsonnetPaths []string
}

// LoadFile reads path and decodes it into a Resume using the format implied by its
// extension. The format is resolved before the file is touched, so an unrecognized
// extension fails with UnknownFormatError even when the file does not exist.
func LoadFile(ctx context.Context, path string, opts Options) (*types.Resume, error) {
	logger := zerolog.Ctx(ctx)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Stringer("format", format).Msg("resolved input format")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}

	return load(ctx, content, format, path, opts)
}

// LoadBuffer decodes an in-memory document. Jsonnet is rejected because its imports
// resolve against the filesystem.
func LoadBuffer(ctx context.Context, data []byte, format Format, opts Options) (*types.Resume, error) {
	if format == FormatJsonnet {
		return nil, &BufferUnsupportedError{Format: format}
	}
	resolved, err := FormatFromExtension(string(format))
	if err != nil {
		return nil, err
	}
	return load(ctx, data, resolved, "buffer."+string(resolved), opts)
}

func load(ctx context.Context, content []byte, format Format, name string, opts Options) (*types.Resume, error) {
	logger := zerolog.Ctx(ctx)

	if !format.Evaluated() {
		return decode(content, format)
	}

	var evaluated []byte
	switch format {
	case FormatJsonnet:
		out, err := evaluateJsonnet(name, opts.JsonnetPaths)
		if err != nil {
			logger.Error().Err(err).Str("path", name).Msg("jsonnet evaluation failed")
			return nil, err
		}
		evaluated = []byte(out)
	case FormatHCL:
		out, err := evaluateHCL(content, name)
		if err != nil {
			logger.Error().Err(err).Str("path", name).Msg("hcl evaluation failed")
			return nil, err
		}
		evaluated = out
	}
	logger.Debug().Str("path", name).Stringer("format", format).RawJSON("output", evaluated).Msg("evaluated document")

	return decodeJSON5(evaluated, format)
}
