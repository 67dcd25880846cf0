// Package pipeline provides the high-level orchestration for loading and rendering resumes.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Pipeline stages, in execution order
const (
	StageLoad   = "load"
	StageDecode = "decode"
	StageRender = "render"
)

// Progress categories
const (
	CategoryIngestion = "ingestion"
	CategoryRendering = "rendering"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	Ingestion  ingestion.Options
	Rendering  rendering.Options
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// LoadAndValidate loads path and decodes it into a Resume. Success means the document
// parsed and every date in it is valid; nothing is rendered.
func LoadAndValidate(ctx context.Context, path string, opts Options) (*types.Resume, error) {
	logger := zerolog.Ctx(ctx)

	emitProgress(&opts, StageLoad, CategoryIngestion, fmt.Sprintf("Loading %s", path), nil)
	format, err := ingestion.FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", StageLoad, err)
	}

	resume, err := ingestion.LoadFile(ctx, path, opts.Ingestion)
	if err != nil {
		stage := StageDecode
		var readErr *ingestion.ReadError
		if errors.As(err, &readErr) {
			stage = StageLoad
		}
		return nil, fmt.Errorf("%s failed: %w", stage, err)
	}

	logger.Info().Str("path", path).Stringer("format", format).Msg("resume decoded")
	emitProgress(&opts, StageDecode, CategoryIngestion, fmt.Sprintf("Decoded %s as %s", path, format), resume)

	return resume, nil
}

// LoadAndRender loads path and renders it as a standalone HTML document
func LoadAndRender(ctx context.Context, path string, opts Options) (string, error) {
	resume, err := LoadAndValidate(ctx, path, opts)
	if err != nil {
		return "", err
	}

	html, err := rendering.RenderHTML(ctx, *resume, opts.Rendering)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", StageRender, err)
	}

	emitProgress(&opts, StageRender, CategoryRendering, fmt.Sprintf("Rendered %d bytes of HTML", len(html)), nil)

	return html, nil
}
