package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// maxConcurrentValidations bounds how many documents are decoded at once
const maxConcurrentValidations = 4

var validateCmd = &cobra.Command{
	Use:     "validate PATH...",
	Aliases: []string{"check"},
	Short:   "Check that resume documents load and decode",
	Long:    "Loads and decodes each document without rendering it. With --lint, advisory findings (bad emails or urls, end dates before start dates, embedded markup, schema mismatches) are printed; --strict turns any finding into a failure.",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runValidate,
}

var (
	validateLint    bool
	validateStrict  bool
	validateSchema  string
	validateVerbose bool
)

func init() {
	validateCmd.Flags().BoolVar(&validateLint, "lint", false, "Report advisory lint findings")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail on any lint finding (implies --lint)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "JSON Schema file used by the lint instead of the embedded one")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a summary of each document")

	rootCmd.AddCommand(validateCmd)
}

// validateOptions controls a validation run
type validateOptions struct {
	Ingestion ingestion.Options
	Lint      bool
	Strict    bool
	Schema    string
	Verbose   bool
}

// documentResult is the outcome for a single path
type documentResult struct {
	path       string
	resume     *types.Resume
	violations *types.Violations
	err        error
}

func (r documentResult) failed(strict bool) bool {
	return r.err != nil || (strict && !r.violations.Empty())
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := validateOptions{
		Ingestion: ingestion.Options{JsonnetPaths: cfg.JsonnetPaths},
		Lint:      validateLint || validateStrict || cfg.Strict,
		Strict:    validateStrict || cfg.Strict,
		Schema:    cfg.Schema,
		Verbose:   validateVerbose,
	}
	if validateSchema != "" {
		opts.Schema = validateSchema
	}

	failed := validateDocuments(cmd.Context(), args, opts, cmd.OutOrStdout())
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}

// validateDocuments checks every path concurrently and reports the results in argument
// order. It returns the number of documents that failed.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func validateDocuments(ctx context.Context, paths []string, opts validateOptions, out io.Writer) int {
	results := make([]documentResult, len(paths))

	var g errgroup.Group
	g.SetLimit(maxConcurrentValidations)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = validateDocument(ctx, path, opts)
			return nil
		})
	}
	_ = g.Wait()

	printer := observability.NewPrinter(out)
	failed := 0
	for _, result := range results {
		if result.failed(opts.Strict) {
			failed++
		}
		if result.err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", result.path, result.err)
			continue
		}

		fmt.Fprintf(out, "✓ %s\n", result.path)
		if opts.Verbose {
			printer.PrintResumeSummary(result.path, result.resume)
		}
		if opts.Lint {
			printer.PrintViolations(result.violations)
		}
	}

	return failed
}

func validateDocument(ctx context.Context, path string, opts validateOptions) documentResult {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()
	result := documentResult{path: path}

	resume, err := pipeline.LoadAndValidate(logger.WithContext(ctx), path, pipeline.Options{Ingestion: opts.Ingestion})
	if err != nil {
		result.err = err
		return result
	}
	result.resume = resume

	if !opts.Lint {
		return result
	}

	violations, err := validation.Lint(resume, validation.Options{SchemaPath: opts.Schema})
	if err != nil {
		result.err = fmt.Errorf("lint failed: %w", err)
		return result
	}
	result.violations = violations
	logger.Debug().Int("findings", len(violations.Violations)).Msg("lint complete")

	return result
}
