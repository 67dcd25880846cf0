package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:     "generate PATH",
	Aliases: []string{"gen"},
	Short:   "Render a resume to HTML",
	Long:    "Loads a resume document, renders it as a standalone HTML page and writes it to stdout or --out. With --pdf the page is also printed to PDF through headless Chrome.",
	Args:    cobra.ExactArgs(1),
	RunE:    runGenerate,
}

var (
	generateOutput string
	generatePDF    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output HTML file (default stdout)")
	generateCmd.Flags().StringVar(&generatePDF, "pdf", "", "Also write a PDF to this path (requires Chrome/Chromium)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	path := args[0]

	html, err := pipeline.LoadAndRender(ctx, path, pipeline.Options{
		Ingestion: ingestion.Options{JsonnetPaths: cfg.JsonnetPaths},
		OnProgress: func(event pipeline.ProgressEvent) {
			logger.Debug().Str("step", event.Step).Str("category", event.Category).Msg(event.Message)
		},
	})
	if err != nil {
		return err
	}

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		logger.Info().Str("path", generateOutput).Msg("HTML written")
	} else {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), html); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
	}

	if generatePDF == "" {
		return nil
	}

	pdf, err := export.PrintPDF(ctx, html, export.Options{Timeout: cfg.PDFTimeout})
	if err != nil {
		return err
	}
	if err := os.WriteFile(generatePDF, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	logger.Info().Str("path", generatePDF).Int("bytes", len(pdf)).Msg("PDF written")

	return nil
}
