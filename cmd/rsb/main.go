// Package main provides the entry point for the rsb resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:               "rsb",
	Short:             "Resume builder",
	Long:              "rsb turns a JSON Resume document written in JSON, JSON5, YAML, TOML, HCL or Jsonnet into a standalone HTML page, and optionally a PDF.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	logLevel   string
	logFormat  string

	// cfg is the resolved configuration, set before any command runs
	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", observability.FormatConsole, "Log format: console or json")
}

// setup resolves configuration and attaches the process logger to the command context
func setup(cmd *cobra.Command, _ []string) error {
	resolved, err := config.Resolve(configPath, os.LookupEnv)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		resolved.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		resolved.LogFormat = logFormat
	}

	logger, err := observability.NewLogger(cmd.ErrOrStderr(), resolved.LogLevel, resolved.LogFormat)
	if err != nil {
		return err
	}

	cfg = resolved
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().
		Str("config", configPath).
		Str("log_level", resolved.LogLevel).
		Strs("jsonnet_paths", resolved.JsonnetPaths).
		Msg("configuration resolved")
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
