package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// defaultHelpPath is where generate-markdown-help writes when no path is given
const defaultHelpPath = "docs/cli_help.md"

var markdownHelpCmd = &cobra.Command{
	Use:    "generate-markdown-help [PATH]",
	Short:  "Write the CLI reference as Markdown",
	Hidden: true,
	Args:   cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultHelpPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := writeMarkdownHelp(rootCmd, path); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(markdownHelpCmd)
}

// writeMarkdownHelp renders root and every visible subcommand into a single file
func writeMarkdownHelp(root *cobra.Command, path string) error {
	root.DisableAutoGenTag = true

	var buf bytes.Buffer
	if err := genMarkdown(root, &buf); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create help directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write markdown help: %w", err)
	}
	return nil
}

func genMarkdown(cmd *cobra.Command, buf *bytes.Buffer) error {
	cmd.DisableAutoGenTag = true
	if err := doc.GenMarkdown(cmd, buf); err != nil {
		return fmt.Errorf("failed to generate help for %s: %w", cmd.CommandPath(), err)
	}
	for _, child := range cmd.Commands() {
		if !child.IsAvailableCommand() || child.IsAdditionalHelpTopicCommand() {
			continue
		}
		buf.WriteString("\n")
		if err := genMarkdown(child, buf); err != nil {
			return err
		}
	}
	return nil
}
