// Package observability provides logging setup and formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// sectionCount is one row of the summary table
type sectionCount struct {
	name  string
	count int
}

// PrintResumeSummary outputs a human-readable summary of a decoded resume.
func (p *Printer) PrintResumeSummary(path string, resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	name := "(no name)"
	if resume.Basics.Name != nil {
		name = *resume.Basics.Name
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if resume.Basics.Label != nil {
		sb.WriteString(fmt.Sprintf("Label:    %s\n", *resume.Basics.Label))
	}
	if resume.Basics.Email != nil {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", *resume.Basics.Email))
	}
	sb.WriteString(fmt.Sprintf("Profiles: %d\n", len(resume.Basics.Profiles)))
	sb.WriteString("\n")

	counts := []sectionCount{
		{"Education", len(resume.Education)},
		{"Work", len(resume.Work)},
		{"Publications", len(resume.Publications)},
		{"Projects", len(resume.Projects)},
		{"Skills", len(resume.Skills)},
		{"Awards", len(resume.Awards)},
		{"Certificates", len(resume.Certificates)},
		{"Volunteer", len(resume.Volunteer)},
		{"Interests", len(resume.Interests)},
		{"Languages", len(resume.Languages)},
		{"References", len(resume.References)},
	}
	sb.WriteString("Sections:\n")
	for _, c := range counts {
		if c.count > 0 {
			sb.WriteString(fmt.Sprintf("  • %-13s %d\n", c.name, c.count))
		}
	}

	if first, last, ok := workSpan(resume.Work); ok {
		sb.WriteString(fmt.Sprintf("\nWork history: %04d to %04d\n", first, last))
	}

	p.printBox(fmt.Sprintf("RESUME: %s", path), strings.TrimSuffix(sb.String(), "\n"))
}

// workSpan returns the earliest start year and latest end (or start) year in work
func workSpan(work []types.WorkItem) (first, last int, ok bool) {
	for _, item := range work {
		for _, d := range []*types.PartialDate{item.StartDate, item.EndDate} {
			if d == nil {
				continue
			}
			if !ok || d.Year() < first {
				first = d.Year()
			}
			if !ok || d.Year() > last {
				last = d.Year()
			}
			ok = true
		}
	}
	return first, last, ok
}

// PrintViolations outputs any lint findings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations.Empty() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO LINT FINDINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d findings:\n", len(violations.Violations)))

	count := min(len(violations.Violations), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		v := violations.Violations[i]
		sb.WriteString("\n")
		if v.Field != "" {
			sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Type, v.Field))
		} else {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", v.Type))
		}
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
	}
	if len(violations.Violations) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(violations.Violations)-count))
	}

	p.printBox("LINT FINDINGS", strings.TrimSuffix(sb.String(), "\n"))
}
