package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"commit-impact/internal/config"
	"commit-impact/internal/domain"
)

var kindOrder = []domain.ImpactKind{domain.ImpactAdded, domain.ImpactRemoved, domain.ImpactModified}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// FormatMachine renders one "kind<TAB>file<TAB>test" line per record
func FormatMachine(records []domain.ImpactRecord) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s", r.Kind, r.FilePath, r.TestName))
	}
	return strings.Join(lines, "\n")
}

// FormatHuman renders a reviewer summary grouped by kind
func FormatHuman(records []domain.ImpactRecord) string {
	return formatHuman(records, func(_ domain.ImpactKind, s string) string { return s })
}

func formatHuman(records []domain.ImpactRecord, paint func(domain.ImpactKind, string) string) string {
	var lines []string
	for _, kind := range kindOrder {
		var group []domain.ImpactRecord
		for _, r := range records {
			if r.Kind == kind {
				group = append(group, r)
			}
		}
		if len(group) == 0 {
			continue
		}
		lines = append(lines, paint(kind, fmt.Sprintf("%d test(s) %s:", len(group), kind)))
		for _, r := range group {
			lines = append(lines, fmt.Sprintf("  - \"%s\" in %s", r.TestName, r.FilePath))
		}
	}
	if len(lines) == 0 {
		return "No impacted tests."
	}
	return strings.Join(lines, "\n")
}

func paintKind(kind domain.ImpactKind, s string) string {
	switch kind {
	case domain.ImpactAdded:
		return color.GreenString(s)
	case domain.ImpactRemoved:
		return color.RedString(s)
	default:
		return color.YellowString(s)
	}
}

// PrintReport writes the report's records in the requested format
func (f *Formatter) PrintReport(report *domain.ImpactReport, format string) error {
	switch format {
	case config.FormatMachine:
		_, err := fmt.Fprintln(f.out, FormatMachine(report.Records))
		return err
	case config.FormatJSON:
		enc := json.NewEncoder(f.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		_, err := fmt.Fprintln(f.out, formatHuman(report.Records, paintKind))
		return err
	}
}

// PrintTestList prints test files as a tree, optionally with their test cases.
func (f *Formatter) PrintTestList(files []domain.TestFile, showTestCases bool) {
	fmt.Fprintln(f.out, color.GreenString("Found %d test file(s):", len(files)))
	fmt.Fprintln(f.out)

	for i, file := range files {
		isLastFile := i == len(files)-1
		if isLastFile {
			fmt.Fprintln(f.out, color.CyanString("└── %s", file.Path))
		} else {
			fmt.Fprintln(f.out, color.CyanString("├── %s", file.Path))
		}

		if !showTestCases {
			continue
		}

		branch := "│   "
		if isLastFile {
			branch = "    "
		}

		if len(file.Tests) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", branch, color.RedString("(no test cases found)"))
			continue
		}

		for j, test := range file.Tests {
			connector := "├── "
			if j == len(file.Tests)-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", branch, connector, color.YellowString(test.Name))
		}
	}
}
