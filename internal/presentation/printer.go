package presentation

import (
	"fmt"
	"io"

	"github.com/torevar5544/FileMarsh/internal/domain"
	"github.com/torevar5544/FileMarsh/internal/report"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// PrintSummary renders a scan summary as plain text. top bounds the number
// of largest-file rows; zero hides the section.
func (p Printer) PrintSummary(summary *domain.ScanSummary, top int) {
	fmt.Fprintf(p.Writer, "Scanned %s\n", summary.RootPath)
	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Total files: %d\n", summary.TotalFiles)
	fmt.Fprintf(p.Writer, "Total size:  %s\n", domain.FormatSize(summary.TotalSize))
	if len(summary.Errors) > 0 {
		fmt.Fprintf(p.Writer, "Errors:      %d\n", len(summary.Errors))
	}

	derived := report.Build(summary, report.AllSections())

	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "By category:")
	for _, row := range derived.Types {
		fmt.Fprintf(p.Writer, "  %-12s %6d files  %10s  %5.1f%%\n",
			domain.Category(row.Key).Title(), row.Count, domain.FormatSize(row.TotalSize), row.Percentage)
	}
	if len(derived.Types) == 0 {
		fmt.Fprintln(p.Writer, "  (no files)")
	}

	if top > 0 && len(derived.Largest) > 0 {
		if top > len(derived.Largest) {
			top = len(derived.Largest)
		}
		fmt.Fprintln(p.Writer)
		fmt.Fprintf(p.Writer, "Largest files (top %d):\n", top)
		for _, record := range derived.Largest[:top] {
			fmt.Fprintf(p.Writer, "  %10s  %s\n", domain.FormatSize(record.Size), record.Path)
		}
	}

	if p.Verbose && len(summary.Errors) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "Errors:")
		for _, scanErr := range summary.Errors {
			fmt.Fprintf(p.Writer, "  %s: %s\n", scanErr.Path, scanErr.Reason)
		}
	}
}

// PrintExport renders the outcome of an export run. A non-zero skip count
// is surfaced prominently; completion alone is not proof of full success.
func (p Printer) PrintExport(outcome domain.ExportOutcome, moved bool, exportRoot string) {
	verb := "Copied"
	if moved {
		verb = "Moved"
	}
	fmt.Fprintf(p.Writer, "%s %d files to %s.\n", verb, outcome.Exported, exportRoot)
	if outcome.Skipped > 0 {
		fmt.Fprintf(p.Writer, "Skipped %d files due to errors.\n", outcome.Skipped)
	}
}
