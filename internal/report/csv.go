package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/torevar5544/FileMarsh/internal/domain"
)

// WriteCSV serializes the report as a sequence of labeled blocks, each a
// header row followed by data rows and a trailing blank line.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if r.Sections.Overview {
		cw.Write([]string{"Overview Statistics"})
		cw.Write([]string{"Metric", "Value"})
		cw.Write([]string{"Total Files", strconv.Itoa(r.Overview.TotalFiles)})
		cw.Write([]string{"Total Size", domain.FormatSize(r.Overview.TotalSize)})
		cw.Write([]string{"Root Path", r.Overview.RootPath})
		cw.Write([]string{"Errors", strconv.Itoa(r.Overview.ErrorCount)})
		cw.Write([]string{})
	}

	if r.Sections.Types {
		cw.Write([]string{"File Types"})
		cw.Write([]string{"Type", "Count", "Total Size", "Percentage"})
		for _, row := range r.Types {
			cw.Write([]string{
				domain.Category(row.Key).Title(),
				strconv.Itoa(row.Count),
				domain.FormatSize(row.TotalSize),
				fmt.Sprintf("%.1f%%", row.Percentage),
			})
		}
		cw.Write([]string{})
	}

	if r.Sections.Extensions {
		cw.Write([]string{"File Extensions"})
		cw.Write([]string{"Extension", "Count", "Total Size", "Percentage"})
		for _, row := range r.Extensions {
			key := row.Key
			if key == "" {
				key = "No Extension"
			}
			cw.Write([]string{
				key,
				strconv.Itoa(row.Count),
				domain.FormatSize(row.TotalSize),
				fmt.Sprintf("%.1f%%", row.Percentage),
			})
		}
		cw.Write([]string{})
	}

	if r.Sections.Largest {
		cw.Write([]string{"Largest Files"})
		cw.Write([]string{"Name", "Size", "Type", "Extension", "Path"})
		for _, record := range r.Largest {
			cw.Write([]string{
				record.Name,
				domain.FormatSize(record.Size),
				record.Category.Title(),
				record.Extension,
				record.Path,
			})
		}
		cw.Write([]string{})
	}

	cw.Flush()
	return cw.Error()
}
