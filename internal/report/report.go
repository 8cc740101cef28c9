// Package report derives displayable statistics from a scan summary and
// serializes them as CSV blocks or a JSON object.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/torevar5544/FileMarsh/internal/domain"
)

// ExtensionRowCap bounds the extension table in serialized reports. The
// underlying ByExtension map is unbounded; this is a presentation limit.
const ExtensionRowCap = 100

// Sections selects which statistic blocks a report contains.
type Sections struct {
	Overview   bool
	Types      bool
	Extensions bool
	Largest    bool
}

// AllSections selects everything.
func AllSections() Sections {
	return Sections{Overview: true, Types: true, Extensions: true, Largest: true}
}

// ParseSections turns CLI section names into a Sections value. "all" or an
// empty list selects everything.
func ParseSections(names []string) (Sections, error) {
	if len(names) == 0 {
		return AllSections(), nil
	}
	var s Sections
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "all":
			return AllSections(), nil
		case "overview":
			s.Overview = true
		case "types", "file_types":
			s.Types = true
		case "extensions":
			s.Extensions = true
		case "largest", "largest_files":
			s.Largest = true
		case "":
		default:
			return Sections{}, fmt.Errorf("unknown report section %q", name)
		}
	}
	return s, nil
}

// Overview holds the headline numbers of a scan.
type Overview struct {
	TotalFiles int
	TotalSize  int64
	RootPath   string
	ErrorCount int
}

// BucketRow is one line of the per-category or per-extension tables.
type BucketRow struct {
	Key        string
	Count      int
	TotalSize  int64
	Percentage float64
}

// Report is the derived, presentation-ready view of a ScanSummary.
type Report struct {
	Sections   Sections
	Overview   Overview
	Types      []BucketRow
	Extensions []BucketRow
	Largest    []domain.FileRecord
}

// Build derives the requested sections from the summary. Category rows
// keep the fixed category order with empty categories omitted; extension
// rows are sorted by count descending and capped at ExtensionRowCap.
func Build(summary *domain.ScanSummary, sections Sections) *Report {
	r := &Report{
		Sections: sections,
		Overview: Overview{
			TotalFiles: summary.TotalFiles,
			TotalSize:  summary.TotalSize,
			RootPath:   summary.RootPath,
			ErrorCount: len(summary.Errors),
		},
	}

	if sections.Types {
		for _, category := range domain.Categories {
			records := summary.ByCategory[category]
			if len(records) == 0 {
				continue
			}
			r.Types = append(r.Types, bucketRow(string(category), records, summary.TotalFiles))
		}
	}

	if sections.Extensions {
		exts := make([]string, 0, len(summary.ByExtension))
		for ext := range summary.ByExtension {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		for _, ext := range exts {
			r.Extensions = append(r.Extensions, bucketRow(ext, summary.ByExtension[ext], summary.TotalFiles))
		}
		sort.SliceStable(r.Extensions, func(i, j int) bool {
			return r.Extensions[i].Count > r.Extensions[j].Count
		})
		if len(r.Extensions) > ExtensionRowCap {
			r.Extensions = r.Extensions[:ExtensionRowCap]
		}
	}

	if sections.Largest {
		r.Largest = summary.LargestFiles
	}

	return r
}

func bucketRow(key string, records []domain.FileRecord, totalFiles int) BucketRow {
	var size int64
	for _, record := range records {
		size += record.Size
	}
	percentage := 0.0
	if totalFiles > 0 {
		percentage = float64(len(records)) / float64(totalFiles) * 100
	}
	return BucketRow{
		Key:        key,
		Count:      len(records),
		TotalSize:  size,
		Percentage: math.Round(percentage*10) / 10,
	}
}
