package domain

import "sort"

// LargestFilesCap bounds the LargestFiles list of a ScanSummary.
const LargestFilesCap = 50

// ScanError records a file that could not be processed during a scan.
type ScanError struct {
	Path   string
	Reason string
}

// ScanSummary aggregates one completed scan. Every successfully processed
// record lands in exactly one ByCategory bucket and one ByExtension bucket
// (the empty extension is a valid key); TotalFiles counts those records and
// excludes entries in Errors.
type ScanSummary struct {
	RootPath     string
	TotalFiles   int
	TotalSize    int64
	ByCategory   map[Category][]FileRecord
	ByExtension  map[string][]FileRecord
	LargestFiles []FileRecord
	Errors       []ScanError

	records []FileRecord // discovery order, feeds Finalize
}

// NewScanSummary returns an empty summary with every category bucket
// present, so reports and exports see all seven keys even when empty.
func NewScanSummary(rootPath string) *ScanSummary {
	byCategory := make(map[Category][]FileRecord, len(Categories))
	for _, category := range Categories {
		byCategory[category] = nil
	}
	return &ScanSummary{
		RootPath:    rootPath,
		ByCategory:  byCategory,
		ByExtension: make(map[string][]FileRecord),
	}
}

// Add appends a successfully processed record to the summary.
func (s *ScanSummary) Add(record FileRecord) {
	s.records = append(s.records, record)
	s.ByCategory[record.Category] = append(s.ByCategory[record.Category], record)
	s.ByExtension[record.Extension] = append(s.ByExtension[record.Extension], record)
	s.TotalFiles++
	s.TotalSize += record.Size
}

// AddError records a file that failed to process.
func (s *ScanSummary) AddError(path string, err error) {
	s.Errors = append(s.Errors, ScanError{Path: path, Reason: err.Error()})
}

// Finalize computes LargestFiles: all records sorted by size descending,
// truncated to LargestFilesCap. The sort is stable, so ties keep their
// discovery order.
func (s *ScanSummary) Finalize() {
	largest := make([]FileRecord, len(s.records))
	copy(largest, s.records)
	sort.SliceStable(largest, func(i, j int) bool {
		return largest[i].Size > largest[j].Size
	})
	if len(largest) > LargestFilesCap {
		largest = largest[:LargestFilesCap]
	}
	s.LargestFiles = largest
}

// Records returns every successfully processed record in discovery order.
func (s *ScanSummary) Records() []FileRecord {
	return s.records
}

// ExportOutcome counts one export run. Exported plus Skipped always equals
// the number of candidate files.
type ExportOutcome struct {
	Exported int
	Skipped  int
}
