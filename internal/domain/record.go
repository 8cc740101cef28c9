package domain

import (
	"path/filepath"
	"strings"
)

// FileRecord describes a single scanned file. Records are created once
// during a scan and never mutated afterwards; Size is a snapshot taken at
// scan time.
type FileRecord struct {
	Path      string
	Name      string
	Size      int64
	Category  Category
	MIMEType  string
	Extension string
}

// NewFileRecord builds the record for a file of the given size. The
// category is derived from the path once, here, and stays fixed for the
// lifetime of the record.
func NewFileRecord(path string, size int64) FileRecord {
	mimeType := GuessMIMEType(path)
	if mimeType == "" {
		mimeType = "unknown"
	}
	return FileRecord{
		Path:      path,
		Name:      filepath.Base(path),
		Size:      size,
		Category:  Classify(path),
		MIMEType:  mimeType,
		Extension: strings.ToLower(filepath.Ext(path)),
	}
}
