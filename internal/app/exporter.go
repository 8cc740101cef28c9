package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/torevar5544/FileMarsh/internal/domain"
	apperrors "github.com/torevar5544/FileMarsh/internal/errors"
	"github.com/torevar5544/FileMarsh/internal/logging"
)

// ExportOptions configures one export run.
type ExportOptions struct {
	ExportRoot        string
	Move              bool
	PreserveStructure bool
	// Extensions filters the candidates; empty means every scanned file.
	// Entries are matched case-insensitively against record extensions.
	Extensions []string
}

// Exporter copies or moves scanned files into a category tree under the
// export root.
type Exporter struct {
	FS         FileSystem
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// Export validates the destination, creates the seven category buckets and
// then processes every candidate in turn. A candidate that fails to copy or
// move only bumps the skip count; the batch always runs to the end unless
// the context is cancelled.
func (e *Exporter) Export(ctx context.Context, summary *domain.ScanSummary, opts ExportOptions) (domain.ExportOutcome, error) {
	var outcome domain.ExportOutcome
	if e.FS == nil {
		return outcome, errors.New("exporter requires FS")
	}

	stop := e.Logger.Measure("Exporting files")
	defer stop()

	exportRoot, err := e.prepareExportRoot(opts.ExportRoot, summary.RootPath)
	if err != nil {
		return outcome, err
	}

	candidates := e.collectCandidates(summary, opts.Extensions)
	total := len(candidates)
	e.Logger.Verbosef("Exporting %d files to %s", total, exportRoot)

	for i, record := range candidates {
		select {
		case <-ctx.Done():
			return outcome, ctx.Err()
		default:
		}

		dest := e.resolveDestination(record, exportRoot, opts.PreserveStructure, summary.RootPath)

		var opErr error
		if opts.Move {
			opErr = e.FS.MoveFile(record.Path, dest)
		} else {
			opErr = e.FS.CopyFile(record.Path, dest)
		}
		if opErr != nil {
			outcome.Skipped++
			e.Logger.Warnf("skipping %s: %v", record.Path, opErr)
		} else {
			outcome.Exported++
		}

		if e.OnProgress != nil {
			e.OnProgress(record.Name, i+1, total)
		}
	}

	e.Logger.Verbosef("Export complete: %d exported, %d skipped", outcome.Exported, outcome.Skipped)
	return outcome, nil
}

// prepareExportRoot makes sure the destination is usable before any file is
// touched: it must be creatable, writable and outside the scan root. The
// seven category buckets are created up front, whether or not files land in
// them.
func (e *Exporter) prepareExportRoot(exportRoot, scanRoot string) (string, error) {
	absRoot, err := filepath.Abs(exportRoot)
	if err != nil {
		return "", apperrors.Wrap(apperrors.InvalidDestination, "export", exportRoot, err)
	}
	if isWithin(scanRoot, absRoot) {
		return "", apperrors.Wrap(apperrors.InvalidDestination, "export", absRoot,
			errors.New("export destination is inside the scan directory"))
	}
	if err := e.FS.MkdirAll(absRoot, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.InvalidDestination, "export", absRoot, err)
	}
	if err := e.FS.IsWritable(absRoot); err != nil {
		return "", apperrors.Wrap(apperrors.InvalidDestination, "export", absRoot, err)
	}
	for _, category := range domain.Categories {
		if err := e.FS.MkdirAll(filepath.Join(absRoot, string(category)), 0o755); err != nil {
			return "", apperrors.Wrap(apperrors.InvalidDestination, "export", absRoot, err)
		}
	}
	return absRoot, nil
}

// collectCandidates gathers records bucket by bucket in category order,
// optionally narrowed down to the given extensions.
func (e *Exporter) collectCandidates(summary *domain.ScanSummary, extensions []string) []domain.FileRecord {
	var filter map[string]bool
	if len(extensions) > 0 {
		filter = make(map[string]bool, len(extensions))
		for _, ext := range extensions {
			filter[strings.ToLower(ext)] = true
		}
	}

	var candidates []domain.FileRecord
	for _, category := range domain.Categories {
		for _, record := range summary.ByCategory[category] {
			if filter != nil && !filter[record.Extension] {
				continue
			}
			candidates = append(candidates, record)
		}
	}
	return candidates
}

// resolveDestination computes a collision-free target path for one record.
// With structure preservation the record's directory relative to the scan
// root is mirrored inside the category bucket; a record that turns out not
// to live under the scan root falls back to the bucket itself. An occupied
// destination gets an _1, _2, ... suffix before the extension.
func (e *Exporter) resolveDestination(record domain.FileRecord, exportRoot string, preserveStructure bool, scanRoot string) string {
	destDir := filepath.Join(exportRoot, string(record.Category))

	if preserveStructure {
		rel, err := filepath.Rel(scanRoot, filepath.Dir(record.Path))
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			destDir = filepath.Join(destDir, rel)
		}
	}

	dest := filepath.Join(destDir, record.Name)
	if exists, _ := e.FS.Exists(dest); !exists {
		return dest
	}

	ext := filepath.Ext(record.Name)
	stem := strings.TrimSuffix(record.Name, ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if exists, _ := e.FS.Exists(candidate); !exists {
			return candidate
		}
	}
}

// isWithin reports whether path is inside (or equal to) root.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
