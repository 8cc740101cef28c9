package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/torevar5544/FileMarsh/internal/domain"
	apperrors "github.com/torevar5544/FileMarsh/internal/errors"
	"github.com/torevar5544/FileMarsh/internal/logging"
)

// Scanner walks a directory tree and aggregates a ScanSummary.
type Scanner struct {
	FS         FileSystem
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// Scan enumerates every regular file under root, classifies each and
// returns the aggregated summary. The enumeration happens in a first pass
// so progress totals are exact from the first processed file. Per-file
// failures land in the summary's error list; only a missing or non-directory
// root aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.ScanSummary, error) {
	if s.FS == nil {
		return nil, errors.New("scanner requires FS")
	}

	stop := s.Logger.Measure("Scanning directory")
	defer stop()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.InvalidInput, "scan", root, err)
	}
	info, err := s.FS.Stat(absRoot)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.InvalidInput, "scan", absRoot, err)
	}
	if !info.IsDir() {
		return nil, apperrors.Wrap(apperrors.InvalidInput, "scan", absRoot, errors.New("not a directory"))
	}

	summary := domain.NewScanSummary(absRoot)

	var paths []string
	err = s.FS.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			summary.AddError(path, walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.IOFailure, "scan", absRoot, err)
	}

	total := len(paths)
	s.Logger.Verbosef("Found %d files under %s", total, absRoot)

	for i, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fileInfo, statErr := s.FS.Stat(path)
		if statErr != nil {
			summary.AddError(path, statErr)
			s.Logger.Warnf("skipping %s: %v", path, statErr)
		} else {
			summary.Add(domain.NewFileRecord(path, fileInfo.Size()))
		}

		if s.OnProgress != nil {
			s.OnProgress(filepath.Base(path), i+1, total)
		}
	}

	summary.Finalize()
	s.Logger.Verbosef("Scan complete: %d files, %s, %d errors",
		summary.TotalFiles, domain.FormatSize(summary.TotalSize), len(summary.Errors))
	return summary, nil
}
