package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/torevar5544/FileMarsh/internal/app"
	"github.com/torevar5544/FileMarsh/internal/config"
	"github.com/torevar5544/FileMarsh/internal/domain"
	apperrors "github.com/torevar5544/FileMarsh/internal/errors"
	"github.com/torevar5544/FileMarsh/internal/infra/fs"
	"github.com/torevar5544/FileMarsh/internal/logging"
	"github.com/torevar5544/FileMarsh/internal/presentation"
	"github.com/torevar5544/FileMarsh/internal/report"
)

func newScanCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory and show file statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.SourceDir = args[0]
			}
			cfg.ApplyEnv()
			if err := cfg.Validate(false); err != nil {
				return apperrors.Wrap(apperrors.InvalidConfig, "scan", "", err)
			}
			return runScan(cmd.Context(), cfg)
		},
	}

	addReportFlags(cmd, cfg)
	return cmd
}

func addReportFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVar(&cfg.ReportPath, "report", "", "write a statistics report to this file")
	cmd.Flags().StringVar(&cfg.ReportFormat, "format", "", "report format: csv or json (default inferred from the file name)")
	cmd.Flags().StringSliceVar(&cfg.Sections, "sections", nil, "report sections: overview,types,extensions,largest (default all)")
	cmd.Flags().IntVar(&cfg.TopLargest, "top", 10, "number of largest files to display")
}

func runScan(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.Verbose)
	if useTUI(cfg) {
		// The UI owns the terminal while it runs.
		logger = logging.Logger{}
	}
	scanner := &app.Scanner{FS: fs.OSFS{}, Logger: logger}

	var summary *domain.ScanSummary
	var err error
	if useTUI(cfg) {
		summary, _, err = runTUI(ctx, cfg, scanner, nil, app.ExportOptions{})
		if err != nil {
			return err
		}
	} else {
		summary, err = scanner.Scan(ctx, cfg.SourceDir)
		if err != nil {
			return err
		}
		printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}
		printer.PrintSummary(summary, cfg.TopLargest)
	}

	if summary == nil {
		// The user quit the TUI before the scan finished.
		return nil
	}
	return writeReport(cfg, summary, logger)
}

// writeReport serializes the requested statistics sections when --report is
// given. The format falls back to the file extension, then to CSV.
func writeReport(cfg *config.Config, summary *domain.ScanSummary, logger logging.Logger) error {
	if cfg.ReportPath == "" {
		return nil
	}

	sections, err := report.ParseSections(cfg.Sections)
	if err != nil {
		return apperrors.Wrap(apperrors.InvalidConfig, "report", cfg.ReportPath, err)
	}

	format := cfg.ReportFormat
	if format == "" {
		if strings.EqualFold(filepath.Ext(cfg.ReportPath), ".json") {
			format = "json"
		} else {
			format = "csv"
		}
	}

	file, err := os.Create(cfg.ReportPath)
	if err != nil {
		return apperrors.Wrap(apperrors.IOFailure, "report", cfg.ReportPath, err)
	}
	defer file.Close()

	derived := report.Build(summary, sections)
	if format == "json" {
		err = derived.WriteJSON(file)
	} else {
		err = derived.WriteCSV(file)
	}
	if err != nil {
		return apperrors.Wrap(apperrors.IOFailure, "report", cfg.ReportPath, err)
	}

	logger.Infof("Report written to %s", cfg.ReportPath)
	return nil
}
