package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/torevar5544/FileMarsh/internal/app"
	"github.com/torevar5544/FileMarsh/internal/config"
	apperrors "github.com/torevar5544/FileMarsh/internal/errors"
	"github.com/torevar5544/FileMarsh/internal/infra/fs"
	"github.com/torevar5544/FileMarsh/internal/logging"
	"github.com/torevar5544/FileMarsh/internal/presentation"
)

func newExportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [directory]",
		Short: "Scan a directory and export its files into a category tree",
		Long: `Scan a directory, then copy (or move) every scanned file into
<destination>/<category>/... The source-relative directory layout is
mirrored inside each category unless --flat is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.SourceDir = args[0]
			}
			cfg.ApplyEnv()
			if err := cfg.Validate(true); err != nil {
				return apperrors.Wrap(apperrors.InvalidConfig, "export", "", err)
			}
			return runExport(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.ExportDir, "to", "t", "", "export destination directory")
	cmd.Flags().BoolVar(&cfg.Move, "move", false, "move files instead of copying them")
	cmd.Flags().BoolVar(&cfg.Flat, "flat", false, "flatten files into the category buckets")
	cmd.Flags().StringSliceVarP(&cfg.Extensions, "ext", "e", nil, "only export files with these extensions")
	addReportFlags(cmd, cfg)
	return cmd
}

func runExport(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.Verbose)
	if useTUI(cfg) {
		// The UI owns the terminal while it runs.
		logger = logging.Logger{}
	}
	filesystem := fs.OSFS{}
	scanner := &app.Scanner{FS: filesystem, Logger: logger}
	exporter := &app.Exporter{FS: filesystem, Logger: logger}
	opts := app.ExportOptions{
		ExportRoot:        cfg.ExportDir,
		Move:              cfg.Move,
		PreserveStructure: !cfg.Flat,
		Extensions:        cfg.NormalizedExtensions(),
	}

	if useTUI(cfg) {
		summary, _, err := runTUI(ctx, cfg, scanner, exporter, opts)
		if err != nil {
			return err
		}
		if summary == nil {
			// The user quit the TUI before the scan finished.
			return nil
		}
		return writeReport(cfg, summary, logger)
	}

	summary, err := scanner.Scan(ctx, cfg.SourceDir)
	if err != nil {
		return err
	}
	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}
	printer.PrintSummary(summary, cfg.TopLargest)

	outcome, err := exporter.Export(ctx, summary, opts)
	if err != nil {
		return err
	}
	printer.PrintExport(outcome, cfg.Move, cfg.ExportDir)

	return writeReport(cfg, summary, logger)
}
