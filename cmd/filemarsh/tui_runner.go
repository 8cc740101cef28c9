package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/torevar5544/FileMarsh/internal/app"
	"github.com/torevar5544/FileMarsh/internal/config"
	"github.com/torevar5544/FileMarsh/internal/domain"
	apperrors "github.com/torevar5544/FileMarsh/internal/errors"
	"github.com/torevar5544/FileMarsh/internal/tui"
)

// runTUI drives a scan (and, when exporter is non-nil, the follow-up
// export) behind the interactive progress UI. The scan runs on its own
// goroutine and reports back only through messages; the export starts once
// the summary message arrives. A nil summary with a nil error means the
// user quit before the scan finished.
func runTUI(ctx context.Context, cfg *config.Config, scanner *app.Scanner, exporter *app.Exporter, opts app.ExportOptions) (*domain.ScanSummary, domain.ExportOutcome, error) {
	var startExport tui.StartExportFunc
	if exporter != nil {
		startExport = func(summary *domain.ScanSummary) tea.Cmd {
			return func() tea.Msg {
				outcome, err := exporter.Export(ctx, summary, opts)
				if err != nil {
					return tui.ErrorMsg{Err: err}
				}
				return tui.ExportDoneMsg{Outcome: outcome}
			}
		}
	}

	model := tui.NewModel(tui.Config{
		SourceDir:   cfg.SourceDir,
		ExportDir:   cfg.ExportDir,
		Move:        cfg.Move,
		Exporting:   exporter != nil,
		TopLargest:  cfg.TopLargest,
		StartExport: startExport,
	})
	program := tea.NewProgram(model)

	scanner.OnProgress = func(name string, processed, total int) {
		program.Send(tui.ScanProgressMsg{Name: name, Current: processed, Total: total})
	}
	if exporter != nil {
		exporter.OnProgress = func(name string, processed, total int) {
			program.Send(tui.ExportProgressMsg{Name: name, Current: processed, Total: total})
		}
	}

	go func() {
		summary, err := scanner.Scan(ctx, cfg.SourceDir)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.ScanDoneMsg{Summary: summary})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, domain.ExportOutcome{}, apperrors.Wrap(apperrors.Internal, "ui", "", err)
	}

	m := final.(tui.Model)
	if m.Err != nil {
		return nil, domain.ExportOutcome{}, m.Err
	}
	return m.Summary, m.Outcome, nil
}
