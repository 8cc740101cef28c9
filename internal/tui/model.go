package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/torevar5544/FileMarsh/internal/domain"
	"github.com/torevar5544/FileMarsh/internal/report"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI.
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseExporting
	PhaseDone
	PhaseError
)

// Messages delivered by the scan and export goroutines.
type (
	ScanProgressMsg struct {
		Name    string
		Current int
		Total   int
	}
	ScanDoneMsg struct {
		Summary *domain.ScanSummary
	}
	ExportProgressMsg struct {
		Name    string
		Current int
		Total   int
	}
	ExportDoneMsg struct {
		Outcome domain.ExportOutcome
	}
	ErrorMsg struct {
		Err error
	}
	tickMsg time.Time
)

// StartExportFunc starts the export once the scan summary is available. It
// should run the export on its own goroutine and deliver progress and a
// single terminal message.
type StartExportFunc func(summary *domain.ScanSummary) tea.Cmd

// Config for the TUI.
type Config struct {
	SourceDir   string
	ExportDir   string
	Move        bool
	Exporting   bool
	TopLargest  int
	StartExport StartExportFunc
}

// Model drives the scan/export terminal UI.
type Model struct {
	config      Config
	Phase       Phase
	Summary     *domain.ScanSummary
	Outcome     domain.ExportOutcome
	spinner     spinner.Model
	progress    progress.Model
	current     int
	total       int
	currentFile string
	Err         error
	Quitting    bool
	width       int
}

// NewModel creates a new TUI model.
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	if cfg.TopLargest <= 0 {
		cfg.TopLargest = 5
	}

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanProgressMsg:
		m.current = msg.Current
		m.total = msg.Total
		m.currentFile = msg.Name
		return m, nil

	case ScanDoneMsg:
		m.Summary = msg.Summary
		if m.config.Exporting && m.config.StartExport != nil {
			m.Phase = PhaseExporting
			m.current = 0
			m.total = 0
			m.currentFile = ""
			return m, tea.Batch(tickCmd(), m.config.StartExport(m.Summary))
		}
		m.Phase = PhaseDone
		return m, nil

	case ExportProgressMsg:
		m.current = msg.Current
		m.total = msg.Total
		m.currentFile = msg.Name
		return m, nil

	case ExportDoneMsg:
		m.Outcome = msg.Outcome
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExporting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExporting {
			var cmds []tea.Cmd
			if m.total > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.current)/float64(m.total)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderProgress("Scanning files..."))
	case PhaseExporting:
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
		b.WriteString(m.renderProgress("Exporting files..."))
	case PhaseDone:
		b.WriteString(m.renderSummary())
		if m.config.Exporting {
			b.WriteString("\n")
			b.WriteString(m.renderExportCompletion())
		}
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🗂  FileMarsh")
	subtitle := subtitleStyle.Render("Classify, analyze and organize directories")

	lines := []string{
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
	}
	if m.config.Exporting {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("%s Export: %s", iconFolder, shortenPath(m.config.ExportDir))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderProgress(label string) string {
	if m.total == 0 {
		return fmt.Sprintf("%s %s", m.spinner.View(), label)
	}

	percent := float64(m.current) / float64(m.total)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", m.spinner.View(), label)
	fmt.Fprintf(&b, "  %s\n", m.progress.ViewAs(percent))
	fmt.Fprintf(&b, "  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d", m.current, m.total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	)
	if m.currentFile != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", iconArrow, dimStyle.Render(m.currentFile))
	}
	return b.String()
}

func (m Model) renderSummary() string {
	if m.Summary == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Scan Summary"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Total files:"),
		valueStyle.Render(fmt.Sprintf("%d", m.Summary.TotalFiles))))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Total size:"),
		valueStyle.Render(domain.FormatSize(m.Summary.TotalSize))))
	if len(m.Summary.Errors) > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Errors:"),
			warningStyle.Render(fmt.Sprintf("%s %d", iconWarning, len(m.Summary.Errors)))))
	}

	derived := report.Build(m.Summary, report.Sections{Types: true, Largest: true})

	b.WriteString("\n")
	for _, row := range derived.Types {
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
			categoryStyle.Render(domain.Category(row.Key).Title()),
			countStyle.Render(fmt.Sprintf("%6d", row.Count)),
			dimStyle.Render(fmt.Sprintf("%10s", domain.FormatSize(row.TotalSize))),
			dimStyle.Render(fmt.Sprintf("%5.1f%%", row.Percentage)),
		))
	}

	if top := min(m.config.TopLargest, len(derived.Largest)); top > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Largest files:"))
		b.WriteString("\n")
		for _, record := range derived.Largest[:top] {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				valueStyle.Render(fmt.Sprintf("%10s", domain.FormatSize(record.Size))),
				dimStyle.Render(record.Name),
			))
		}
	}

	return b.String()
}

func (m Model) renderExportCompletion() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Export Complete"))
	b.WriteString("\n\n")

	verb := "copied"
	if m.config.Move {
		verb = "moved"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		successStyle.Render(iconSuccess),
		successStyle.Render(fmt.Sprintf("%d files %s", m.Outcome.Exported, verb)),
	))
	if m.Outcome.Skipped > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			warningStyle.Render(iconWarning),
			warningStyle.Render(fmt.Sprintf("%d files skipped", m.Outcome.Skipped)),
		))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))
	return errorBoxStyle.Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning, PhaseExporting:
		help = "Working... Press q to abort"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// shortenPath replaces the home directory prefix with ~ for display.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
