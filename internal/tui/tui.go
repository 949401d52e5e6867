// Package tui provides a Bubble Tea terminal user interface for lerobotlab.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lerobotlab/lerobotlab/internal/config"
	"github.com/lerobotlab/lerobotlab/internal/convert"
	"github.com/lerobotlab/lerobotlab/internal/model"
	progressevents "github.com/lerobotlab/lerobotlab/internal/progress"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	datasetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateConverting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   progressevents.Level
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	logs      []LogEntry

	// Selection and run outcome
	sel       *model.SelectionDocument
	summary   *convert.Summary
	err       error
	processed int

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Event stream from the orchestrator goroutine
	events chan progressevents.Event

	// Options
	formatIdx int
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "path/to/selection.json"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for each orchestrator progress event.
	ProgressMsg struct {
		Event progressevents.Event
	}

	// ConvertDoneMsg is sent when the whole run completes.
	ConvertDoneMsg struct {
		Summary *convert.Summary
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateConverting {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				sel, err := model.LoadSelection(m.textInput.Value())
				if err != nil {
					m.state = StateError
					m.err = err
					return m, nil
				}
				m.sel = sel
				m.state = StateConverting
				m.events = make(chan progressevents.Event, 64)
				return m, tea.Batch(m.startConversion(), m.waitForEvent(), m.spinner.Tick)
			}

		case "f":
			if m.state == StateInput {
				m.formatIdx = (m.formatIdx + 1) % len(convert.SupportedFormats())
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.sel = nil
				m.summary = nil
				m.err = nil
				m.processed = 0
				m.events = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level == progressevents.LevelVerbose && !m.verbose {
			return m, m.waitForEvent()
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		// Only conversion outcomes advance the dataset counter; download-phase
		// success events do not.
		if msg.Event.Kind == progressevents.KindDatasetDone {
			m.processed++
			if m.sel != nil && len(m.sel.Datasets) > 0 {
				percent := float64(m.processed) / float64(len(m.sel.Datasets))
				cmds = append(cmds, m.progress.SetPercent(percent))
			}
		}
		cmds = append(cmds, m.waitForEvent())

	case ConvertDoneMsg:
		m.summary = msg.Summary
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// format returns the currently selected target format.
func (m Model) format() string {
	return convert.SupportedFormats()[m.formatIdx]
}

// outputPath derives the output directory from the selected format.
func (m Model) outputPath() string {
	return filepath.Join("converted", m.format())
}

// startConversion runs the orchestrator in the background, streaming
// progress events into the model's channel.
func (m Model) startConversion() tea.Cmd {
	sel := m.sel
	events := m.events
	ctx := m.ctx
	opts := convert.Options{
		OutputPath: m.outputPath(),
		Format:     m.format(),
		Verbose:    m.verbose,
		Settings:   config.DefaultSettings(),
		OnProgress: func(event progressevents.Event) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		},
	}

	return func() tea.Msg {
		summary, err := convert.ConvertDatasets(ctx, sel, opts)
		close(events)
		return ConvertDoneMsg{Summary: summary, Err: err}
	}
}

// waitForEvent returns a command that delivers the next progress event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🤖 lerobotlab"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Convert robot-learning datasets to DROID or V-JEPA2-AC"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter selection file path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Target format: %s (f)\n", datasetStyle.Render(m.format())))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output path: %s", m.outputPath())))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder

	total := 0
	if m.sel != nil {
		total = len(m.sel.Datasets)
	}

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Converting %d dataset(s) to %s...", total, strings.ToUpper(m.format()))))
	b.WriteString("\n\n")

	if estimate, ok := convert.EstimateConversionTime(m.sel); ok {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Estimated time: %s", estimate)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Datasets: %d/%d", m.processed, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	converted, failed, episodes := 0, 0, 0
	outputDir := m.outputPath()
	if m.summary != nil {
		converted = m.summary.DatasetsConverted
		failed = m.summary.DatasetsFailed
		episodes = m.summary.EpisodesConverted
		outputDir = m.summary.OutputDir
	}

	return boxStyle.Render(fmt.Sprintf(
		"✨ Conversion Complete!\n\n"+
			"Datasets: %d converted, %d failed\n"+
			"Episodes: %d\n"+
			"Output: %s",
		converted, failed, episodes, outputDir,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case progressevents.LevelError:
			style = errorStyle
			prefix = "✗"
		case progressevents.LevelWarning:
			style = warningStyle
			prefix = "!"
		case progressevents.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case progressevents.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: convert • f: format • v: verbose • esc: quit"
	case StateConverting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new conversion • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
