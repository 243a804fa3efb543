// Package tui implements the interactive dashboard: parameter entry, preset
// selection, sequence display with charts, and live runtime telemetry, built
// on bubbletea with lipgloss styling.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/seqgen/internal/config"
	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/sequence"
	"github.com/agbru/seqgen/internal/ui"
)

// Section identifies a focusable dashboard area. Tab cycles through them in
// declaration order.
type Section int

const (
	SectionInput Section = iota
	SectionPresets
	SectionSequence
	sectionCount
)

const metricsPanelHeight = 6

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx     context.Context
	service *orchestration.Service
	config  config.AppConfig
	version string

	keys   KeyMap
	styles Styles

	header  HeaderModel
	metrics MetricsModel

	input    inputState
	presets  presetState
	sequence sequenceState

	focusedSection Section

	result    *orchestration.GenerationResult
	lastError error
	status    string

	// generation numbers in-flight work; a result arriving with an older
	// number was superseded and is discarded.
	generation uint64

	showHelp bool
	width    int
	height   int
	exitCode int
}

// NewModel creates the dashboard model, seeding the input fields from the
// resolved configuration.
func NewModel(ctx context.Context, service *orchestration.Service, cfg config.AppConfig, version string) Model {
	m := Model{
		ctx:      ctx,
		service:  service,
		config:   cfg,
		version:  version,
		keys:     DefaultKeyMap(),
		styles:   NewStyles(),
		header:   NewHeaderModel(version),
		metrics:  NewMetricsModel(),
		exitCode: apperrors.ExitSuccess,
	}
	m.input.setRequest(sequence.Request{
		FirstTerm:  cfg.FirstTerm,
		CommonDiff: cfg.CommonDiff,
		NumTerms:   cfg.NumTerms,
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), sampleMemStatsCmd, sampleSysStatsCmd, watchContextCmd(m.ctx))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(m.width)
		m.metrics.SetSize(m.width-4, metricsPanelHeight)
		return m, nil

	case TickMsg:
		return m, tea.Batch(tickCmd(), sampleMemStatsCmd, sampleSysStatsCmd)

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil

	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)

	case SaveDoneMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
			m.status = ""
		} else {
			m.lastError = nil
			m.status = "✓ Sequence saved to: " + msg.Path
		}
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		return m, nil
	}
	if msg.Result.Err != nil {
		m.lastError = msg.Result.Err
		m.status = ""
		return m, nil
	}

	res := msg.Result
	m.result = &res
	m.lastError = nil
	m.status = fmt.Sprintf("Generated %d terms in %s",
		res.Summary.Len, format.FormatExecutionDuration(res.Duration))
	m.sequence.scroll = 0
	m.metrics.UpdateIndicators(res.Indicators)
	m.focusedSection = SectionSequence
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Esc):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			m.exitCode = apperrors.ExitSuccess
			return m, tea.Quit
		}
		return m, nil
	}

	// Global keys first. They never collide with field editing because the
	// input fields accept only digits, '.' and '-'.
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Esc):
		m.lastError = nil
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.focusedSection = (m.focusedSection + 1) % sectionCount
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.focusedSection = (m.focusedSection + sectionCount - 1) % sectionCount
		return m, nil
	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration()
	case key.Matches(msg, m.keys.Save):
		return m.startSave()
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Reset):
		return m.resetDashboard()
	}

	switch m.focusedSection {
	case SectionInput:
		return m.updateInput(msg)
	case SectionPresets:
		return m.updatePresets(msg)
	case SectionSequence:
		return m.updateSequence(msg)
	}
	return m, nil
}

// startGeneration parses the input fields and launches a generation. Parse
// failures surface immediately; range validation happens in the service so
// every surface rejects bad values identically.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	req, err := m.input.parseRequest()
	if err != nil {
		m.lastError = err
		m.status = ""
		return m, nil
	}

	m.generation++
	m.lastError = nil
	m.status = "Generating..."
	return m, generateCmd(m.ctx, m.service, req, m.config.Timeout, m.generation)
}

// startSave writes the current sequence to a file. Short sequences are shown
// in full on screen, so no file is offered for them.
func (m Model) startSave() (tea.Model, tea.Cmd) {
	if m.result == nil {
		m.lastError = errors.New("nothing to save yet")
		m.status = ""
		return m, nil
	}
	if !format.Exportable(len(m.result.Terms)) {
		m.lastError = nil
		m.status = fmt.Sprintf("Sequences of %d terms or fewer are shown in full; no file was written.",
			format.ExportMinTerms)
		return m, nil
	}

	path := m.config.OutputFile
	if path == "" {
		path = format.ExportFileName(
			m.result.Request.FirstTerm, m.result.Request.CommonDiff, m.result.Request.NumTerms)
	}
	m.status = "Saving..."
	return m, saveCmd(m.result.Terms, path)
}

// cycleTheme advances to the next color theme and rebuilds the styles.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	current := ui.GetCurrentTheme().Name
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	ui.SetTheme(next)
	m.styles = NewStyles()
	m.lastError = nil
	m.status = "Theme: " + next
	return m, nil
}

// resetDashboard restores the defaults and clears the current result. Any
// in-flight generation is invalidated by bumping the generation number.
func (m Model) resetDashboard() (tea.Model, tea.Cmd) {
	m.generation++
	m.input.setRequest(sequence.DefaultRequest())
	m.presets.cursor = 0
	m.sequence.scroll = 0
	m.result = nil
	m.lastError = nil
	m.status = "Parameters reset to defaults"
	m.metrics.Reset()
	m.focusedSection = SectionInput
	return m, nil
}

// presentableError maps an error to the text shown in the dashboard error
// bar, mirroring the CLI's disclosure rules: validation messages verbatim,
// interruptions named, internal faults behind a generic sentence.
func presentableError(err error) string {
	var validationErr apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if apperrors.IsContextError(err) {
		return fmt.Sprintf("generation interrupted: %v", err)
	}
	var generationErr apperrors.GenerationError
	if errors.As(err, &generationErr) {
		return "An error occurred while generating the sequence. Please try again."
	}
	return err.Error()
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// Run starts the dashboard and blocks until it exits, returning the process
// exit code.
func Run(ctx context.Context, service *orchestration.Service, cfg config.AppConfig, version string) int {
	program := tea.NewProgram(NewModel(ctx, service, cfg, version), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
