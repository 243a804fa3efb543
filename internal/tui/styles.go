package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seqgen/internal/ui"
)

// Styles groups the lipgloss styles used by the dashboard. A fresh set is
// built from the active ui theme at startup and again whenever the theme is
// cycled at runtime.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Footer   lipgloss.Style
	Box      lipgloss.Style
	BoxTitle lipgloss.Style

	Primary lipgloss.Style
	Muted   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputLabel   lipgloss.Style

	TableHeader    lipgloss.Style
	TableRow       lipgloss.Style
	TableRowAlt    lipgloss.Style
	MenuItemActive lipgloss.Style

	ResultValue lipgloss.Style
	ChunkLabel  lipgloss.Style
	ChartLine   lipgloss.Style

	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	CPUSpark    lipgloss.Style
	MemSpark    lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds the dashboard style set from the current ui theme.
func NewStyles() Styles {
	t := ui.GetCurrentTUITheme()

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Footer: lipgloss.NewStyle().
			Foreground(t.Dim).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Dim),

		Primary: lipgloss.NewStyle().Foreground(t.Accent),
		Muted:   lipgloss.NewStyle().Foreground(t.Dim),
		Info:    lipgloss.NewStyle().Foreground(t.Info),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Dim).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		InputLabel: lipgloss.NewStyle().Foreground(t.Text),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Dim),
		TableRow:    lipgloss.NewStyle(),
		TableRowAlt: lipgloss.NewStyle().Foreground(t.Text),
		MenuItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),

		ResultValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		ChunkLabel: lipgloss.NewStyle().Foreground(t.Warning),
		ChartLine:  lipgloss.NewStyle().Foreground(t.Accent),

		MetricLabel: lipgloss.NewStyle().Foreground(t.Dim),
		MetricValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		CPUSpark: lipgloss.NewStyle().Foreground(t.Accent),
		MemSpark: lipgloss.NewStyle().Foreground(t.Warning),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		HelpDesc: lipgloss.NewStyle().Foreground(t.Dim),
	}
}
