package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard stacks the header, message bar, section boxes and footer.
func (m Model) renderDashboard() string {
	box := m.styles.Box.Width(m.width - 4)

	sections := []string{
		m.header.View(m.styles),
	}

	switch {
	case m.lastError != nil:
		sections = append(sections, m.styles.Error.Render("  Error: "+presentableError(m.lastError)))
	case m.status != "":
		sections = append(sections, m.styles.Success.Render("  "+m.status))
	}

	sections = append(sections,
		box.Render(m.renderInputSection()),
		box.Render(m.renderPresetSection()),
		box.Render(m.renderSequenceSection()),
		box.Render(m.metrics.View(m.styles)),
		m.renderFooter(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHelpOverlay centers the help panel over the dashboard.
func (m Model) renderHelpOverlay() string {
	overlayWidth := min(70, m.width-4)
	overlayHeight := min(25, m.height-4)

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.styles.Primary.GetForeground()).
		Padding(1, 2).
		Width(overlayWidth).
		MaxHeight(overlayHeight).
		Render(m.buildHelpContent())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

func (m Model) buildHelpContent() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("ARITHMETIC SEQUENCE GENERATOR - HELP"))
	b.WriteString("\n\n")

	b.WriteString(s.BoxTitle.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(formatHelpLine(s, "Tab / Shift+Tab", "Cycle between sections"))
	b.WriteString(formatHelpLine(s, "Up/Down, k/j", "Move within a section"))
	b.WriteString(formatHelpLine(s, "Enter", "Generate or apply the selection"))
	b.WriteString(formatHelpLine(s, "Esc", "Dismiss messages and overlays"))
	b.WriteString("\n")

	b.WriteString(s.BoxTitle.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(formatHelpLine(s, "g", "Generate the sequence"))
	b.WriteString(formatHelpLine(s, "s / Ctrl+S", "Save the sequence to a file"))
	b.WriteString(formatHelpLine(s, "r", "Reset parameters to defaults"))
	b.WriteString(formatHelpLine(s, "PgUp / PgDn", "Scroll the sequence listing"))
	b.WriteString("\n")

	b.WriteString(s.BoxTitle.Render("Interface"))
	b.WriteString("\n")
	b.WriteString(formatHelpLine(s, "t", "Cycle color themes"))
	b.WriteString(formatHelpLine(s, "? / F1", "Toggle this help"))
	b.WriteString(formatHelpLine(s, "q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(s.BoxTitle.Render("About"))
	b.WriteString("\n")
	b.WriteString("Generates arithmetic sequences aₙ = a₁ + (n-1) × d\n")
	b.WriteString("with summaries, charts and live telemetry.\n")
	b.WriteString(s.Muted.Render(strings.Repeat("-", 50)))
	b.WriteString("\n")
	b.WriteString("Seqgen - Arithmetic Sequence Generator\n")
	b.WriteString(s.Muted.Render("Press ? or Esc to close this help"))

	return b.String()
}

func formatHelpLine(s Styles, keyText, desc string) string {
	return s.HelpKey.Width(15).Render(keyText) + " " + s.HelpDesc.Render(desc) + "\n"
}

// renderFooter shows context hints for the focused section plus the global
// shortcuts.
func (m Model) renderFooter() string {
	var hint string
	switch m.focusedSection {
	case SectionInput:
		hint = "Enter:Generate  Up/Down:Field  Tab:Next"
	case SectionPresets:
		hint = "Enter:Apply  Up/Down:Select  Tab:Next"
	case SectionSequence:
		hint = "PgUp/PgDn:Scroll  Tab:Next"
	}

	text := " " + hint + "  |  g:Generate s:Save r:Reset t:Theme ?:Help q:Quit"
	return m.styles.Footer.Render(truncateString(text, max(m.width-6, 10)))
}
