package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/sequence"
)

// Preset is a ready-made parameter set selectable from the dashboard.
type Preset struct {
	Name  string
	First float64
	Diff  float64
	Terms int
}

// Request returns the generation request for the preset.
func (p Preset) Request() sequence.Request {
	return sequence.Request{FirstTerm: p.First, CommonDiff: p.Diff, NumTerms: p.Terms}
}

// Sum returns the closed-form series sum n(2a₁ + (n-1)d)/2 without
// generating the terms, for display in the preset table.
func (p Preset) Sum() float64 {
	n := float64(p.Terms)
	return n * (2*p.First + (n-1)*p.Diff) / 2
}

var presets = []Preset{
	{Name: "Counting numbers", First: 1, Diff: 1, Terms: 10},
	{Name: "Even numbers", First: 2, Diff: 2, Terms: 15},
	{Name: "Odd numbers", First: 1, Diff: 2, Terms: 15},
	{Name: "Countdown", First: 10, Diff: -1, Terms: 10},
	{Name: "Decades", First: 10, Diff: 10, Terms: 12},
	{Name: "Quarter steps", First: 0, Diff: 0.25, Terms: 41},
	{Name: "Centennial run", First: 1, Diff: 1, Terms: 100},
}

type presetState struct {
	cursor int
}

const (
	colWidthIndex   = 3
	colWidthPreset  = 22
	colWidthFormula = 28
	colWidthTerms   = 7
	colWidthSum     = 12
)

func presetTableWidth() int {
	return 2 + colWidthIndex + 1 + colWidthPreset + 1 + colWidthFormula + 1 + colWidthTerms + 1 + colWidthSum
}

// updatePresets handles keys while the PRESETS section is focused.
func (m Model) updatePresets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.presets.cursor == 0 {
			m.focusedSection = SectionInput
		} else {
			m.presets.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.presets.cursor == len(presets)-1 {
			m.focusedSection = SectionSequence
		} else {
			m.presets.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		return m.applyPreset(presets[m.presets.cursor])
	}
	return m, nil
}

// applyPreset loads the preset into the input fields and generates.
func (m Model) applyPreset(p Preset) (tea.Model, tea.Cmd) {
	m.input.setRequest(p.Request())
	return m.startGeneration()
}

// renderPresetSection renders the preset table.
func (m Model) renderPresetSection() string {
	focused := m.focusedSection == SectionPresets && !m.showHelp
	title := m.styles.BoxTitle
	if focused {
		title = title.Foreground(m.styles.Primary.GetForeground())
	}

	var b strings.Builder
	b.WriteString(title.Render("PRESETS"))
	b.WriteString("\n")

	header := spaces(2) +
		padCell("#", colWidthIndex) + " " +
		padCell("Preset", colWidthPreset) + " " +
		padCell("Formula", colWidthFormula) + " " +
		padCell("Terms", colWidthTerms) + " " +
		padCell("Sum", colWidthSum)
	b.WriteString(m.styles.TableHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(strings.Repeat("━", presetTableWidth())))
	b.WriteString("\n")

	for i, p := range presets {
		cells := padCell(strconv.Itoa(i+1), colWidthIndex) + " " +
			padCell(p.Name, colWidthPreset) + " " +
			padCell(format.FormatFormula(p.First, p.Diff), colWidthFormula) + " " +
			padCell(strconv.Itoa(p.Terms), colWidthTerms) + " " +
			padCell(format.FormatTerm(p.Sum()), colWidthSum)

		rowStyle := m.styles.TableRow
		if i%2 == 1 {
			rowStyle = m.styles.TableRowAlt
		}
		prefix := spaces(2)
		if focused && i == m.presets.cursor {
			prefix = m.styles.MenuItemActive.Render("▸ ")
			rowStyle = m.styles.MenuItemActive
		}
		b.WriteString(prefix + rowStyle.Render(cells))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("Enter applies the preset and generates."))
	return b.String()
}

// padCell truncates and pads s to exactly w display cells.
func padCell(s string, w int) string {
	s = truncateString(s, w)
	return s + spaces(w-utf8.RuneCountInString(s))
}

// truncateString shortens s to at most maxLen runes, ellipsized.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
