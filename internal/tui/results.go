package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/agbru/seqgen/internal/format"
)

const (
	// dashboardOverheadRows is the vertical space consumed by everything
	// around the sequence listing: header, input, presets, telemetry,
	// borders and the footer.
	dashboardOverheadRows = 26
	minListingRows        = 4
	maxListingRows        = 14

	chartRows     = 4
	maxChartWidth = 60
	// chartMinHeight is the terminal height below which the chart collapses
	// to a one-line sparkline.
	chartMinHeight = 24
)

type sequenceState struct {
	scroll int
}

// listingRows returns the number of listing lines visible at the current
// terminal height.
func (m Model) listingRows() int {
	rows := m.height - dashboardOverheadRows
	if rows < minListingRows {
		rows = minListingRows
	}
	if rows > maxListingRows {
		rows = maxListingRows
	}
	return rows
}

// updateSequence handles keys while the SEQUENCE section is focused.
func (m Model) updateSequence(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.listingLines())
	window := m.listingRows()
	maxScroll := total - window
	if maxScroll < 0 {
		maxScroll = 0
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sequence.scroll == 0 {
			m.focusedSection = SectionPresets
		} else {
			m.sequence.scroll--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sequence.scroll < maxScroll {
			m.sequence.scroll++
		}
	case key.Matches(msg, m.keys.PageUp):
		m.sequence.scroll -= window
		if m.sequence.scroll < 0 {
			m.sequence.scroll = 0
		}
	case key.Matches(msg, m.keys.PageDown):
		m.sequence.scroll += window
		if m.sequence.scroll > maxScroll {
			m.sequence.scroll = maxScroll
		}
	}
	return m, nil
}

// listingLines renders the styled listing rows for the current result.
func (m Model) listingLines() []string {
	if m.result == nil {
		return nil
	}

	view := format.NewSequenceView(m.result.Terms)
	if !view.Compact() {
		return []string{m.styles.Success.Render(view.Inline)}
	}

	lines := make([]string, 0, len(view.Chunks)+3)
	lines = append(lines,
		m.styles.ChunkLabel.Render(fmt.Sprintf("First %d terms:", format.EdgeCount))+" "+view.First)
	if view.Last != "" {
		lines = append(lines,
			m.styles.ChunkLabel.Render(fmt.Sprintf("Last %d terms:", format.EdgeCount))+" "+view.Last)
	}
	lines = append(lines, m.styles.Muted.Render("Complete listing:"))
	for _, chunk := range view.Chunks {
		lines = append(lines,
			m.styles.ChunkLabel.Render(chunk.Label()+":")+" "+format.FormatTermList(chunk.Terms))
	}
	return lines
}

// renderChart plots the sequence shape. Tall terminals get a braille chart,
// short ones a single sparkline row. Sequences of fewer than two terms have
// no shape to plot.
func (m Model) renderChart(terms []float64) string {
	if len(terms) < 2 {
		return ""
	}

	lo, hi := valueRange(terms)
	legend := m.styles.Muted.Render(fmt.Sprintf("min %s, max %s",
		format.FormatTerm(lo), format.FormatTerm(hi)))

	width := min(m.width-10, maxChartWidth)
	if width < 10 {
		width = 10
	}

	if m.height < chartMinHeight {
		spark := RenderValueSparkline(Downsample(terms, width))
		return m.styles.ChartLine.Render(spark) + " " + legend
	}

	var b strings.Builder
	for _, line := range RenderBrailleChart(Downsample(terms, width*2), width, chartRows) {
		b.WriteString(m.styles.ChartLine.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(legend)
	return b.String()
}

// renderSequenceSection renders the result panel with chart, scrollable
// listing and summary line.
func (m Model) renderSequenceSection() string {
	focused := m.focusedSection == SectionSequence && !m.showHelp
	title := m.styles.BoxTitle
	if focused {
		title = title.Foreground(m.styles.Primary.GetForeground())
	}

	var b strings.Builder
	b.WriteString(title.Render("SEQUENCE"))
	b.WriteString("\n")

	if m.result == nil {
		b.WriteString(m.styles.Muted.Render("No sequence yet. Press [g] to generate or pick a preset."))
		return b.String()
	}

	res := m.result
	b.WriteString(m.styles.ResultValue.Render(
		format.FormatFormula(res.Request.FirstTerm, res.Request.CommonDiff)))
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("   generated in %s", format.FormatExecutionDuration(res.Duration))))
	b.WriteString("\n")

	if chart := m.renderChart(res.Terms); chart != "" {
		b.WriteString(chart)
		b.WriteString("\n")
	}

	lines := m.listingLines()
	window := m.listingRows()
	start := m.sequence.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + window
	if end > len(lines) {
		end = len(lines)
	}

	if start > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if end < len(lines) {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ↓ %d more", len(lines)-end)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.MetricLabel.Render("Sum:") + " " +
		m.styles.ResultValue.Render(format.FormatTerm(res.Summary.Sum)) + "   " +
		m.styles.MetricLabel.Render("Last:") + " " +
		m.styles.ResultValue.Render(format.FormatTerm(res.Summary.Last)) + "   " +
		m.styles.MetricLabel.Render("Count:") + " " +
		m.styles.ResultValue.Render(strconv.Itoa(res.Summary.Len)))

	return b.String()
}
