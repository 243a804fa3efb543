package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/ui"
)

// HeaderModel renders the dashboard title bar with uptime and theme info.
type HeaderModel struct {
	startTime time.Time
	version   string
	width     int
}

// NewHeaderModel creates a header. version may be empty or "dev", in which
// case it is omitted from the title.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetWidth updates the rendering width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header bar.
func (h HeaderModel) View(s Styles) string {
	title := "Seqgen Dashboard"
	if h.version != "" && h.version != "dev" {
		title = fmt.Sprintf("%s v%s", title, h.version)
	}

	sep := s.Muted.Render(" | ")
	uptime := fmt.Sprintf("Up: %s", format.FormatExecutionDuration(time.Since(h.startTime)))
	theme := fmt.Sprintf("Theme: %s", ui.GetCurrentTheme().Name)
	left := s.Title.Render(title) + sep + uptime + sep + theme

	right := s.Muted.Render("[?] Help")

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := left + spaces(gap) + right

	return s.Header.Width(h.width).Render(line)
}

// spaces returns n spaces, or an empty string for n <= 0.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
