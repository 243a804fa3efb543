package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/metrics"
)

const (
	defaultSparkWidth = 20
	minSparkWidth     = 10
	maxSparkWidth     = 30

	// metricColWidth is the padded width of the left telemetry column.
	metricColWidth = 38
)

// MetricsModel tracks runtime and host telemetry plus the indicators of the
// most recent generation, rendered in the dashboard's TELEMETRY panel.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int

	cpuHistory *RingBuffer
	memHistory *RingBuffer
	load1      float64

	indicators *metrics.Indicators

	width  int
	height int
}

// NewMetricsModel creates a telemetry model with empty sample history.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		cpuHistory: NewRingBuffer(defaultSparkWidth),
		memHistory: NewRingBuffer(defaultSparkWidth),
	}
}

// UpdateMemStats records a Go runtime memory sample.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats records a host telemetry sample.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpuHistory.Push(msg.CPUPercent)
	m.memHistory.Push(msg.MemPercent)
	m.load1 = msg.Load1
}

// UpdateIndicators replaces the sequence indicators shown in the panel.
func (m *MetricsModel) UpdateIndicators(ind *metrics.Indicators) {
	m.indicators = ind
}

// Reset clears the sequence indicators. Host telemetry history is kept.
func (m *MetricsModel) Reset() {
	m.indicators = nil
}

// SetSize adapts the panel to the available terminal area, resizing the
// sparkline history to use the width.
func (m *MetricsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	sw := width / 4
	if sw < minSparkWidth {
		sw = minSparkWidth
	}
	if sw > maxSparkWidth {
		sw = maxSparkWidth
	}
	m.cpuHistory.Resize(sw)
	m.memHistory.Resize(sw)
}

// View renders the panel content. The caller wraps it in a box.
func (m MetricsModel) View(s Styles) string {
	var b strings.Builder

	b.WriteString(s.BoxTitle.Render("TELEMETRY"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf(
		"Heap: %s / %s | GC: %d (%.2f ms) | Goroutines: %d",
		format.FormatBytes(m.alloc), format.FormatBytes(m.heapSys),
		m.numGC, float64(m.pauseTotalNs)/1e6, m.numGoroutine)))
	b.WriteString("\n")

	cpu := s.MetricLabel.Render("CPU  ") +
		s.CPUSpark.Render(RenderSparkline(m.cpuHistory.Slice())) +
		s.MetricValue.Render(fmt.Sprintf(" %5.1f%%", m.cpuHistory.Last()))
	mem := s.MetricLabel.Render("MEM  ") +
		s.MemSpark.Render(RenderSparkline(m.memHistory.Slice())) +
		s.MetricValue.Render(fmt.Sprintf(" %5.1f%%", m.memHistory.Last()))
	load := formatMetricCol(s, "Load", fmt.Sprintf("%.2f", m.load1))

	tps, trend, mean := "--", "--", "--"
	if m.indicators != nil {
		tps = metrics.FormatTermsPerSecond(m.indicators.TermsPerSecond)
		trend = m.indicators.Trend.String()
		mean = format.FormatTerm(m.indicators.Mean)
	}

	b.WriteString(padMetric(cpu) + formatMetricCol(s, "Terms/s", tps))
	b.WriteString("\n")
	b.WriteString(padMetric(mem) + formatMetricCol(s, "Trend", trend))
	b.WriteString("\n")
	b.WriteString(padMetric(load) + formatMetricCol(s, "Mean", mean))

	return b.String()
}

// formatMetricCol renders a "Label: value" cell.
func formatMetricCol(s Styles, label, value string) string {
	return s.MetricLabel.Render(label+":") + " " + s.MetricValue.Render(value)
}

// padMetric pads a rendered cell to the left column width.
func padMetric(cell string) string {
	return cell + spaces(metricColWidth-lipgloss.Width(cell))
}
