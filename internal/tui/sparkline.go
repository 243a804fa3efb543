package tui

// sparklineChars maps band positions 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer is a fixed-capacity circular buffer for float64 samples. The
// telemetry panel keeps one per sampled quantity (CPU, memory).
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingBuffer{data: make([]float64, capacity)}
}

// Push adds a sample, overwriting the oldest if full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of valid samples.
func (r *RingBuffer) Len() int { return r.count }

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int { return len(r.data) }

// Last returns the most recent sample, or 0 if empty.
func (r *RingBuffer) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := r.head - 1
	if idx < 0 {
		idx = len(r.data) - 1
	}
	return r.data[idx]
}

// Slice returns samples in chronological order (oldest first).
func (r *RingBuffer) Slice() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	start := r.head - r.count
	if start < 0 {
		start += len(r.data)
	}
	for i := range r.count {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

// Resize changes the capacity, preserving the most recent samples that fit.
func (r *RingBuffer) Resize(newCap int) {
	if newCap <= 0 {
		newCap = 1
	}
	if newCap == len(r.data) {
		return
	}
	old := r.Slice()
	r.data = make([]float64, newCap)
	r.head = 0
	r.count = 0
	start := 0
	if len(old) > newCap {
		start = len(old) - newCap
	}
	for _, v := range old[start:] {
		r.Push(v)
	}
}

// Reset clears all samples.
func (r *RingBuffer) Reset() {
	r.head = 0
	r.count = 0
}

// valueRange returns the minimum and maximum of values. values must be
// non-empty.
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// scalePercent maps v within [lo, hi] onto the 0..100 display band. A zero
// span maps every value to the middle of the band so constant sequences
// render as a level line rather than collapsing to the bottom.
func scalePercent(v, lo, hi float64) float64 {
	if hi <= lo {
		return 50
	}
	p := (v - lo) / (hi - lo) * 100
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}

// Downsample reduces values to at most maxLen samples by uniform striding,
// always keeping the first and final value. It lets a thousand-term sequence
// fit a chart a few dozen characters wide without losing its overall shape.
func Downsample(values []float64, maxLen int) []float64 {
	if maxLen <= 0 || len(values) <= maxLen {
		return values
	}
	if maxLen == 1 {
		return values[len(values)-1:]
	}
	out := make([]float64, 0, maxLen)
	step := float64(len(values)-1) / float64(maxLen-1)
	for i := range maxLen {
		out = append(out, values[int(float64(i)*step+0.5)])
	}
	return out
}

// RenderSparkline converts percentage values (0..100) into a one-line
// sparkline using Unicode blocks. Out-of-band values are clamped.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100.0 * 7.0)
		if idx > 7 {
			idx = 7
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// RenderValueSparkline renders arbitrary values as a one-line sparkline by
// scaling them to the full band. A constant series renders at mid height.
func RenderValueSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := valueRange(values)
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = scalePercent(v, lo, hi)
	}
	return RenderSparkline(scaled)
}

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Braille character = U+2800 + sum of activated dot bits.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // left column
	{0x08, 0x10, 0x20, 0x80}, // right column
}

// RenderBrailleChart plots values as a multi-row braille dot chart,
// auto-scaled to the value range. Each braille character covers 2 columns by
// 4 rows of dots; the chart spans `rows` text rows and `width` character
// columns, right-aligned on the most recent values. Callers wanting the
// whole series visible should Downsample to 2*width samples first.
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	lo, hi := valueRange(values)

	// Total dot rows and columns available in the braille grid.
	dotRows := rows * 4
	dotCols := width * 2

	// Initialize the grid to empty braille cells (U+2800).
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}

	startIdx := 0
	if len(values) > dotCols {
		startIdx = len(values) - dotCols
	}

	for i := startIdx; i < len(values); i++ {
		dotCol := (i - startIdx) + (dotCols - min(len(values), dotCols))
		v := scalePercent(values[i], lo, hi)

		// Map the band position to a dot row (0 = top).
		dotRow := dotRows - 1 - int(v/100.0*float64(dotRows-1))
		if dotRow < 0 {
			dotRow = 0
		}
		if dotRow >= dotRows {
			dotRow = dotRows - 1
		}

		charCol := dotCol / 2
		charRow := dotRow / 4
		subCol := dotCol % 2
		subRow := dotRow % 4

		if charCol >= 0 && charCol < width && charRow >= 0 && charRow < rows {
			grid[charRow][charCol] |= brailleDots[subCol][subRow]
		}
	}

	result := make([]string, rows)
	for r := range grid {
		result[r] = string(grid[r])
	}
	return result
}
