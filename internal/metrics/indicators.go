package metrics

import (
	"fmt"
	"time"
)

// Trend classifies the direction of a sequence.
type Trend int

const (
	TrendConstant Trend = iota
	TrendIncreasing
	TrendDecreasing
)

// String returns the display name of the trend.
func (t Trend) String() string {
	switch t {
	case TrendIncreasing:
		return "increasing"
	case TrendDecreasing:
		return "decreasing"
	default:
		return "constant"
	}
}

// Indicators summarizes a generated sequence for the display surfaces.
// They are derived once per generation and shared by the CLI verbose
// output, the REPL props command and the dashboard metrics panel.
type Indicators struct {
	Terms          int
	Sum            float64
	Mean           float64
	Min            float64
	Max            float64
	Span           float64 // Max - Min
	Trend          Trend
	Duration       time.Duration
	TermsPerSecond float64
}

// Compute derives the indicators for a sequence. It returns nil for an
// empty slice.
func Compute(terms []float64, duration time.Duration) *Indicators {
	if len(terms) == 0 {
		return nil
	}

	ind := &Indicators{
		Terms:    len(terms),
		Min:      terms[0],
		Max:      terms[0],
		Duration: duration,
	}
	for _, v := range terms {
		ind.Sum += v
		if v < ind.Min {
			ind.Min = v
		}
		if v > ind.Max {
			ind.Max = v
		}
	}
	ind.Mean = ind.Sum / float64(ind.Terms)
	ind.Span = ind.Max - ind.Min

	switch {
	case len(terms) > 1 && terms[1] > terms[0]:
		ind.Trend = TrendIncreasing
	case len(terms) > 1 && terms[1] < terms[0]:
		ind.Trend = TrendDecreasing
	default:
		ind.Trend = TrendConstant
	}

	if secs := duration.Seconds(); secs > 0 {
		ind.TermsPerSecond = float64(ind.Terms) / secs
	}
	return ind
}

// FormatTermsPerSecond renders a throughput value with an SI prefix.
func FormatTermsPerSecond(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1f Gterms/s", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1f Mterms/s", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1f Kterms/s", v/1e3)
	default:
		return fmt.Sprintf("%.1f terms/s", v)
	}
}
