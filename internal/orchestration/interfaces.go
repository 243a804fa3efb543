//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_presenter.go -package=mocks

package orchestration

import (
	"io"
	"time"

	"github.com/agbru/seqgen/internal/metrics"
	"github.com/agbru/seqgen/internal/sequence"
)

// GenerationResult encapsulates the outcome of a single sequence generation.
// It serves as the shared domain type between orchestration and presentation layers.
type GenerationResult struct {
	// Request is the request that produced this result.
	Request sequence.Request
	// Terms is the generated sequence. It is nil if an error occurred.
	Terms sequence.Sequence
	// Summary holds the derived sum and the first and last terms.
	Summary sequence.Summary
	// Indicators carries the richer display metrics. It is nil on error.
	Indicators *metrics.Indicators
	// Duration is the time taken to complete the generation.
	Duration time.Duration
	// Err contains any error that occurred during the generation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Quiet   bool
}

// ResultPresenter defines the interface for presenting generation results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output surfaces (CLI, REPL, dashboard) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentSequence displays the sequence terms, inline or chunked
	// depending on length.
	PresentSequence(result GenerationResult, opts PresentationOptions, out io.Writer)

	// PresentProperties displays the derived properties of the sequence
	// (sum, last term, trend, throughput).
	PresentProperties(result GenerationResult, opts PresentationOptions, out io.Writer)

	// PresentError displays a user-facing message for a failed generation.
	// Validation errors surface their specific message; internal faults map
	// to a generic message.
	PresentError(err error, out io.Writer)
}
