package cli

import (
	"errors"
	"fmt"
	"io"

	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/metrics"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for generated sequences in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentSequence displays the formula, the request parameters, and the
// sequence itself: inline for short sequences, the compact edges-plus-chunks
// layout beyond that. Quiet mode reduces the output to the bare
// comma-separated terms, one line, for scripting.
func (CLIResultPresenter) PresentSequence(result orchestration.GenerationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		fmt.Fprintln(out, format.FormatTermList(result.Terms))
		return
	}

	req := result.Request
	fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorBold(), format.FormatFormula(req.FirstTerm, req.CommonDiff), ui.ColorReset())
	fmt.Fprintf(out, "First term: %s%s%s   Common difference: %s%s%s   Terms: %s%d%s\n",
		ui.ColorCyan(), format.FormatTerm(req.FirstTerm), ui.ColorReset(),
		ui.ColorCyan(), format.FormatTerm(req.CommonDiff), ui.ColorReset(),
		ui.ColorCyan(), req.NumTerms, ui.ColorReset())

	view := format.NewSequenceView(result.Terms)
	fmt.Fprintf(out, "\n%sSequence:%s\n", ui.ColorBold(), ui.ColorReset())
	if !view.Compact() {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorGreen(), view.Inline, ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "  First %d terms: %s%s%s\n",
		format.EdgeCount, ui.ColorGreen(), view.First, ui.ColorReset())
	if view.Last != "" {
		fmt.Fprintf(out, "  Last %d terms:  %s%s%s\n",
			format.EdgeCount, ui.ColorGreen(), view.Last, ui.ColorReset())
	}
	fmt.Fprintf(out, "\n%sComplete listing:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, chunk := range view.Chunks {
		fmt.Fprintf(out, "  %s%s:%s %s\n",
			ui.ColorYellow(), chunk.Label(), ui.ColorReset(), format.FormatTermList(chunk.Terms))
	}
}

// PresentProperties displays the derived properties of the sequence: sum,
// last term, and term count, plus timing details in verbose mode. Quiet mode
// suppresses the section entirely.
func (CLIResultPresenter) PresentProperties(result orchestration.GenerationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		return
	}

	summary := result.Summary
	fmt.Fprintf(out, "\n%sProperties:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Sum of terms: %s%s%s\n", ui.ColorCyan(), format.FormatTerm(summary.Sum), ui.ColorReset())
	fmt.Fprintf(out, "  Last term:    %s%s%s\n", ui.ColorCyan(), format.FormatTerm(summary.Last), ui.ColorReset())
	fmt.Fprintf(out, "  Term count:   %s%d%s\n", ui.ColorCyan(), summary.Len, ui.ColorReset())

	if !opts.Verbose {
		return
	}
	fmt.Fprintf(out, "\n%sGeneration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Duration:   %s%s%s\n",
		ui.ColorGreen(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	if ind := result.Indicators; ind != nil {
		fmt.Fprintf(out, "  Throughput: %s%s%s\n",
			ui.ColorGreen(), metrics.FormatTermsPerSecond(ind.TermsPerSecond), ui.ColorReset())
		fmt.Fprintf(out, "  Trend:      %s%s%s\n",
			ui.ColorGreen(), ind.Trend, ui.ColorReset())
	}
}

// PresentError displays a failed generation. Validation failures carry their
// message verbatim so the user sees exactly which constraint was violated;
// unexpected generation faults are reduced to a generic message because their
// cause is internal and already logged.
func (CLIResultPresenter) PresentError(err error, out io.Writer) {
	var validationErr apperrors.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(out, "%sError: %s%s\n", ui.ColorRed(), validationErr.Message, ui.ColorReset())
		return
	}

	if apperrors.IsContextError(err) {
		fmt.Fprintf(out, "%sGeneration interrupted: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	var genErr apperrors.GenerationError
	if errors.As(err, &genErr) {
		fmt.Fprintf(out, "%sAn error occurred while generating the sequence. Please try again.%s\n",
			ui.ColorRed(), ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}
