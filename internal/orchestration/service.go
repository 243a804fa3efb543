package orchestration

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/logging"
	"github.com/agbru/seqgen/internal/metrics"
	"github.com/agbru/seqgen/internal/sequence"
)

// generateTerms produces the terms for a request. It is a variable so tests
// can substitute a faulty generator and exercise the containment path.
var generateTerms = sequence.Generate

// Service runs generation requests and derives the shared result every
// surface presents. It owns the cross-cutting concerns around the pure
// generator: timing, structured logging, metric instruments and panic
// containment.
type Service struct {
	logger logging.Logger
}

// NewService creates a generation service. A nil logger falls back to the
// default stderr logger.
func NewService(logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Service{logger: logger}
}

// Generate produces the sequence described by req and derives its summary
// and indicators.
//
// The request is validated before any term is produced, so an invalid
// request never yields partial output. A panic escaping the generator is
// converted into a GenerationError; callers always receive a regular error
// value through GenerationResult.Err.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - req: The generation request.
//
// Returns:
//   - GenerationResult: The outcome, with Err set on failure.
func (s *Service) Generate(ctx context.Context, req sequence.Request) (result GenerationResult) {
	result.Request = req

	defer func() {
		if r := recover(); r != nil {
			result.Terms = nil
			result.Err = apperrors.NewGenerationError(fmt.Errorf("generator panic: %v", r))
			s.logger.Error("generation panic contained", result.Err)
			recordError(ctx, "panic")
			recordGeneration(ctx, outcomePanic)
		}
	}()

	if err := ctx.Err(); err != nil {
		result.Err = apperrors.WrapError(err, "generation aborted before start")
		recordError(ctx, "context")
		recordGeneration(ctx, outcomeCanceled)
		return result
	}

	start := time.Now()
	terms, err := generateTerms(req)
	result.Duration = time.Since(start)

	if err != nil {
		result.Err = err
		s.logger.Debug("generation request rejected",
			logging.Int("terms", req.NumTerms),
			logging.Err(err),
		)
		recordError(ctx, "validation")
		recordGeneration(ctx, outcomeRejected)
		return result
	}

	result.Terms = terms
	result.Summary = sequence.Summarize(terms)
	result.Indicators = metrics.Compute(terms, result.Duration)

	recordGeneration(ctx, outcomeOK)
	recordDuration(ctx, result.Duration)
	recordLastSum(ctx, result.Summary.Sum)

	s.logger.Debug("sequence generated",
		logging.Int("terms", result.Summary.Len),
		logging.Float64("sum", result.Summary.Sum),
		logging.String("duration", result.Duration.String()),
	)
	return result
}

// Present routes a generation result through the presenter and maps it to a
// process exit code.
//
// On failure only PresentError runs; on success the sequence itself and the
// derived properties are presented in that order.
//
// Parameters:
//   - result: The generation result to present.
//   - opts: The presentation options (verbosity, quiet mode).
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the rendered output.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func Present(result GenerationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	if result.Err != nil {
		presenter.PresentError(result.Err, out)
		return apperrors.ExitCodeFor(result.Err)
	}

	presenter.PresentSequence(result, opts, out)
	presenter.PresentProperties(result, opts, out)
	return apperrors.ExitSuccess
}
