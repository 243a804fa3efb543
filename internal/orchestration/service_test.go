package orchestration

import (
	"context"
	"errors"
	"io"
	"testing"

	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/logging"
	"github.com/agbru/seqgen/internal/sequence"
)

// recordingPresenter captures which presenter methods were invoked.
type recordingPresenter struct {
	sequences  int
	properties int
	errs       []error
}

func (p *recordingPresenter) PresentSequence(GenerationResult, PresentationOptions, io.Writer) {
	p.sequences++
}

func (p *recordingPresenter) PresentProperties(GenerationResult, PresentationOptions, io.Writer) {
	p.properties++
}

func (p *recordingPresenter) PresentError(err error, _ io.Writer) {
	p.errs = append(p.errs, err)
}

// DiscardWriter is a helper that implements io.Writer and discards all data.
type DiscardWriter struct{}

func (d *DiscardWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func newTestService() *Service {
	return NewService(logging.NewLogger(io.Discard, "test"))
}

// TestServiceGenerate verifies the success path: terms, summary and
// indicators are all derived from a valid request.
func TestServiceGenerate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		req         sequence.Request
		expectedLen int
		expectedSum float64
	}{
		{"default request", sequence.DefaultRequest(), 10, 55},
		{"negative difference", sequence.Request{FirstTerm: 5, CommonDiff: -2, NumTerms: 5}, 5, 5},
		{"lower boundary", sequence.Request{FirstTerm: 3, CommonDiff: 1, NumTerms: 1}, 1, 3},
		{"upper boundary", sequence.Request{FirstTerm: 0, CommonDiff: 1, NumTerms: 1000}, 1000, 499500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := newTestService().Generate(context.Background(), tt.req)
			if result.Err != nil {
				t.Fatalf("unexpected error: %v", result.Err)
			}
			if len(result.Terms) != tt.expectedLen {
				t.Errorf("expected %d terms, got %d", tt.expectedLen, len(result.Terms))
			}
			if result.Summary.Sum != tt.expectedSum {
				t.Errorf("expected sum %v, got %v", tt.expectedSum, result.Summary.Sum)
			}
			if result.Indicators == nil {
				t.Error("expected indicators on success")
			} else if result.Indicators.Terms != tt.expectedLen {
				t.Errorf("indicators report %d terms, want %d", result.Indicators.Terms, tt.expectedLen)
			}
		})
	}
}

// TestServiceGenerate_Validation verifies that invalid requests surface a
// ValidationError and produce no terms.
func TestServiceGenerate_Validation(t *testing.T) {
	t.Parallel()
	for _, numTerms := range []int{0, -1, 1001, 50000} {
		result := newTestService().Generate(context.Background(), sequence.Request{
			FirstTerm: 1, CommonDiff: 1, NumTerms: numTerms,
		})
		if result.Err == nil {
			t.Errorf("NumTerms=%d: expected error, got nil", numTerms)
			continue
		}
		var vErr apperrors.ValidationError
		if !errors.As(result.Err, &vErr) {
			t.Errorf("NumTerms=%d: expected ValidationError, got %T", numTerms, result.Err)
		}
		if result.Terms != nil {
			t.Errorf("NumTerms=%d: expected nil terms on rejection", numTerms)
		}
		if result.Indicators != nil {
			t.Errorf("NumTerms=%d: expected nil indicators on rejection", numTerms)
		}
	}
}

// TestServiceGenerate_ContextCanceled verifies that a canceled context
// aborts the generation before any work is done.
func TestServiceGenerate_ContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestService().Generate(ctx, sequence.DefaultRequest())
	if result.Err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !apperrors.IsContextError(result.Err) {
		t.Errorf("expected a context error, got %v", result.Err)
	}
	if code := apperrors.ExitCodeFor(result.Err); code != apperrors.ExitErrorCanceled {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorCanceled, code)
	}
	if result.Terms != nil {
		t.Error("expected nil terms for canceled context")
	}
}

// TestServiceGenerate_PanicContainment substitutes a faulty generator and
// verifies the panic is converted into a GenerationError.
func TestServiceGenerate_PanicContainment(t *testing.T) {
	original := generateTerms
	defer func() { generateTerms = original }()
	generateTerms = func(sequence.Request) (sequence.Sequence, error) {
		panic("corrupted state")
	}

	result := newTestService().Generate(context.Background(), sequence.DefaultRequest())
	if result.Err == nil {
		t.Fatal("expected error from panicking generator")
	}
	var genErr apperrors.GenerationError
	if !errors.As(result.Err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", result.Err, result.Err)
	}
	if result.Terms != nil {
		t.Error("expected nil terms after contained panic")
	}
	if code := apperrors.ExitCodeFor(result.Err); code != apperrors.ExitErrorGeneric {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorGeneric, code)
	}
}

// TestPresent verifies the routing between result state and presenter calls,
// and the exit code mapping.
func TestPresent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		result         GenerationResult
		expectedStatus int
		expectError    bool
	}{
		{
			name:           "success presents sequence and properties",
			result:         newTestService().Generate(context.Background(), sequence.DefaultRequest()),
			expectedStatus: apperrors.ExitSuccess,
		},
		{
			name:           "validation error",
			result:         GenerationResult{Err: apperrors.ValidationError{Field: "terms", Message: "number of terms must be a positive integer"}},
			expectedStatus: apperrors.ExitErrorValidation,
			expectError:    true,
		},
		{
			name:           "internal fault",
			result:         GenerationResult{Err: apperrors.NewGenerationError(errors.New("boom"))},
			expectedStatus: apperrors.ExitErrorGeneric,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			presenter := &recordingPresenter{}
			status := Present(tt.result, PresentationOptions{}, presenter, &DiscardWriter{})
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if tt.expectError {
				if len(presenter.errs) != 1 {
					t.Errorf("expected 1 error presentation, got %d", len(presenter.errs))
				}
				if presenter.sequences != 0 || presenter.properties != 0 {
					t.Error("failure must not present sequence or properties")
				}
			} else {
				if presenter.sequences != 1 || presenter.properties != 1 {
					t.Errorf("expected sequence and properties presented once, got %d/%d",
						presenter.sequences, presenter.properties)
				}
			}
		})
	}
}

// TestInitMetrics verifies instrument registration against the global meter
// and that the record helpers run after initialization.
func TestInitMetrics(t *testing.T) {
	if err := InitMetrics(); err != nil {
		t.Fatalf("InitMetrics: %v", err)
	}
	if generationsTotal == nil || generationDuration == nil || errorsTotal == nil || lastSumGauge == nil {
		t.Fatal("expected all instruments to be initialized")
	}

	// Exercise every record path with the instruments live.
	result := newTestService().Generate(context.Background(), sequence.DefaultRequest())
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	newTestService().Generate(context.Background(), sequence.Request{NumTerms: -1})
}
