package orchestration

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Generation outcomes recorded on the generations counter.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomePanic    = "panic"
	outcomeCanceled = "canceled"
)

// Metric instruments, initialized once via InitMetrics().
var (
	generationsTotal   metric.Int64Counter
	generationDuration metric.Float64Histogram
	errorsTotal        metric.Int64Counter
	lastSumGauge       metric.Float64Gauge
)

// InitMetrics registers the OTel metric instruments for the generation
// domain. Call this once at startup. Without an installed SDK the global
// meter is a no-op, so recording stays safe in plain CLI runs.
func InitMetrics() error {
	meter := otel.Meter("seqgen")

	var err error

	generationsTotal, err = meter.Int64Counter("seqgen.generations.total",
		metric.WithDescription("Total number of sequence generations attempted"),
		metric.WithUnit("{generation}"),
	)
	if err != nil {
		return fmt.Errorf("creating generations counter: %w", err)
	}

	generationDuration, err = meter.Float64Histogram("seqgen.generation.duration",
		metric.WithDescription("Duration of sequence generations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	errorsTotal, err = meter.Int64Counter("seqgen.errors.total",
		metric.WithDescription("Total number of generation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	lastSumGauge, err = meter.Float64Gauge("seqgen.last_sum",
		metric.WithDescription("Series sum of the most recently generated sequence"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating last-sum gauge: %w", err)
	}

	return nil
}

// The instruments are nil until InitMetrics runs; the record helpers treat
// that state as disabled.

func recordGeneration(ctx context.Context, outcome string) {
	if generationsTotal == nil {
		return
	}
	generationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func recordError(ctx context.Context, reason string) {
	if errorsTotal == nil {
		return
	}
	errorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func recordDuration(ctx context.Context, d time.Duration) {
	if generationDuration == nil {
		return
	}
	generationDuration.Record(ctx, float64(d.Microseconds())/1000.0)
}

func recordLastSum(ctx context.Context, sum float64) {
	if lastSumGauge == nil {
		return
	}
	lastSumGauge.Record(ctx, sum)
}
