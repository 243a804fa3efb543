package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/seqgen/internal/config"
	"github.com/agbru/seqgen/internal/metrics"
)

func TestPrintGenerationConfig(t *testing.T) {
	setPlainTheme(t)

	cfg := config.AppConfig{
		FirstTerm:  2.5,
		CommonDiff: -0.5,
		NumTerms:   40,
		Timeout:    time.Minute,
	}

	var buf bytes.Buffer
	PrintGenerationConfig(cfg, &buf)

	output := buf.String()
	for _, want := range []string{
		"--- Generation Configuration ---",
		"Generating 40 terms of aₙ = 2.5 + (n-1) × -0.5 with a timeout of 1m0s.",
		"logical processors",
		"Go go1.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestPrintMemoryStats(t *testing.T) {
	setPlainTheme(t)

	snap := metrics.MemorySnapshot{
		HeapAlloc:    2 * 1024 * 1024,
		NumGC:        3,
		PauseTotalNs: 1_500_000,
	}

	t.Run("growing heap", func(t *testing.T) {
		var buf bytes.Buffer
		PrintMemoryStats(snap, metrics.MemoryDelta{AllocDelta: 128 * 1024}, &buf)

		output := buf.String()
		for _, want := range []string{
			"Memory:",
			"Heap in use: 2.0 MB",
			"Alloc delta: +128.0 KB",
			"GC cycles:   3",
			"GC pause:    1.50ms",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output should contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("shrinking heap keeps the sign", func(t *testing.T) {
		var buf bytes.Buffer
		PrintMemoryStats(snap, metrics.MemoryDelta{AllocDelta: -512}, &buf)

		if !strings.Contains(buf.String(), "Alloc delta: -512 B") {
			t.Errorf("negative deltas should render signed, got:\n%s", buf.String())
		}
	})
}
