package config

import (
	"bytes"
	"flag"
	"testing"
	"time"
)

// Environment tests use t.Setenv and therefore must not run in parallel.

func TestApplyEnvOverrides_Defaults(t *testing.T) {
	t.Setenv("SEQGEN_FIRST", "7.5")
	t.Setenv("SEQGEN_DIFF", "-0.5")
	t.Setenv("SEQGEN_N", "100")
	t.Setenv("SEQGEN_TIMEOUT", "90s")
	t.Setenv("SEQGEN_OUTPUT", "env.txt")
	t.Setenv("SEQGEN_THEME", "light")
	t.Setenv("SEQGEN_METRICS_ADDR", "localhost:9099")
	t.Setenv("SEQGEN_EXPORT", "yes")
	t.Setenv("SEQGEN_QUIET", "1")
	t.Setenv("SEQGEN_VERBOSE", "true")

	var buf bytes.Buffer
	cfg, err := ParseConfig("seqgen", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.FirstTerm != 7.5 {
		t.Errorf("FirstTerm = %g, want 7.5", cfg.FirstTerm)
	}
	if cfg.CommonDiff != -0.5 {
		t.Errorf("CommonDiff = %g, want -0.5", cfg.CommonDiff)
	}
	if cfg.NumTerms != 100 {
		t.Errorf("NumTerms = %d, want 100", cfg.NumTerms)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %s, want 90s", cfg.Timeout)
	}
	if cfg.OutputFile != "env.txt" {
		t.Errorf("OutputFile = %q, want env.txt", cfg.OutputFile)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.MetricsAddr != "localhost:9099" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr)
	}
	if !cfg.Export || !cfg.Quiet || !cfg.Verbose {
		t.Errorf("export=%v quiet=%v verbose=%v, want all true", cfg.Export, cfg.Quiet, cfg.Verbose)
	}
}

func TestApplyEnvOverrides_FlagsWin(t *testing.T) {
	t.Setenv("SEQGEN_FIRST", "100")
	t.Setenv("SEQGEN_N", "500")
	t.Setenv("SEQGEN_QUIET", "true")

	var buf bytes.Buffer
	cfg, err := ParseConfig("seqgen", []string{"-first", "3", "-terms", "12"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.FirstTerm != 3 {
		t.Errorf("FirstTerm = %g, the -first flag should win over SEQGEN_FIRST", cfg.FirstTerm)
	}
	// The alias must shadow the env var too.
	if cfg.NumTerms != 12 {
		t.Errorf("NumTerms = %d, the -terms flag should win over SEQGEN_N", cfg.NumTerms)
	}
	// Quiet was not given on the command line, so the env value applies.
	if !cfg.Quiet {
		t.Error("Quiet should come from SEQGEN_QUIET")
	}
}

func TestApplyEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("SEQGEN_FIRST", "not-a-number")
	t.Setenv("SEQGEN_N", "a few")
	t.Setenv("SEQGEN_TIMEOUT", "soon")
	t.Setenv("SEQGEN_EXPORT", "maybe")

	var buf bytes.Buffer
	cfg, err := ParseConfig("seqgen", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.FirstTerm != 1 || cfg.NumTerms != 10 || cfg.Timeout != DefaultTimeout || cfg.Export {
		t.Errorf("unparseable env values should leave defaults intact, got %+v", cfg)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
		{"", true, true},
	}

	for _, tc := range testCases {
		if got := parseBoolEnv(tc.val, tc.defaultVal); got != tc.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tc.val, tc.defaultVal, got, tc.want)
		}
	}
}

func TestIsFlagSet(t *testing.T) {
	t.Parallel()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var n int
	var q bool
	fs.IntVar(&n, "n", 10, "")
	fs.IntVar(&n, "terms", 10, "")
	fs.BoolVar(&q, "q", false, "")

	if err := fs.Parse([]string{"-terms", "20"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if isFlagSet(fs, "n") {
		t.Error("n was not set explicitly")
	}
	if !isFlagSet(fs, "terms") {
		t.Error("terms was set explicitly")
	}
	if !isFlagSetAny(fs, "n", "terms") {
		t.Error("isFlagSetAny should see the terms alias")
	}
	if isFlagSetAny(fs, "q", "quiet") {
		t.Error("q was not set")
	}
}
