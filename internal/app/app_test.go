package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/seqgen/internal/config"
	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/logging"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/ui"
)

// testConfig builds a configuration for direct-mode tests, with colors
// disabled so output assertions see plain text.
func testConfig() config.AppConfig {
	return config.AppConfig{
		FirstTerm:  1,
		CommonDiff: 1,
		NumTerms:   10,
		Theme:      "none",
		Timeout:    5 * time.Second,
	}
}

func newTestApp(cfg config.AppConfig) (*Application, *bytes.Buffer) {
	errBuf := &bytes.Buffer{}
	return &Application{Config: cfg, ErrWriter: errBuf}, errBuf
}

// preserveTheme restores the global theme after a test that runs the full
// application, since Run activates the configured theme.
func preserveTheme(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func TestNewParsesArguments(t *testing.T) {
	app, err := New([]string{"seqgen", "-first", "5", "-diff", "0.5", "-n", "20"}, io.Discard)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if app.Config.FirstTerm != 5 {
		t.Errorf("FirstTerm = %v, want 5", app.Config.FirstTerm)
	}
	if app.Config.CommonDiff != 0.5 {
		t.Errorf("CommonDiff = %v, want 0.5", app.Config.CommonDiff)
	}
	if app.Config.NumTerms != 20 {
		t.Errorf("NumTerms = %v, want 20", app.Config.NumTerms)
	}
}

func TestNewDefaults(t *testing.T) {
	app, err := New([]string{"seqgen"}, io.Discard)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	cfg := app.Config
	if cfg.FirstTerm != 1 || cfg.CommonDiff != 1 || cfg.NumTerms != 10 {
		t.Errorf("sequence defaults = %v/%v/%v, want 1/1/10",
			cfg.FirstTerm, cfg.CommonDiff, cfg.NumTerms)
	}
	if cfg.Theme != config.DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Theme, config.DefaultTheme)
	}
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, config.DefaultTimeout)
	}
}

func TestNewEmptyArgs(t *testing.T) {
	app, err := New(nil, io.Discard)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if app.Config.NumTerms != 10 {
		t.Errorf("NumTerms = %d, want the default 10", app.Config.NumTerms)
	}
}

func TestNewInvalidFlag(t *testing.T) {
	errBuf := &bytes.Buffer{}
	_, err := New([]string{"seqgen", "-n", "abc"}, errBuf)
	if err == nil {
		t.Fatal("New accepted a non-numeric term count")
	}
	if IsHelpError(err) {
		t.Error("parse failure misreported as a help request")
	}
	if code := apperrors.ExitCodeFor(err); code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestNewHelpFlag(t *testing.T) {
	_, err := New([]string{"seqgen", "-h"}, io.Discard)
	if err == nil {
		t.Fatal("New did not surface the help request")
	}
	if !IsHelpError(err) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp not recognized")
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("arbitrary error misreported as a help request")
	}
	if IsHelpError(nil) {
		t.Error("nil misreported as a help request")
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"long flag", []string{"--version"}, true},
		{"short flag", []string{"-version"}, true},
		{"uppercase short flag", []string{"-V"}, true},
		{"after other flags", []string{"-n", "5", "-version"}, true},
		{"absent", []string{"-n", "5"}, false},
		{"verbose alias is not version", []string{"-v"}, false},
		{"no args", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasVersionFlag(tt.args); got != tt.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	out := &bytes.Buffer{}
	PrintVersion(out)
	got := out.String()
	if !strings.Contains(got, "seqgen") || !strings.Contains(got, Version) {
		t.Errorf("version banner = %q", got)
	}
}

func TestRunCompletionMode(t *testing.T) {
	cfg := testConfig()
	cfg.Completion = "bash"
	app, errBuf := newTestApp(cfg)
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}
	if !strings.Contains(out.String(), "_seqgen_completions") {
		t.Error("bash completion script missing the completion function")
	}
}

func TestRunCompletionUnsupportedShell(t *testing.T) {
	cfg := testConfig()
	cfg.Completion = "tcsh"
	app, errBuf := newTestApp(cfg)

	if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "unsupported shell") {
		t.Errorf("stderr = %q, want the unsupported-shell message", errBuf)
	}
}

func TestRunGeneratesSequence(t *testing.T) {
	preserveTheme(t)
	app, errBuf := newTestApp(testConfig())
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}

	got := out.String()
	for _, want := range []string{
		"aₙ = 1 + (n-1) × 1",
		"1, 2, 3, 4, 5, 6, 7, 8, 9, 10",
		"Sum of terms: 55",
		"Last term:    10",
		"Term count:   10",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\noutput: %s", want, got)
		}
	}
}

func TestRunQuietPrintsOnlyTerms(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.Quiet = true
	app, errBuf := newTestApp(cfg)
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}
	if got := out.String(); got != "1, 2, 3, 4, 5, 6, 7, 8, 9, 10\n" {
		t.Errorf("quiet output = %q, want the bare term list", got)
	}
}

func TestRunVerbosePrintsConfigAndMemory(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.Verbose = true
	app, errBuf := newTestApp(cfg)
	app.Service = orchestration.NewService(logging.NewLogger(io.Discard, "test"))
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}

	got := out.String()
	for _, want := range []string{
		"--- Generation Configuration ---",
		"Memory:",
		"Heap in use:",
		"Alloc delta:",
		"GC cycles:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("verbose output missing %q\noutput: %s", want, got)
		}
	}
}

func TestRunValidationError(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.NumTerms = 5000
	app, _ := newTestApp(cfg)
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitErrorValidation {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorValidation)
	}
	if !strings.Contains(out.String(), "cannot exceed 1000") {
		t.Errorf("output = %q, want the validation message", out)
	}
}

func TestRunCancelledContext(t *testing.T) {
	preserveTheme(t)
	app, _ := newTestApp(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}

	if code := app.Run(ctx, out); code != apperrors.ExitErrorCanceled {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
	if !strings.Contains(out.String(), "Generation interrupted") {
		t.Errorf("output = %q, want the interruption message", out)
	}
}

func TestRunSavesToFile(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.NumTerms = 15
	cfg.OutputFile = filepath.Join(t.TempDir(), "seq.txt")
	app, errBuf := newTestApp(cfg)
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}
	if !strings.Contains(out.String(), "Sequence saved to:") {
		t.Error("save confirmation missing from output")
	}

	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "Term 1: 1\n") || !strings.HasSuffix(content, "Term 15: 15\n") {
		t.Errorf("file content = %q", content)
	}
}

func TestRunExportShortSequenceNotice(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.Export = true
	app, errBuf := newTestApp(cfg)
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}
	if !strings.Contains(out.String(), "no file was written") {
		t.Error("short-sequence notice missing from output")
	}
	canonical := format.ExportFileName(cfg.FirstTerm, cfg.CommonDiff, cfg.NumTerms)
	if _, err := os.Stat(canonical); !os.IsNotExist(err) {
		os.Remove(canonical)
		t.Errorf("canonical export file %q was created for a short sequence", canonical)
	}
}

func TestRunWithMetricsListener(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.Quiet = true
	cfg.MetricsAddr = "127.0.0.1:0"
	app, errBuf := newTestApp(cfg)
	out := &bytes.Buffer{}

	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}
	if !strings.Contains(out.String(), "1, 2, 3") {
		t.Error("sequence output missing when the metrics listener is enabled")
	}
}

func TestRunREPLModeBanner(t *testing.T) {
	preserveTheme(t)
	cfg := testConfig()
	cfg.REPL = true
	app, errBuf := newTestApp(cfg)
	out := &bytes.Buffer{}

	// Under go test stdin is /dev/null, so the REPL prints its banner and
	// exits on EOF.
	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errBuf)
	}
	if !strings.Contains(out.String(), "Arithmetic Sequence Generator - Interactive") {
		t.Error("REPL banner missing from output")
	}
}

func TestWithServiceInjection(t *testing.T) {
	preserveTheme(t)
	svc := orchestration.NewService(logging.NewLogger(io.Discard, "test"))
	app, err := New([]string{"seqgen", "-q", "-theme", "none"}, io.Discard, WithService(svc))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	out := &bytes.Buffer{}
	if code := app.Run(context.Background(), out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if app.Service != svc {
		t.Error("Run replaced the injected service")
	}
}
