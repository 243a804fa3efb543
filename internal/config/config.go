// Package config defines the application configuration and the command-line
// and environment parsing that produces it.
//
// Configuration values are resolved with the priority:
//
//	CLI flags > environment variables (SEQGEN_*) > built-in defaults
//
// Parsing is side-effect free apart from writing usage and error text to the
// writer supplied by the caller, which keeps the package fully testable.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/sequence"
	"github.com/agbru/seqgen/internal/ui"
)

// EnvPrefix is the prefix for all environment variables read by the
// application, e.g. SEQGEN_N or SEQGEN_TIMEOUT.
const EnvPrefix = "SEQGEN_"

// DefaultTimeout bounds a single generation from request to result. The
// interactive surfaces (TUI, REPL) apply it to each generation they start;
// the one-shot CLI applies it to the whole run.
const DefaultTimeout = 30 * time.Second

// DefaultTheme is the color theme used when none is requested.
const DefaultTheme = "dark"

// AppConfig holds the complete, resolved application configuration.
type AppConfig struct {
	// FirstTerm is the first term of the sequence (a₁).
	FirstTerm float64
	// CommonDiff is the common difference between consecutive terms (d).
	CommonDiff float64
	// NumTerms is the requested number of terms. The range check lives in the
	// sequence package so every surface rejects bad values identically.
	NumTerms int
	// OutputFile is the path to save the generated sequence (empty for none).
	OutputFile string
	// Export writes the term-per-line listing using the canonical derived
	// file name instead of requiring an explicit -output path.
	Export bool
	// Quiet reduces output to the bare sequence, suitable for scripting.
	Quiet bool
	// Verbose adds timing and throughput details to the output.
	Verbose bool
	// TUI launches the interactive dashboard instead of the one-shot CLI.
	TUI bool
	// REPL launches the interactive prompt instead of the one-shot CLI.
	REPL bool
	// Theme selects the color theme: dark, light, ocean or none.
	Theme string
	// Completion, when non-empty, names the shell to emit a completion
	// script for instead of generating a sequence.
	Completion string
	// MetricsAddr, when non-empty, is the listen address for the Prometheus
	// metrics endpoint (e.g. "localhost:9090"). Empty disables the listener.
	MetricsAddr string
	// Timeout is the maximum duration of a single generation.
	Timeout time.Duration
}

// ParseConfig parses command-line arguments and environment variables into an
// AppConfig. Flags win over environment variables, which win over defaults.
// Usage text and configuration errors are written to errWriter.
//
// Parameters:
//   - programName: The name used in usage output (argv[0]).
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for usage text and error messages.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when -help was requested, an apperrors.ConfigError
//     for invalid flags or values, nil otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Float64Var(&cfg.FirstTerm, "first", sequence.DefaultFirstTerm,
		"first term of the sequence (a₁)")
	fs.Float64Var(&cfg.CommonDiff, "diff", sequence.DefaultCommonDiff,
		"common difference between consecutive terms (d)")
	fs.IntVar(&cfg.NumTerms, "n", sequence.DefaultNumTerms,
		fmt.Sprintf("number of terms to generate, between %d and %d", sequence.MinTerms, sequence.MaxTerms))
	fs.IntVar(&cfg.NumTerms, "terms", sequence.DefaultNumTerms,
		"alias for -n")
	fs.StringVar(&cfg.OutputFile, "output", "",
		"file path to save the generated sequence")
	fs.StringVar(&cfg.OutputFile, "o", "",
		"alias for -output")
	fs.BoolVar(&cfg.Export, "export", false,
		"save the term-per-line listing under the canonical file name")
	fs.BoolVar(&cfg.Quiet, "quiet", false,
		"print only the sequence, for scripting")
	fs.BoolVar(&cfg.Quiet, "q", false,
		"alias for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false,
		"include timing and throughput details")
	fs.BoolVar(&cfg.Verbose, "v", false,
		"alias for -verbose")
	fs.BoolVar(&cfg.TUI, "tui", false,
		"launch the interactive dashboard")
	fs.BoolVar(&cfg.REPL, "repl", false,
		"launch the interactive prompt")
	fs.StringVar(&cfg.Theme, "theme", DefaultTheme,
		fmt.Sprintf("color theme: %s", strings.Join(ui.ThemeNames(), ", ")))
	fs.StringVar(&cfg.Completion, "completion", "",
		"emit a completion script for the given shell (bash, zsh, fish, powershell)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "",
		"listen address for the Prometheus metrics endpoint (disabled when empty)")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout,
		"maximum duration of a single generation")

	fs.Usage = func() { printUsage(fs, programName) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		// The flag package already reported the problem on errWriter.
		return cfg, apperrors.NewConfigError("invalid command line: %v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		fmt.Fprintf(errWriter, "%s: %v\n", programName, err)
		return cfg, err
	}
	return cfg, nil
}

// validate checks configuration-level constraints. Sequence parameter ranges
// are deliberately not checked here; the sequence package owns those so that
// the CLI, REPL and TUI reject bad requests with the same message.
func validate(cfg AppConfig) error {
	if !isValidTheme(cfg.Theme) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)",
			cfg.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if cfg.TUI && cfg.REPL {
		return apperrors.NewConfigError("-tui and -repl are mutually exclusive")
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

// isValidTheme reports whether name is an accepted theme name.
func isValidTheme(name string) bool {
	for _, known := range ui.ThemeNames() {
		if name == known {
			return true
		}
	}
	return false
}

// printUsage writes the structured usage text, grouping flags by concern
// instead of the flat alphabetical listing flag.PrintDefaults produces.
func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()

	fmt.Fprintf(out, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(out, "Generate an arithmetic sequence: aₙ = a₁ + (n-1) × d.\n\n")

	fmt.Fprintf(out, "Sequence parameters:\n")
	fmt.Fprintf(out, "  -first float\n        first term of the sequence (default %g)\n", sequence.DefaultFirstTerm)
	fmt.Fprintf(out, "  -diff float\n        common difference between consecutive terms (default %g)\n", sequence.DefaultCommonDiff)
	fmt.Fprintf(out, "  -n, -terms int\n        number of terms, between %d and %d (default %d)\n",
		sequence.MinTerms, sequence.MaxTerms, sequence.DefaultNumTerms)

	fmt.Fprintf(out, "\nOutput:\n")
	fmt.Fprintf(out, "  -output, -o string\n        file path to save the generated sequence\n")
	fmt.Fprintf(out, "  -export\n        save the term-per-line listing under the canonical file name\n")
	fmt.Fprintf(out, "  -quiet, -q\n        print only the sequence, for scripting\n")
	fmt.Fprintf(out, "  -verbose, -v\n        include timing and throughput details\n")
	fmt.Fprintf(out, "  -theme string\n        color theme: %s (default %q)\n",
		strings.Join(ui.ThemeNames(), ", "), DefaultTheme)

	fmt.Fprintf(out, "\nModes:\n")
	fmt.Fprintf(out, "  -tui\n        launch the interactive dashboard\n")
	fmt.Fprintf(out, "  -repl\n        launch the interactive prompt\n")
	fmt.Fprintf(out, "  -completion string\n        emit a completion script for the given shell (bash, zsh, fish, powershell)\n")

	fmt.Fprintf(out, "\nRuntime:\n")
	fmt.Fprintf(out, "  -metrics-addr string\n        listen address for the Prometheus metrics endpoint (disabled when empty)\n")
	fmt.Fprintf(out, "  -timeout duration\n        maximum duration of a single generation (default %s)\n", DefaultTimeout)
	fmt.Fprintf(out, "  -version\n        print version information and exit\n")

	fmt.Fprintf(out, "\nEnvironment:\n")
	fmt.Fprintf(out, "  Every option can be set through a %s* variable, e.g. %sN=100\n", EnvPrefix, EnvPrefix)
	fmt.Fprintf(out, "  or %sTHEME=ocean. Command-line flags take precedence.\n", EnvPrefix)

	fmt.Fprintf(out, "\nExamples:\n")
	fmt.Fprintf(out, "  %s -first 5 -diff 3 -n 20\n", programName)
	fmt.Fprintf(out, "  %s -first 2.5 -diff -0.5 -n 100 -export\n", programName)
	fmt.Fprintf(out, "  %s -n 55 -quiet\n", programName)
	fmt.Fprintf(out, "  %s -tui\n", programName)
}
