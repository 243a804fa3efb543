// Package app wires configuration, logging, theming and the generation
// service into the runnable application modes: the one-shot CLI, the REPL
// and the TUI dashboard, optionally accompanied by a Prometheus metrics
// listener.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/seqgen/internal/cli"
	"github.com/agbru/seqgen/internal/config"
	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/logging"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/sequence"
	"github.com/agbru/seqgen/internal/server"
	"github.com/agbru/seqgen/internal/tui"
	"github.com/agbru/seqgen/internal/ui"
)

// Application represents the seqgen application instance.
type Application struct {
	Config    config.AppConfig
	Service   *orchestration.Service
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithService sets a custom generation service for the application.
func WithService(s *orchestration.Service) AppOption {
	return func(a *Application) { a.Service = s }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "seqgen"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	a.configureLogging()
	ui.InitTheme(a.Config.Theme)

	if err := orchestration.InitMetrics(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error registering metrics: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if a.Service == nil {
		a.Service = orchestration.NewService(logging.NewDefaultLogger())
	}

	mode := a.runGenerate
	switch {
	case a.Config.TUI:
		mode = a.runTUI
	case a.Config.REPL:
		mode = a.runREPL
	}
	return a.runWithMetricsServer(ctx, out, mode)
}

// configureLogging maps the verbosity flags onto the global zerolog level.
// Quiet runs surface only errors; verbose runs include the per-generation
// debug events emitted by the service.
func (a *Application) configureLogging() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runWithMetricsServer executes mode, accompanied by the Prometheus metrics
// listener when one is configured. The listener lives exactly as long as the
// mode: when the mode returns the listener is shut down, and a listener
// failure cancels the mode through the shared context.
func (a *Application) runWithMetricsServer(ctx context.Context, out io.Writer, mode func(context.Context, io.Writer) int) int {
	if a.Config.MetricsAddr == "" {
		return mode(ctx, out)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.NewServer(a.Config.MetricsAddr, logging.NewDefaultLogger()).Run(gctx)
	})

	exitCode := mode(gctx, out)
	cancel()

	if err := g.Wait(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Metrics server error: %v\n", err)
		if exitCode == apperrors.ExitSuccess {
			exitCode = apperrors.ExitErrorGeneric
		}
	}
	return exitCode
}

// runTUI launches the interactive dashboard. The session lives until the
// user quits or a signal arrives; each generation started from the dashboard
// is bounded by the configured timeout on its own.
func (a *Application) runTUI(ctx context.Context, _ io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Service, a.Config, Version)
}

// runREPL launches the interactive prompt reading from standard input.
func (a *Application) runREPL(_ context.Context, out io.Writer) int {
	repl := cli.NewREPL(a.Service, cli.REPLConfig{
		Request: sequence.Request{
			FirstTerm:  a.Config.FirstTerm,
			CommonDiff: a.Config.CommonDiff,
			NumTerms:   a.Config.NumTerms,
		},
		Timeout: a.Config.Timeout,
	})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
