package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/seqgen/internal/cli"
	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/metrics"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/sequence"
)

// runGenerate orchestrates the one-shot CLI run: generate the sequence,
// present it, save it when a file target was requested.
func (a *Application) runGenerate(ctx context.Context, out io.Writer) int {
	// Lifecycle: the single generation is the whole run, so the timeout
	// wraps it together with the signal handling.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	verbose := a.Config.Verbose && !a.Config.Quiet
	mem := metrics.NewMemoryCollector()
	var memBefore metrics.MemorySnapshot
	if verbose {
		cli.PrintGenerationConfig(a.Config, out)
		memBefore = mem.Snapshot()
	}

	req := sequence.Request{
		FirstTerm:  a.Config.FirstTerm,
		CommonDiff: a.Config.CommonDiff,
		NumTerms:   a.Config.NumTerms,
	}

	var stopSpinner func()
	if !a.Config.Quiet {
		stopSpinner = cli.StartGenerationSpinner("generating sequence...", out)
	}
	result := a.Service.Generate(ctx, req)
	if stopSpinner != nil {
		stopSpinner()
	}

	opts := orchestration.PresentationOptions{
		Verbose: a.Config.Verbose,
		Quiet:   a.Config.Quiet,
	}
	exitCode := orchestration.Present(result, opts, cli.CLIResultPresenter{}, out)
	if exitCode != apperrors.ExitSuccess {
		return exitCode
	}

	if verbose {
		memAfter := mem.Snapshot()
		cli.PrintMemoryStats(memAfter, metrics.Delta(memBefore, memAfter), out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Export:     a.Config.Export,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.SaveSequence(out, result.Terms, result.Request, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving sequence: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
