package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/seqgen/internal/cli"
	"github.com/agbru/seqgen/internal/metrics"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/sequence"
	"github.com/agbru/seqgen/internal/sysmon"
)

const tickInterval = 500 * time.Millisecond

// tickCmd drives the uptime display.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// generateCmd runs one generation through the service, bounded by timeout when
// positive. The generation number lets the model discard results that were
// superseded before they arrived.
func generateCmd(ctx context.Context, service *orchestration.Service, req sequence.Request, timeout time.Duration, generation uint64) tea.Cmd {
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return GenerationDoneMsg{
			Result:     service.Generate(ctx, req),
			Generation: generation,
		}
	}
}

// saveCmd writes the export file off the update loop.
func saveCmd(terms sequence.Sequence, path string) tea.Cmd {
	return func() tea.Msg {
		return SaveDoneMsg{Path: path, Err: cli.WriteSequenceToFile(terms, path)}
	}
}

var memCollector = metrics.NewMemoryCollector()

// sampleMemStatsCmd reads Go runtime memory statistics.
func sampleMemStatsCmd() tea.Msg {
	snap := memCollector.Snapshot()
	return MemStatsMsg{
		Alloc:        snap.HeapAlloc,
		HeapSys:      snap.HeapSys,
		NumGC:        snap.NumGC,
		PauseTotalNs: snap.PauseTotalNs,
		NumGoroutine: snap.Goroutines,
	}
}

// sampleSysStatsCmd reads host CPU, memory and load telemetry.
func sampleSysStatsCmd() tea.Msg {
	stats := sysmon.Sample()
	return SysStatsMsg{
		CPUPercent: stats.CPUPercent,
		MemPercent: stats.MemPercent,
		Load1:      stats.Load1,
	}
}

// watchContextCmd converts cancellation of the session context (signals) into
// a message so the program can exit cleanly.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
