package tui

import (
	"time"

	"github.com/agbru/seqgen/internal/orchestration"
)

// TickMsg drives the periodic refresh of the header clock and the telemetry
// panel samplers.
type TickMsg time.Time

// MemStatsMsg carries a snapshot of the Go runtime memory statistics.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide resource snapshot.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	Load1      float64
}

// GenerationDoneMsg delivers a finished generation to the model. Generation
// tags the request epoch so a result from a superseded request is discarded.
type GenerationDoneMsg struct {
	Result     orchestration.GenerationResult
	Generation uint64
}

// SaveDoneMsg reports the outcome of an export started with the save key.
type SaveDoneMsg struct {
	Path string
	Err  error
}

// ContextCancelledMsg signals that the parent context ended and the
// dashboard must shut down.
type ContextCancelledMsg struct {
	Err error
}
