package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/seqgen/internal/config"
	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/metrics"
	"github.com/agbru/seqgen/internal/ui"
)

// PrintGenerationConfig displays the current execution configuration to the
// user. It shows the sequence formula, the requested term count, the timeout,
// and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintGenerationConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Generation Configuration ---\n")
	fmt.Fprintf(out, "Generating %s%d%s terms of %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.NumTerms, ui.ColorReset(),
		ui.ColorCyan(), format.FormatFormula(cfg.FirstTerm, cfg.CommonDiff), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintMemoryStats shows runtime memory statistics after a generation.
//
// Parameters:
//   - snap: The runtime snapshot taken after the generation.
//   - delta: The movement between the pre- and post-generation snapshots.
//   - out: The writer for standard output.
func PrintMemoryStats(snap metrics.MemorySnapshot, delta metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\n%sMemory:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Heap in use: %s%s%s\n",
		ui.ColorCyan(), format.FormatBytes(snap.HeapAlloc), ui.ColorReset())
	fmt.Fprintf(out, "  Alloc delta: %s%s%s\n",
		ui.ColorCyan(), formatSignedBytes(delta.AllocDelta), ui.ColorReset())
	fmt.Fprintf(out, "  GC cycles:   %s%d%s\n", ui.ColorCyan(), snap.NumGC, ui.ColorReset())
	fmt.Fprintf(out, "  GC pause:    %s%.2fms%s\n",
		ui.ColorCyan(), float64(snap.PauseTotalNs)/1e6, ui.ColorReset())
}

// formatSignedBytes renders a byte delta with an explicit sign, so a
// shrinking heap (a GC ran mid-generation) reads naturally.
func formatSignedBytes(delta int64) string {
	if delta < 0 {
		return "-" + format.FormatBytes(uint64(-delta))
	}
	return "+" + format.FormatBytes(uint64(delta))
}
