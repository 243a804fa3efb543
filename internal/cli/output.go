// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Present* methods on [CLIResultPresenter] write formatted result output
//     to an [io.Writer]. They handle presentation logic and colorization.
//
//   - Print* functions write informational text to an [io.Writer], such as
//     the configuration header shown in verbose runs.
//     Example: [PrintGenerationConfig].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Example: [WriteSequenceToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/sequence"
	"github.com/agbru/seqgen/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the term listing (empty for no file output).
	OutputFile string
	// Export saves the term listing under the canonical derived file name.
	Export bool
	// Quiet mode suppresses everything except the sequence itself.
	Quiet bool
	// Verbose shows generation timing and throughput.
	Verbose bool
}

// ExportTargets resolves the file paths the sequence should be written to:
// the explicit -output path, the canonical -export name, or both.
//
// Parameters:
//   - req: The request the sequence was generated from, used to derive the
//     canonical file name.
//
// Returns:
//   - []string: The target paths, possibly empty.
func (c OutputConfig) ExportTargets(req sequence.Request) []string {
	var targets []string
	if c.OutputFile != "" {
		targets = append(targets, c.OutputFile)
	}
	if c.Export {
		targets = append(targets, format.ExportFileName(req.FirstTerm, req.CommonDiff, req.NumTerms))
	}
	return targets
}

// WriteSequenceToFile writes the term-per-line listing of a sequence to path,
// creating parent directories as needed.
//
// Parameters:
//   - terms: The generated sequence.
//   - path: The destination file path.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteSequenceToFile(terms sequence.Sequence, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := io.WriteString(file, format.ExportText(terms)); err != nil {
		return fmt.Errorf("failed to write sequence: %w", err)
	}
	return nil
}

// SaveSequence writes the sequence to every requested target. Sequences short
// enough to be read in full on screen are not exported: a notice is printed
// instead and no file is touched, which is not an error.
//
// Parameters:
//   - out: The writer for status messages.
//   - terms: The generated sequence.
//   - req: The request the sequence was generated from.
//   - cfg: Output configuration naming the targets.
//
// Returns:
//   - error: An error if any file write fails.
func SaveSequence(out io.Writer, terms sequence.Sequence, req sequence.Request, cfg OutputConfig) error {
	targets := cfg.ExportTargets(req)
	if len(targets) == 0 {
		return nil
	}

	if !format.Exportable(len(terms)) {
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%sSequences of %d terms or fewer are shown in full; no file was written.%s\n",
				ui.ColorYellow(), format.ExportMinTerms, ui.ColorReset())
		}
		return nil
	}

	for _, target := range targets {
		if err := WriteSequenceToFile(terms, target); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Sequence saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), target, ui.ColorReset())
		}
	}
	return nil
}
