// Package cli implements the command-line presentation layer: result
// rendering, file export, the interactive REPL, and shell completion
// generation.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/sequence"
	"github.com/agbru/seqgen/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Request seeds the session parameters (first term, difference, count).
	Request sequence.Request
	// Timeout is the maximum duration for each generation.
	Timeout time.Duration
}

// REPL represents an interactive sequence generator session. The session
// keeps the current request parameters between commands so the user can
// adjust one parameter at a time and regenerate.
type REPL struct {
	config    REPLConfig
	service   *orchestration.Service
	presenter CLIResultPresenter
	request   sequence.Request
	last      *orchestration.GenerationResult
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - service: The generation service executing requests.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(service *orchestration.Service, config REPLConfig) *REPL {
	request := config.Request
	if request.NumTerms == 0 {
		request = sequence.DefaultRequest()
	}

	return &REPL{
		config:  config,
		service: service,
		request: request,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"seq> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %s🔢 Arithmetic Sequence Generator - Interactive%s        %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sgen%s           - Generate the sequence with current parameters\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfirst <x>%s     - Set the first term (a₁)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdiff <x>%s      - Set the common difference (d)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sterms <n>%s     - Set the number of terms (%d-%d)\n", ui.ColorYellow(), ui.ColorReset(), sequence.MinTerms, sequence.MaxTerms)
	fmt.Fprintf(r.out, "  %sshow%s          - Display current parameters\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sprops%s         - Display properties of the last sequence\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssave [file]%s   - Save the last sequence to a file\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "Entering a bare number sets the term count and generates immediately.\n")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "gen", "g":
		r.cmdGenerate()
	case "first":
		r.cmdFirst(args)
	case "diff":
		r.cmdDiff(args)
	case "terms", "n":
		r.cmdTerms(args)
	case "show", "params":
		r.cmdShow()
	case "props", "p":
		r.cmdProps()
	case "save":
		r.cmdSave(args)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a term count for quick generation
		if n, err := strconv.Atoi(cmd); err == nil {
			if r.setTerms(n) {
				r.cmdGenerate()
			}
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdGenerate generates the sequence with the current parameters.
func (r *REPL) cmdGenerate() {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	result := r.service.Generate(ctx, r.request)
	if result.Err != nil {
		r.presenter.PresentError(result.Err, r.out)
		return
	}
	r.last = &result

	r.presenter.PresentSequence(result, orchestration.PresentationOptions{}, r.out)
	fmt.Fprintf(r.out, "\nGenerated in %s%s%s. Type %sprops%s for sum and last term.\n",
		ui.ColorGreen(), format.FormatExecutionDuration(result.Duration), ui.ColorReset(),
		ui.ColorYellow(), ui.ColorReset())
}

// cmdFirst handles the "first" command.
func (r *REPL) cmdFirst(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: first <x>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.request.FirstTerm = value
	fmt.Fprintf(r.out, "First term set to %s%s%s\n", ui.ColorGreen(), format.FormatTerm(value), ui.ColorReset())
}

// cmdDiff handles the "diff" command.
func (r *REPL) cmdDiff(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: diff <x>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.request.CommonDiff = value
	fmt.Fprintf(r.out, "Common difference set to %s%s%s\n", ui.ColorGreen(), format.FormatTerm(value), ui.ColorReset())
}

// cmdTerms handles the "terms" command.
func (r *REPL) cmdTerms(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: terms <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	if r.setTerms(n) {
		fmt.Fprintf(r.out, "Term count set to %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
	}
}

// setTerms applies a new term count after validating it against the request
// invariants, keeping the previous value on rejection.
// Returns true when the count was applied.
func (r *REPL) setTerms(n int) bool {
	candidate := r.request
	candidate.NumTerms = n
	if err := candidate.Validate(); err != nil {
		r.presenter.PresentError(err, r.out)
		return false
	}
	r.request = candidate
	return true
}

// cmdShow displays the current session parameters.
func (r *REPL) cmdShow() {
	fmt.Fprintf(r.out, "\n%sCurrent parameters:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Formula:            %s%s%s\n",
		ui.ColorCyan(), format.FormatFormula(r.request.FirstTerm, r.request.CommonDiff), ui.ColorReset())
	fmt.Fprintf(r.out, "  First term (a₁):    %s%s%s\n",
		ui.ColorCyan(), format.FormatTerm(r.request.FirstTerm), ui.ColorReset())
	fmt.Fprintf(r.out, "  Common difference:  %s%s%s\n",
		ui.ColorCyan(), format.FormatTerm(r.request.CommonDiff), ui.ColorReset())
	fmt.Fprintf(r.out, "  Terms:              %s%d%s\n",
		ui.ColorCyan(), r.request.NumTerms, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:            %s%s%s\n",
		ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}

// cmdProps displays the properties of the last generated sequence.
func (r *REPL) cmdProps() {
	if r.last == nil {
		fmt.Fprintf(r.out, "%sNothing generated yet. Type %sgen%s first.%s\n",
			ui.ColorYellow(), ui.ColorBold(), ui.ColorReset(), ui.ColorReset())
		return
	}
	r.presenter.PresentProperties(*r.last, orchestration.PresentationOptions{Verbose: true}, r.out)
}

// cmdSave handles the "save" command. Without an argument the canonical
// derived file name is used.
func (r *REPL) cmdSave(args []string) {
	if r.last == nil {
		fmt.Fprintf(r.out, "%sNothing generated yet. Type %sgen%s first.%s\n",
			ui.ColorYellow(), ui.ColorBold(), ui.ColorReset(), ui.ColorReset())
		return
	}

	terms := r.last.Terms
	if !format.Exportable(len(terms)) {
		fmt.Fprintf(r.out, "%sSequences of %d terms or fewer are shown in full; no file was written.%s\n",
			ui.ColorYellow(), format.ExportMinTerms, ui.ColorReset())
		return
	}

	req := r.last.Request
	target := format.ExportFileName(req.FirstTerm, req.CommonDiff, req.NumTerms)
	if len(args) > 0 {
		target = args[0]
	}

	if err := WriteSequenceToFile(terms, target); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%s✓ Sequence saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), target, ui.ColorReset())
}
