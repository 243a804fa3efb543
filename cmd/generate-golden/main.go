// Command generate-golden regenerates the golden files consumed by the
// format package tests.
//
// Term values come from a deliberately naive local oracle rather than the
// production generator, so a generator regression cannot silently rewrite
// the expectations it is tested against. All golden parameters are exactly
// representable in binary floating point, which keeps the oracle and the
// closed-form generator bit-identical.
//
// Usage:
//
//	go run ./cmd/generate-golden [-out internal/format/testdata]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agbru/seqgen/internal/format"
)

// seqTerms is the oracle: repeated addition of the common difference,
// a direct transcription of the progression's recurrence.
func seqTerms(first, diff float64, n int) []float64 {
	terms := make([]float64, 0, n)
	value := first
	for i := 0; i < n; i++ {
		terms = append(terms, value)
		value += diff
	}
	return terms
}

type goldenCase struct {
	file   string
	first  float64
	diff   float64
	terms  int
	render func(terms []float64) string
}

var goldenCases = []goldenCase{
	{
		file:  "inline_10.golden",
		first: 2.5,
		diff:  0.5,
		terms: 10,
		render: func(terms []float64) string {
			return format.NewSequenceView(terms).Inline + "\n"
		},
	},
	{
		file:  "compact_55.golden",
		first: 1,
		diff:  1,
		terms: 55,
		render: func(terms []float64) string {
			return strings.Join(format.NewSequenceView(terms).PlainLines(), "\n") + "\n"
		},
	},
	{
		file:  "export_12.golden",
		first: 5,
		diff:  -2,
		terms: 12,
		render: func(terms []float64) string {
			return format.ExportText(terms)
		},
	},
}

func main() {
	outDir := flag.String("out", filepath.Join("internal", "format", "testdata"), "directory to write golden files into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating output directory: %v\n", err)
		os.Exit(1)
	}

	for _, gc := range goldenCases {
		content := gc.render(seqTerms(gc.first, gc.diff, gc.terms))
		path := filepath.Join(*outDir, gc.file)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(content))
	}
}
