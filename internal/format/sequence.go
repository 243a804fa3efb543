// Package format renders generated sequences for human consumption: term
// formatting, inline and compact views, chunked listings, and the plain-text
// export. All transforms are stateless and total over any valid sequence.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Presentation Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// InlineLimit is the largest sequence rendered as a single comma-joined
	// line. Longer sequences switch to the compact view so the edges stay
	// readable without scrolling through hundreds of terms.
	InlineLimit = 50

	// EdgeCount is the number of leading and trailing terms shown by the
	// compact view.
	EdgeCount = 10

	// ChunkSize is the number of terms per labeled line in the complete
	// listing of the compact view.
	ChunkSize = 20

	// LastTermsMinLen is the sequence length above which the compact view
	// adds the trailing-terms line.
	LastTermsMinLen = 20

	// ExportMinTerms is the sequence length above which the plain-text
	// export is offered. Shorter sequences fit on screen whole, so a file
	// adds nothing.
	ExportMinTerms = 10
)

// FormatTerm renders a term in the "general" shortest representation:
// trailing zeros and the decimal point are trimmed when the value is
// integral, and very large or small magnitudes switch to scientific
// notation.
func FormatTerm(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatTermList renders terms as a single comma-separated line.
func FormatTermList(terms []float64) string {
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = FormatTerm(term)
	}
	return strings.Join(parts, ", ")
}

// FormatFormula renders the closed form of the sequence with the request
// parameters substituted, e.g. "aₙ = 5 + (n-1) × -2".
func FormatFormula(firstTerm, commonDiff float64) string {
	return fmt.Sprintf("aₙ = %s + (n-1) × %s", FormatTerm(firstTerm), FormatTerm(commonDiff))
}

// Chunk is one fixed-size piece of the complete listing. Start and End are
// 1-based term indices, both inclusive, matching the user-facing labels.
type Chunk struct {
	Start int
	End   int
	Terms []float64
}

// Label returns the 1-based index range of the chunk, e.g. "Terms 21-40".
func (c Chunk) Label() string {
	return fmt.Sprintf("Terms %d-%d", c.Start, c.End)
}

// Line returns the labeled chunk content, e.g. "Terms 1-20: 1, 2, …".
func (c Chunk) Line() string {
	return fmt.Sprintf("%s: %s", c.Label(), FormatTermList(c.Terms))
}

// ChunkTerms splits a sequence into ChunkSize pieces. The final chunk holds
// the remainder: 45 terms yield chunks of 20, 20 and 5 labeled
// "Terms 1-20", "Terms 21-40" and "Terms 41-45".
func ChunkTerms(terms []float64) []Chunk {
	if len(terms) == 0 {
		return nil
	}
	chunks := make([]Chunk, 0, (len(terms)+ChunkSize-1)/ChunkSize)
	for start := 0; start < len(terms); start += ChunkSize {
		end := start + ChunkSize
		if end > len(terms) {
			end = len(terms)
		}
		chunks = append(chunks, Chunk{
			Start: start + 1,
			End:   end,
			Terms: terms[start:end],
		})
	}
	return chunks
}

// SequenceView is the display-ready decomposition of a sequence. Short
// sequences carry only Inline; longer ones carry the edge lines and the
// complete chunked listing instead.
type SequenceView struct {
	// Inline is the whole sequence on one line; empty for long sequences.
	Inline string
	// First is the comma-joined leading terms of the compact view.
	First string
	// Last is the comma-joined trailing terms; empty when the sequence is
	// too short for a separate trailing line.
	Last string
	// Chunks is the complete listing in ChunkSize pieces.
	Chunks []Chunk
}

// Compact reports whether the view uses the compact (edges + chunks) layout.
func (v SequenceView) Compact() bool { return v.Inline == "" }

// NewSequenceView builds the display decomposition for a sequence, choosing
// the inline layout up to InlineLimit terms and the compact layout beyond.
func NewSequenceView(terms []float64) SequenceView {
	if len(terms) <= InlineLimit {
		return SequenceView{Inline: FormatTermList(terms)}
	}

	view := SequenceView{
		First:  FormatTermList(terms[:EdgeCount]),
		Chunks: ChunkTerms(terms),
	}
	if len(terms) > LastTermsMinLen {
		view.Last = FormatTermList(terms[len(terms)-EdgeCount:])
	}
	return view
}

// PlainLines renders the view as undecorated text lines, one per displayed
// row. This is the canonical textual form used by golden tests; the CLI and
// TUI add their own labels and styling around the same content.
func (v SequenceView) PlainLines() []string {
	if !v.Compact() {
		return []string{v.Inline}
	}

	lines := make([]string, 0, len(v.Chunks)+2)
	lines = append(lines, fmt.Sprintf("First %d terms: %s", EdgeCount, v.First))
	if v.Last != "" {
		lines = append(lines, fmt.Sprintf("Last %d terms: %s", EdgeCount, v.Last))
	}
	for _, chunk := range v.Chunks {
		lines = append(lines, chunk.Line())
	}
	return lines
}

// Exportable reports whether the plain-text export is offered for a sequence
// of the given length.
func Exportable(length int) bool {
	return length > ExportMinTerms
}

// ExportText renders the downloadable export: one line per term in the form
// "Term <1-based index>: <value>", with a trailing newline.
func ExportText(terms []float64) string {
	var b strings.Builder
	for i, term := range terms {
		fmt.Fprintf(&b, "Term %d: %s\n", i+1, FormatTerm(term))
	}
	return b.String()
}

// ExportFileName derives the canonical export file name from the request
// parameters, e.g. "arithmetic_sequence_5_-2_25.txt".
func ExportFileName(firstTerm, commonDiff float64, numTerms int) string {
	return fmt.Sprintf("arithmetic_sequence_%s_%s_%d.txt",
		FormatTerm(firstTerm), FormatTerm(commonDiff), numTerms)
}
