package sequence

// ─────────────────────────────────────────────────────────────────────────────
// Generation Limits
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants bound the size of a single generation request and define the
// defaults offered by every surface (CLI flags, REPL state, TUI inputs).

const (
	// MinTerms is the smallest accepted number of terms. A sequence always
	// contains at least its first term.
	MinTerms = 1

	// MaxTerms caps the number of terms in a single request. Rendering and
	// export stay interactive well past this point; the cap exists so a typo
	// (e.g. an extra digit) cannot turn one keystroke into a megabyte of
	// output. Requests above the cap are rejected before generation.
	MaxTerms = 1000

	// DefaultFirstTerm is the first term used when none is supplied.
	DefaultFirstTerm = 1.0

	// DefaultCommonDiff is the common difference used when none is supplied.
	DefaultCommonDiff = 1.0

	// DefaultNumTerms is the number of terms used when none is supplied.
	DefaultNumTerms = 10
)
