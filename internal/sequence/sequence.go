// Package sequence implements the arithmetic-sequence core: request
// validation, term generation, and summary statistics. Everything in this
// package is pure and deterministic; presentation concerns (rendering,
// chunking, export) live in the format package.
package sequence

import (
	"fmt"

	apperrors "github.com/agbru/seqgen/internal/errors"
)

// Request holds the three parameters that fully determine an arithmetic
// sequence. A Request is constructed fresh per user interaction and carries
// no state between invocations.
type Request struct {
	// FirstTerm is the value of the first term of the sequence.
	FirstTerm float64
	// CommonDiff is the constant difference between consecutive terms.
	CommonDiff float64
	// NumTerms is the number of terms to generate, in [MinTerms, MaxTerms].
	NumTerms int
}

// DefaultRequest returns a Request populated with the standard defaults
// (first term 1, common difference 1, ten terms).
func DefaultRequest() Request {
	return Request{
		FirstTerm:  DefaultFirstTerm,
		CommonDiff: DefaultCommonDiff,
		NumTerms:   DefaultNumTerms,
	}
}

// Validate checks the request invariants and returns a ValidationError
// describing the first violation found. Generation must not proceed for an
// invalid request; every caller is expected to surface the returned message
// to the user as-is.
//
// Returns:
//   - error: nil for a valid request, otherwise an apperrors.ValidationError.
func (r Request) Validate() error {
	if r.NumTerms < MinTerms {
		return apperrors.ValidationError{
			Field:   "terms",
			Message: "number of terms must be a positive integer",
		}
	}
	if r.NumTerms > MaxTerms {
		return apperrors.ValidationError{
			Field:   "terms",
			Message: fmt.Sprintf("number of terms cannot exceed %d for performance reasons", MaxTerms),
		}
	}
	return nil
}

// Sequence is an ordered list of arithmetic-sequence terms. A Sequence is
// treated as immutable once produced: consumers read it, render it, and
// discard it, but never modify it in place.
type Sequence []float64

// Generate produces the arithmetic sequence described by the request:
//
//	term(i) = FirstTerm + i × CommonDiff  for i in [0, NumTerms)
//
// Generation is deterministic and side-effect free; identical requests yield
// identical sequences. Arithmetic is plain float64 addition and
// multiplication with no overflow handling beyond the native float range.
//
// Parameters:
//   - r: The generation request. It is validated before any work happens.
//
// Returns:
//   - Sequence: The generated terms, exactly r.NumTerms of them.
//   - error: An apperrors.ValidationError when the request is invalid.
func Generate(r Request) (Sequence, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	seq := make(Sequence, r.NumTerms)
	for i := range seq {
		seq[i] = r.FirstTerm + float64(i)*r.CommonDiff
	}
	return seq, nil
}

// Sum returns the sum of all terms. An empty sequence sums to zero.
func (s Sequence) Sum() float64 {
	var sum float64
	for _, term := range s {
		sum += term
	}
	return sum
}

// First returns the first term. The sequence must be non-empty.
func (s Sequence) First() float64 { return s[0] }

// Last returns the final term, the element at index len−1. For a
// single-element sequence this is the first term. The sequence must be
// non-empty.
func (s Sequence) Last() float64 { return s[len(s)-1] }

// Head returns the first n terms, or the whole sequence when it is shorter
// than n. The returned slice shares storage with s and must not be modified.
func (s Sequence) Head(n int) Sequence {
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// Tail returns the last n terms, or the whole sequence when it is shorter
// than n. The returned slice shares storage with s and must not be modified.
func (s Sequence) Tail(n int) Sequence {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Summary is a derived, read-only view of a generated sequence.
type Summary struct {
	// Len is the number of terms.
	Len int
	// Sum is the sum of all terms.
	Sum float64
	// First is the first term.
	First float64
	// Last is the final term (equal to First for a single-element sequence).
	Last float64
}

// Summarize computes the summary statistics for a sequence. The zero Summary
// is returned for an empty sequence.
func Summarize(s Sequence) Summary {
	if len(s) == 0 {
		return Summary{}
	}
	return Summary{
		Len:   len(s),
		Sum:   s.Sum(),
		First: s.First(),
		Last:  s.Last(),
	}
}
