package sequence

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/seqgen/internal/errors"
)

// sameFloat reports whether two float64 values are identical, treating NaN
// as equal to NaN so fuzzed non-finite inputs do not trip the invariants.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

// FuzzGenerate exercises Generate with arbitrary parameters and checks the
// structural invariants: out-of-range term counts are always rejected with a
// ValidationError, and accepted requests always yield a deterministic
// sequence of exactly n terms matching the closed form.
func FuzzGenerate(f *testing.F) {
	f.Add(1.0, 1.0, 10)
	f.Add(5.0, -2.0, 5)
	f.Add(0.0, 0.0, 1)
	f.Add(1.0, 1.0, MaxTerms)
	f.Add(1.0, 1.0, 0)
	f.Add(1.0, 1.0, MaxTerms+1)
	f.Add(math.MaxFloat64, math.MaxFloat64, 3)

	f.Fuzz(func(t *testing.T, first, diff float64, n int) {
		req := Request{FirstTerm: first, CommonDiff: diff, NumTerms: n}
		seq, err := Generate(req)

		if n < MinTerms || n > MaxTerms {
			if err == nil {
				t.Fatalf("n=%d outside [%d, %d] must be rejected", n, MinTerms, MaxTerms)
			}
			var validationErr apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError for n=%d, got %T", n, err)
			}
			if seq != nil {
				t.Fatal("no sequence may be produced for a rejected request")
			}
			return
		}

		if err != nil {
			t.Fatalf("valid request rejected: %v", err)
		}
		if len(seq) != n {
			t.Fatalf("len(seq) = %d, expected %d", len(seq), n)
		}
		for i, term := range seq {
			if expected := first + float64(i)*diff; !sameFloat(term, expected) {
				t.Fatalf("term %d = %v, closed form gives %v", i, term, expected)
			}
		}

		// Second generation with the same request must be identical.
		again, err := Generate(req)
		if err != nil {
			t.Fatalf("second generation failed: %v", err)
		}
		for i := range seq {
			if !sameFloat(seq[i], again[i]) {
				t.Fatalf("generation is not deterministic at index %d: %v vs %v", i, seq[i], again[i])
			}
		}
	})
}
