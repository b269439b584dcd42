package complexnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/binum/complexnum"
)

// Tolerance tiers for numeric comparisons.
const (
	tolStrict  = 1e-14
	tolNormal  = 1e-12
	tolRelaxed = 1e-9
)

// closeTo reports whether both parts of got are within tol (absolute or
// relative) of want. NaN matches NaN; infinities must match exactly.
func closeTo(want complex128, got complexnum.Complex, tol float64) bool {
	return closeFloat(real(want), got.X(), tol) && closeFloat(imag(want), got.Y(), tol)
}

func closeFloat(want, got, tol float64) bool {
	switch {
	case math.IsNaN(want):
		return math.IsNaN(got)
	case math.IsInf(want, 0):
		return want == got
	}

	return scalar.EqualWithinAbsOrRel(want, got, tol, tol)
}

// assertClose fails the test when got is not within tol of want.
func assertClose(t *testing.T, want complex128, got complexnum.Complex, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, closeTo(want, got, tol), "want %v, got %v (tol %g) %v", want, got, tol, msgAndArgs)
}

// isNegZero reports whether v is −0.0.
func isNegZero(v float64) bool {
	return v == 0 && math.Signbit(v)
}

// isPosZero reports whether v is +0.0.
func isPosZero(v float64) bool {
	return v == 0 && !math.Signbit(v)
}

// samples are finite, non-degenerate values spread over all quadrants and
// several magnitudes.
var samples = []complexnum.Complex{
	complexnum.New(1, 0),
	complexnum.New(3, 4),
	complexnum.New(-2, 0.5),
	complexnum.New(0.1, -7),
	complexnum.New(-1e3, -2e-3),
	complexnum.New(0.3, 0.2),
	complexnum.New(-0.7, -0.1),
	complexnum.New(1e-5, 2e5),
}
