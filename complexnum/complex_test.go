package complexnum_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binum/complexnum"
)

// TestComplex_SpecialValues reproduces the IEEE golden table.
func TestComplex_SpecialValues(t *testing.T) {
	inf := math.Inf(1)

	inv := complexnum.Real(inf).Inverse()
	assert.True(t, isPosZero(inv.X()), "Re(1/+Inf) must be +0")
	assert.True(t, isPosZero(inv.Y()), "Im(1/+Inf) must be +0")

	inv = complexnum.Imaginary(0).Inverse()
	assert.True(t, math.IsNaN(inv.X()) && math.IsNaN(inv.Y()), "1/0 must be NaN+NaNi")

	neg := complexnum.Real(math.NaN()).Negative()
	assert.True(t, math.IsNaN(neg.X()))
	assert.True(t, isNegZero(neg.Y()), "negating +0 gives -0")

	arg := complexnum.Real(0).Arg()
	assert.True(t, isPosZero(arg), "arg(0) must be +0")
	assert.Equal(t, math.Pi, complexnum.Real(-4).Arg())
	assert.Equal(t, -math.Pi/2, complexnum.Imaginary(-3).Arg())

	assert.False(t, complexnum.New(inf, math.NaN()).IsInfinite(), "NaN component wins over Inf")
	assert.False(t, complexnum.New(math.NaN(), -inf).IsInfinite())
	assert.True(t, complexnum.New(math.NaN(), -inf).IsNaN())
	assert.True(t, complexnum.New(1, -inf).IsInfinite())
}

// TestComplex_InverseRules checks each branch of Inverse.
func TestComplex_InverseRules(t *testing.T) {
	for _, z := range []complexnum.Complex{
		complexnum.New(0, 0),
		complexnum.New(-0.0, 0),
		complexnum.New(0, math.Copysign(0, -1)),
	} {
		inv := z.Inverse()
		assert.True(t, inv.IsNaN(), "inverse of %v", z)
	}

	assert.Equal(t, complexnum.New(0.5, 0), complexnum.Real(2).Inverse())
	assert.Equal(t, complexnum.New(0, 0.25), complexnum.Imaginary(-4).Inverse())
	assertClose(t, 1/complex(3, 4), complexnum.New(3, 4).Inverse(), tolStrict)
}

// TestComplex_Involutions checks inverse∘inverse and conjugate∘conjugate.
func TestComplex_Involutions(t *testing.T) {
	for _, z := range samples {
		back := z.Inverse().Inverse()
		assertClose(t, z.Complex128(), back, tolStrict, "inverse involution")

		assert.True(t, z.Conjugate().Conjugate().Equal(z), "conjugate involution must be exact")
	}
}

// TestComplex_EqualityOnBits verifies equality, keys and hashes use raw bits.
func TestComplex_EqualityOnBits(t *testing.T) {
	pz := complexnum.New(0, 0)
	nz := complexnum.New(math.Copysign(0, -1), 0)
	assert.False(t, pz.Equal(nz), "+0 and -0 differ")
	assert.NotEqual(t, pz.Key(), nz.Key())

	nan := complexnum.New(math.NaN(), 1)
	assert.True(t, nan.Equal(nan), "bit-identical NaNs are equal")
	assert.Equal(t, nan.Hash(), complexnum.New(math.NaN(), 1).Hash())

	seen := map[any]int{}
	seen[pz.Key()]++
	seen[nz.Key()]++
	seen[complexnum.New(0, 0).Key()]++
	assert.Len(t, seen, 2)
}

// TestComplex_TimesAnnexG covers the NaN recovery of multiplication.
func TestComplex_TimesAnnexG(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name string
		a, b complexnum.Complex
		want complexnum.Complex
	}{
		{"finite", complexnum.New(1, 2), complexnum.New(3, 4), complexnum.New(-5, 10)},
		{"inf+inf i times one", complexnum.New(inf, inf), complexnum.New(1, 0), complexnum.New(inf, inf)},
		{"one times inf+inf i", complexnum.New(1, 0), complexnum.New(inf, inf), complexnum.New(inf, inf)},
		{"i times inf", complexnum.New(0, 1), complexnum.New(inf, inf), complexnum.New(-inf, inf)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Times(tc.b)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestComplex_DivSmithAnnexG covers pivoting and NaN recovery of division.
func TestComplex_DivSmithAnnexG(t *testing.T) {
	inf := math.Inf(1)

	assertClose(t, complex(2.2, -0.4), complexnum.New(3, 4).Div(complexnum.New(1, 2)), tolStrict)
	assertClose(t, complex(3, 4)/complex(2, 1), complexnum.New(3, 4).Div(complexnum.New(2, 1)), tolStrict)

	got := complexnum.New(1, 1).Div(complexnum.Zero)
	assert.Equal(t, complexnum.New(inf, inf), got, "nonzero / 0")

	got = complexnum.New(inf, inf).Div(complexnum.New(1, 0))
	assert.Equal(t, complexnum.New(inf, inf), got, "infinite / finite")

	got = complexnum.New(1, 1).Div(complexnum.New(inf, inf))
	assert.Equal(t, 0.0, got.X(), "finite / infinite")
	assert.Equal(t, 0.0, got.Y(), "finite / infinite")

	got = complexnum.Zero.Div(complexnum.Zero)
	assert.True(t, got.IsNaN(), "0/0 stays NaN")

	// Large components must not overflow through the pivot.
	big := complexnum.New(1e300, 1e300)
	assertClose(t, complex(1, 0), big.Div(big), tolStrict)
}

// TestComplex_LogAbsPrecision checks the ln1p rewrite near |z| = 1.
func TestComplex_LogAbsPrecision(t *testing.T) {
	z := complexnum.New(1, 1e-10)
	assert.InEpsilon(t, 5e-21, z.LogAbs(), 1e-12, "ln|1+1e-10 i| = ½·1e-20")

	assert.InDelta(t, math.Log(5), complexnum.New(3, 4).LogAbs(), 1e-15)
	assert.InDelta(t, math.Log(5), complexnum.New(-4, 3).LogAbs(), 1e-15)
	assert.True(t, math.IsInf(complexnum.Zero.LogAbs(), -1))
	assert.True(t, math.IsInf(complexnum.New(math.NaN(), math.Inf(-1)).LogAbs(), 1))
	assert.InDelta(t, math.Log(1e300)+0.5*math.Log(2), complexnum.New(1e300, 1e300).LogAbs(), 1e-12)
}

// TestComplex_ElementaryAgainstCmplx compares the elementary functions with
// math/cmplx on regular samples.
func TestComplex_ElementaryAgainstCmplx(t *testing.T) {
	type fn struct {
		name string
		ours func(complexnum.Complex) complexnum.Complex
		ref  func(complex128) complex128
	}
	fns := []fn{
		{"Exp", complexnum.Complex.Exp, cmplx.Exp},
		{"Log", complexnum.Complex.Log, cmplx.Log},
		{"Sin", complexnum.Complex.Sin, cmplx.Sin},
		{"Cos", complexnum.Complex.Cos, cmplx.Cos},
		{"Sinh", complexnum.Complex.Sinh, cmplx.Sinh},
		{"Cosh", complexnum.Complex.Cosh, cmplx.Cosh},
		{"Tan", complexnum.Complex.Tan, cmplx.Tan},
		{"Tanh", complexnum.Complex.Tanh, cmplx.Tanh},
		{"Sqrt", complexnum.Complex.Sqrt, cmplx.Sqrt},
	}
	zs := []complexnum.Complex{
		complexnum.New(0.5, 0.25),
		complexnum.New(-1.5, 2),
		complexnum.New(2, -1),
		complexnum.New(-0.3, -0.8),
		complexnum.New(0, 1.25),
		complexnum.New(1.75, 0),
	}
	for _, f := range fns {
		for _, z := range zs {
			assertClose(t, f.ref(z.Complex128()), f.ours(z), tolNormal, f.name, z)
		}
	}
}

// TestComplex_SqrtFriedland covers the branches of the square root.
func TestComplex_SqrtFriedland(t *testing.T) {
	assert.Equal(t, complexnum.New(2, 0), complexnum.Real(4).Sqrt())
	assert.Equal(t, complexnum.New(0, 2), complexnum.Real(-4).Sqrt())
	assert.Equal(t, complexnum.New(2, 1), complexnum.New(3, 4).Sqrt())
	assert.Equal(t, complexnum.New(1, 2), complexnum.New(-3, 4).Sqrt())
	assert.Equal(t, complexnum.New(1, -2), complexnum.New(-3, -4).Sqrt())

	// No cancellation for x < 0 with tiny y.
	z := complexnum.New(-1, 1e-20).Sqrt()
	assert.InEpsilon(t, 5e-21, z.X(), 1e-12)
	assert.InDelta(t, 1.0, z.Y(), 1e-15)

	// No overflow near MaxFloat64.
	big := complexnum.New(math.MaxFloat64, math.MaxFloat64).Sqrt()
	assert.False(t, big.IsInfinite())
	assert.False(t, big.IsNaN())

	assert.True(t, complexnum.New(math.NaN(), 1).Sqrt().IsNaN())
	assert.Equal(t, math.Inf(1), complexnum.New(math.NaN(), math.Inf(1)).Sqrt().X())

	// Squaring back is checked against |z|: a component much smaller than
	// |z| cancels in t² − (y/2t)² and carries no relative precision.
	for _, s := range samples {
		r := s.Sqrt()
		assertClose(t, cmplx.Sqrt(s.Complex128()), r, tolNormal, s)
		assert.LessOrEqualf(t, r.Times(r).Minus(s).Abs(), tolNormal*s.Abs(), "sqrt squared %v", s)
	}
}

// TestComplex_InverseTrigAgainstCmplx compares Hull et al. with math/cmplx
// away from the branch cuts.
func TestComplex_InverseTrigAgainstCmplx(t *testing.T) {
	zs := []complexnum.Complex{
		complexnum.New(0.3, 0.2),
		complexnum.New(2, 1),
		complexnum.New(-2, 1),
		complexnum.New(0.5, -3),
		complexnum.New(-0.7, -0.1),
		complexnum.New(0.9, 0.01),
		complexnum.New(10, 10),
		complexnum.New(1e-3, 5),
		complexnum.New(1.2, 0.4),
	}
	for _, z := range zs {
		c := z.Complex128()
		assertClose(t, cmplx.Asin(c), z.Asin(), tolNormal, "Asin", z)
		assertClose(t, cmplx.Acos(c), z.Acos(), tolNormal, "Acos", z)
		assertClose(t, cmplx.Atan(c), z.Atan(), tolNormal, "Atan", z)
		assertClose(t, cmplx.Asinh(c), z.Asinh(), tolNormal, "Asinh", z)
		assertClose(t, cmplx.Atanh(c), z.Atanh(), tolNormal, "Atanh", z)
		assertClose(t, cmplx.Acosh(c), z.Acosh(), tolNormal, "Acosh", z)

		assertClose(t, c, z.Asin().Sin(), tolNormal, "sin(asin z)")
		assertClose(t, c, z.Acos().Cos(), tolNormal, "cos(acos z)")
	}
}

// TestComplex_InverseTrigRealAxis checks the real fast paths and the
// behaviour past ±1.
func TestComplex_InverseTrigRealAxis(t *testing.T) {
	assert.Equal(t, complexnum.New(math.Asin(0.5), 0), complexnum.Real(0.5).Asin())
	assert.Equal(t, math.Acos(-0.25), complexnum.Real(-0.25).Acos().X())

	z := complexnum.Real(2).Asin()
	assert.InDelta(t, math.Pi/2, z.X(), tolStrict)
	assert.InDelta(t, math.Log(2+math.Sqrt(3)), z.Y(), tolStrict)

	z = complexnum.Real(2).Acos()
	assert.InDelta(t, 0, z.X(), tolStrict)
	assert.InDelta(t, -math.Log(2+math.Sqrt(3)), z.Y(), tolStrict)

	huge := complexnum.New(1e200, 1e200).Asin()
	assert.False(t, huge.IsNaN())
	assert.False(t, huge.IsInfinite())

	inf := complexnum.New(math.Inf(1), 1).Asin()
	assert.InDelta(t, math.Pi/2, inf.X(), tolStrict)
	assert.Equal(t, math.Inf(1), inf.Y())
}

// TestComplex_Pow covers the generic power defaults on Complex.
func TestComplex_Pow(t *testing.T) {
	z := complexnum.New(1.5, -0.5)

	assert.Equal(t, complexnum.One, z.Pow(0))
	assert.Equal(t, z, z.Pow(1))
	assert.Equal(t, z.Inverse(), z.Pow(-1))
	assert.Equal(t, complexnum.One, complexnum.New(math.NaN(), 1).Pow(0))
	assert.Equal(t, complexnum.Zero, complexnum.Zero.Pow(2.5))
	assert.True(t, complexnum.Zero.Pow(-2).IsNaN())
	assert.True(t, z.Pow(math.NaN()).IsNaN())

	assertClose(t, cmplx.Pow(z.Complex128(), 2.5), z.Pow(2.5), tolNormal)
	assertClose(t, z.Complex128()*z.Complex128(), z.Pow(2), tolNormal)

	w := complexnum.New(0.5, 1.5)
	assertClose(t, cmplx.Pow(z.Complex128(), w.Complex128()), z.PowComplex(w), tolNormal)

	c := z.Complex128()
	assertClose(t, c*c*c, z.PowInt(3), tolStrict)
	assertClose(t, 1/(c*c*c*c), z.PowInt(-4), tolStrict)
	assert.Equal(t, complexnum.One, z.PowInt(0))

	assertClose(t, cmplx.Log10(c), z.LogReal(10), tolNormal)
	assertClose(t, cmplx.Log(c)/cmplx.Log(w.Complex128()), z.LogBase(w), tolNormal)
}

// TestComplex_JOperations checks multiplication and division by ±i.
func TestComplex_JOperations(t *testing.T) {
	z := complexnum.New(2, 3)
	assert.Equal(t, z.Times(complexnum.I), z.TimesJ())
	assert.Equal(t, complexnum.New(-6, 4), z.TimesJBy(2))
	assert.Equal(t, z.Times(complexnum.New(0, -1)), z.TimesNegJ())
	assertClose(t, complex(2, 3)/1i, z.DivJ(), tolStrict)
	assertClose(t, complex(2, 3)/2i, z.DivJBy(2), tolStrict)
	assertClose(t, complex(2, 3)/-1i, z.DivNegJ(), tolStrict)
	assert.Equal(t, z, z.Region1())
}

// TestComplex_String checks fmt-like formatting.
func TestComplex_String(t *testing.T) {
	assert.Equal(t, "(1-2i)", complexnum.New(1, -2).String())
	assert.Equal(t, "(0.5+1e+20i)", complexnum.New(0.5, 1e20).String())
	assert.Equal(t, "(NaN+Infi)", complexnum.New(math.NaN(), math.Inf(1)).String())
}

// TestComplex_Arithmetic covers the derived additive operations.
func TestComplex_Arithmetic(t *testing.T) {
	a, b := complexnum.New(1, 2), complexnum.New(-3, 0.5)
	require.Equal(t, complexnum.New(-2, 2.5), a.Plus(b))
	require.Equal(t, complexnum.New(4, 1.5), a.Minus(b))
	require.Equal(t, complexnum.New(3, 2), a.PlusReal(2))
	require.Equal(t, complexnum.New(-1, 2), a.MinusReal(2))
	require.Equal(t, complexnum.New(2, 4), a.TimesReal(2))
	require.Equal(t, complexnum.New(0.5, 1), a.DivReal(2))
	require.Equal(t, a.Minus(b), a.PlusOrMinus(b, true))
	require.Equal(t, a.Plus(b), a.PlusOrMinus(b, false))
	require.Equal(t, complexnum.New(3, 0.5), b.Rectify())
	require.Equal(t, complexnum.New(-1, -2), a.Negative())
}

// TestInMandelbrotBulbs checks the cardioid/bulb shortcut.
func TestInMandelbrotBulbs(t *testing.T) {
	assert.True(t, complexnum.InMandelbrotBulbs(complexnum.Zero))
	assert.True(t, complexnum.InMandelbrotBulbs(complexnum.Real(-1)))
	assert.True(t, complexnum.InMandelbrotBulbs(complexnum.New(0.2, 0.1)))
	assert.False(t, complexnum.InMandelbrotBulbs(complexnum.New(1, 1)))
	assert.False(t, complexnum.InMandelbrotBulbs(complexnum.Real(-2)), "boundary of the set, outside both shapes")
}
