// SPDX-License-Identifier: MIT

package splitnum

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// SplitComplex is an immutable split-complex number x + j·y with j² = +1.
// The zero value is 0+0j.
type SplitComplex struct {
	x, y float64
}

// Named values.
var (
	Origin = SplitComplex{0, 0}
	One    = SplitComplex{1, 0}
	J      = SplitComplex{0, 1}
)

var _ bnum.Number[SplitComplex] = SplitComplex{}

func nan() float64 { return math.NaN() }

// New returns x + j·y.
func New(x, y float64) SplitComplex { return SplitComplex{x, y} }

// Real returns x + 0j.
func Real(x float64) SplitComplex { return SplitComplex{x, 0} }

// Hyperbolic returns r·(cosh θ + j·sinh θ), the region I point with
// modulus r and hyperbolic angle θ.
func Hyperbolic(r, theta float64) SplitComplex {
	return SplitComplex{r * math.Cosh(theta), r * math.Sinh(theta)}
}

// X returns the real part.
func (z SplitComplex) X() float64 { return z.x }

// Y returns the hyperbolic part.
func (z SplitComplex) Y() float64 { return z.y }

// New returns x + j·y; it is the same-system constructor of bnum.Number.
func (SplitComplex) New(x, y float64) SplitComplex { return SplitComplex{x, y} }

// Modulus2 returns x² − y², computed as (x+y)(x−y). Negative in regions II
// and IV, zero on the null lines.
func (z SplitComplex) Modulus2() float64 { return (z.x + z.y) * (z.x - z.y) }

// Abs2 returns |x² − y²|.
func (z SplitComplex) Abs2() float64 { return math.Abs(z.Modulus2()) }

// Abs returns √|x² − y²|.
func (z SplitComplex) Abs() float64 { return math.Sqrt(z.Abs2()) }

// Arg returns the hyperbolic angle atanh(y'/x') of z' = z.Region1(),
// and 0 at the origin. It is ±Inf on the null lines.
func (z SplitComplex) Arg() float64 {
	if z.x == 0 && z.y == 0 {
		return 0
	}
	w := z.Region1()

	return math.Atanh(w.y / w.x)
}

// Times returns (ac + bd) + j(ad + bc).
func (z SplitComplex) Times(w SplitComplex) SplitComplex {
	return SplitComplex{z.x*w.x + z.y*w.y, z.x*w.y + z.y*w.x}
}

// Div returns z·w⁻¹. Division by a null vector yields NaN + j·NaN.
func (z SplitComplex) Div(w SplitComplex) SplitComplex { return bnum.DivByInverse(z, w) }

// Inverse returns (x − j·y)/(x² − y²), or NaN + j·NaN when x² − y² = 0.
func (z SplitComplex) Inverse() SplitComplex {
	m := z.Modulus2()
	if m == 0 {
		return SplitComplex{nan(), nan()}
	}

	return SplitComplex{z.x / m, -z.y / m}
}

// TimesJ returns j·z = y + j·x, the reflection across y = x.
func (z SplitComplex) TimesJ() SplitComplex { return SplitComplex{z.y, z.x} }

// TimesJBy returns z·(j·v).
func (z SplitComplex) TimesJBy(v float64) SplitComplex { return SplitComplex{z.y * v, z.x * v} }

// TimesNegJ returns −j·z, the reflection across y = −x.
func (z SplitComplex) TimesNegJ() SplitComplex { return SplitComplex{-z.y, -z.x} }

// DivJ returns z/j; j is its own inverse, so this equals TimesJ.
func (z SplitComplex) DivJ() SplitComplex { return SplitComplex{z.y, z.x} }

// DivJBy returns z/(j·v).
func (z SplitComplex) DivJBy(v float64) SplitComplex { return SplitComplex{z.y / v, z.x / v} }

// DivNegJ returns z/(−j).
func (z SplitComplex) DivNegJ() SplitComplex { return SplitComplex{-z.y, -z.x} }

// Region1Map returns the self-inverse map that sends z into region I:
//
//	RegionI    identity
//	RegionII   TimesJ
//	RegionIII  Negative
//	RegionIV   TimesNegJ
//
// Null vectors, zero and NaN get the identity. Applying the returned map to a
// region I result sends it back to z's region.
func (z SplitComplex) Region1Map() bnum.Mapping[SplitComplex] {
	switch z.Classify() {
	case RegionII:
		return SplitComplex.TimesJ
	case RegionIII:
		return SplitComplex.Negative
	case RegionIV:
		return SplitComplex.TimesNegJ
	}

	return bnum.Identity[SplitComplex]
}

// Region1 returns z.Region1Map() applied to z.
func (z SplitComplex) Region1() SplitComplex { return z.Region1Map()(z) }

// LogAbs returns ln √|x² − y²| without forming the squares.
//
// With L = max(|x|, |y|) and S = min(|x|, |y|):
//
//	ln|z| = ln(L) + ½·ln1p(−(S/L)²)
//
// The result tends to −Inf as z approaches a null line and is −Inf on it.
func (z SplitComplex) LogAbs() float64 {
	l, s := math.Abs(z.x), math.Abs(z.y)
	if s > l {
		l, s = s, l
	}
	switch {
	case math.IsNaN(l) || math.IsNaN(s):
		return nan()
	case math.IsInf(l, 0):
		if math.IsInf(s, 0) {
			return nan()
		}

		return math.Inf(1)
	case l == 0:
		return math.Inf(-1)
	}
	r := s / l

	return math.Log(l) + 0.5*math.Log1p(-r*r)
}

// Log returns LogAbs + j·Arg. Both are invariant under Region1, so
// Exp(Log(z)) recovers z only in region I; Pow maps explicitly.
func (z SplitComplex) Log() SplitComplex { return SplitComplex{z.LogAbs(), z.Arg()} }

// Exp returns eˣ·(cosh y + j·sinh y).
func (z SplitComplex) Exp() SplitComplex {
	e := math.Exp(z.x)

	return SplitComplex{e * math.Cosh(z.y), e * math.Sinh(z.y)}
}

// Sin returns sin x·cos y + j·cos x·sin y.
func (z SplitComplex) Sin() SplitComplex {
	sx, cx := math.Sincos(z.x)
	sy, cy := math.Sincos(z.y)

	return SplitComplex{sx * cy, cx * sy}
}

// Cos returns cos x·cos y − j·sin x·sin y.
func (z SplitComplex) Cos() SplitComplex {
	sx, cx := math.Sincos(z.x)
	sy, cy := math.Sincos(z.y)

	return SplitComplex{cx * cy, -sx * sy}
}

// Sinh returns sinh x·cosh y + j·cosh x·sinh y.
func (z SplitComplex) Sinh() SplitComplex {
	return SplitComplex{math.Sinh(z.x) * math.Cosh(z.y), math.Cosh(z.x) * math.Sinh(z.y)}
}

// Cosh returns cosh x·cosh y + j·sinh x·sinh y.
func (z SplitComplex) Cosh() SplitComplex {
	return SplitComplex{math.Cosh(z.x) * math.Cosh(z.y), math.Sinh(z.x) * math.Sinh(z.y)}
}

// Pow returns z^a.
//
// Behavior highlights:
//   - The fast paths of bnum.Pow (a ∈ {NaN, 0, 1, −1}, zero base) come first.
//   - Null vectors t·(1 ± j): t^a·2^(a−1)·(1 ± j). A negative t with a
//     non-integer a has no real power; −|t|^a is used instead, the way
//     Region1 carries the sign for region III.
//   - Otherwise exp(a·log z') on z' = z.Region1(), mapped back with the
//     same z.Region1Map().
func (z SplitComplex) Pow(a float64) SplitComplex {
	if c := z.Classify(); c.IsNullVector() && !math.IsNaN(a) && a != 0 && a != 1 && a != -1 {
		p := math.Pow(z.x, a)
		if math.IsNaN(p) {
			p = -math.Pow(-z.x, a)
		}
		m := p * math.Exp2(a-1)
		if c == PosNullVector {
			return SplitComplex{m, m}
		}

		return SplitComplex{m, -m}
	}

	return bnum.Pow(z, a)
}

// Sqrt returns Pow(z, 0.5).
func (z SplitComplex) Sqrt() SplitComplex { return z.Pow(0.5) }

// PowInt returns z^n by repeated squaring.
func (z SplitComplex) PowInt(n int) SplitComplex { return bnum.PowInt(z, n) }

// Tan returns sin z / cos z.
func (z SplitComplex) Tan() SplitComplex { return bnum.Tan(z) }

// Tanh returns sinh z / cosh z.
func (z SplitComplex) Tanh() SplitComplex { return bnum.Tanh(z) }

// Negative returns −z.
func (z SplitComplex) Negative() SplitComplex { return bnum.Negative(z) }

// Conjugate returns x − j·y.
func (z SplitComplex) Conjugate() SplitComplex { return bnum.Conjugate(z) }

// Plus returns z + w.
func (z SplitComplex) Plus(w SplitComplex) SplitComplex { return bnum.Plus(z, w) }

// Minus returns z − w.
func (z SplitComplex) Minus(w SplitComplex) SplitComplex { return bnum.Minus(z, w) }

// TimesReal returns z·v.
func (z SplitComplex) TimesReal(v float64) SplitComplex { return bnum.TimesReal(z, v) }

// IsNaN reports whether either part is NaN.
func (z SplitComplex) IsNaN() bool { return bnum.IsNaN(z) }

// IsInfinite reports whether z is not NaN and either part is infinite.
func (z SplitComplex) IsInfinite() bool { return bnum.IsInfinite(z) }

// Equal reports bit-exact equality of both parts.
func (z SplitComplex) Equal(w SplitComplex) bool { return bnum.Equal(z, w) }

// Hash returns a hash consistent with Equal.
func (z SplitComplex) Hash() uint64 { return bnum.Hash(z) }

// String formats z as "(x+yj)".
func (z SplitComplex) String() string { return bnum.Format(z, "j") }
