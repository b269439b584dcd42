package dualnum

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// Dual is an immutable dual number x + j·y with j² = 0.
// The zero value is 0+0j.
type Dual struct {
	x, y float64
}

// Named values.
var (
	Zero = Dual{0, 0}
	One  = Dual{1, 0}
	J    = Dual{0, 1}
)

var _ bnum.Number[Dual] = Dual{}

// New returns x + j·y.
func New(x, y float64) Dual { return Dual{x, y} }

// Real returns x + 0j.
func Real(x float64) Dual { return Dual{x, 0} }

// Epsilon returns 0 + j·y, a pure infinitesimal.
func Epsilon(y float64) Dual { return Dual{0, y} }

// Variable returns x + 1j, the seed value for differentiating at x.
func Variable(x float64) Dual { return Dual{x, 1} }

// X returns the real part.
func (z Dual) X() float64 { return z.x }

// Y returns the infinitesimal part.
func (z Dual) Y() float64 { return z.y }

// New returns x + j·y; it is the same-system constructor of bnum.Number.
func (Dual) New(x, y float64) Dual { return Dual{x, y} }

// Abs returns |x|; the infinitesimal part has no magnitude.
func (z Dual) Abs() float64 { return math.Abs(z.x) }

// Abs2 returns x².
func (z Dual) Abs2() float64 { return z.x * z.x }

// Arg returns y/x, the slope of z.
func (z Dual) Arg() float64 { return z.y / z.x }

// Times returns (ac) + j(ad + bc).
func (z Dual) Times(w Dual) Dual {
	return Dual{z.x * w.x, z.x*w.y + z.y*w.x}
}

// Div returns a/c + j(bc − ad)/c².
// A divisor with c = 0 lies on the zero-divisor locus; the IEEE result
// (signed infinities or NaN) is returned as is.
func (z Dual) Div(w Dual) Dual {
	return Dual{z.x / w.x, (z.y*w.x - z.x*w.y) / (w.x * w.x)}
}

// Inverse returns 1/x − j·y/x². Both parts zero yields NaN + j·NaN.
func (z Dual) Inverse() Dual {
	if z.x == 0 && z.y == 0 {
		return Dual{math.NaN(), math.NaN()}
	}

	return Dual{1 / z.x, -z.y / (z.x * z.x)}
}

// TimesJ returns j·z = 0 + j·x.
func (z Dual) TimesJ() Dual { return Dual{0, z.x} }

// TimesJBy returns z·(j·v).
func (z Dual) TimesJBy(v float64) Dual { return Dual{0, z.x * v} }

// TimesNegJ returns −j·z.
func (z Dual) TimesNegJ() Dual { return Dual{0, -z.x} }

// DivJ returns z/j. See DivJBy.
func (z Dual) DivJ() Dual { return z.DivJBy(1) }

// DivJBy returns z/(j·v).
//
// j·v is a zero divisor, so the quotient only exists as the limit of
// z/(ε + j·v) for ε → 0⁺: the real part tends to sign(x)·∞ and the
// infinitesimal part to −sign(x)·sign(v)·∞. When x or v is 0 or NaN the
// limit does not exist and NaN + j·NaN is returned.
func (z Dual) DivJBy(v float64) Dual {
	if z.x == 0 || math.IsNaN(z.x) || v == 0 || math.IsNaN(v) {
		return Dual{math.NaN(), math.NaN()}
	}
	re := math.Copysign(math.Inf(1), z.x)
	im := -re * math.Copysign(1, v)

	return Dual{re, im}
}

// DivNegJ returns z/(−j).
func (z Dual) DivNegJ() Dual { return z.DivJBy(-1) }

// Region1Map returns the reflection (x, y) → (−x, y) for x < 0 and the
// identity otherwise. The reflection is its own inverse, so a power computed
// on the reflected value is reflected back to a negative real part.
func (z Dual) Region1Map() bnum.Mapping[Dual] {
	if z.x < 0 {
		return negateX
	}

	return bnum.Identity[Dual]
}

// Region1 returns z.Region1Map() applied to z.
func (z Dual) Region1() Dual { return z.Region1Map()(z) }

func negateX(z Dual) Dual { return Dual{-z.x, z.y} }

// Exp returns eˣ + j·y·eˣ.
func (z Dual) Exp() Dual {
	e := math.Exp(z.x)

	return Dual{e, z.y * e}
}

// Log returns ln x + j·y/x. Negative x gives a NaN real part; Pow and
// Sqrt avoid this through Region1Map.
func (z Dual) Log() Dual {
	return Dual{math.Log(z.x), z.y / z.x}
}

// Sin returns sin x + j·y·cos x.
func (z Dual) Sin() Dual {
	s, c := math.Sincos(z.x)

	return Dual{s, z.y * c}
}

// Cos returns cos x − j·y·sin x.
func (z Dual) Cos() Dual {
	s, c := math.Sincos(z.x)

	return Dual{c, -z.y * s}
}

// Sinh returns sinh x + j·y·cosh x.
func (z Dual) Sinh() Dual {
	return Dual{math.Sinh(z.x), z.y * math.Cosh(z.x)}
}

// Cosh returns cosh x + j·y·sinh x.
func (z Dual) Cosh() Dual {
	return Dual{math.Cosh(z.x), z.y * math.Sinh(z.x)}
}

// Tan returns sin z / cos z.
func (z Dual) Tan() Dual { return bnum.Tan(z) }

// Tanh returns sinh z / cosh z.
func (z Dual) Tanh() Dual { return bnum.Tanh(z) }

// Pow returns z^a through the region mapping.
func (z Dual) Pow(a float64) Dual { return bnum.Pow(z, a) }

// PowInt returns z^n by repeated squaring.
func (z Dual) PowInt(n int) Dual { return bnum.PowInt(z, n) }

// Sqrt returns Pow(z, 0.5).
func (z Dual) Sqrt() Dual { return bnum.Sqrt(z) }

// Negative returns −z.
func (z Dual) Negative() Dual { return bnum.Negative(z) }

// Conjugate returns x − j·y.
func (z Dual) Conjugate() Dual { return bnum.Conjugate(z) }

// Plus returns z + w.
func (z Dual) Plus(w Dual) Dual { return bnum.Plus(z, w) }

// PlusReal returns z + v.
func (z Dual) PlusReal(v float64) Dual { return bnum.PlusReal(z, v) }

// Minus returns z − w.
func (z Dual) Minus(w Dual) Dual { return bnum.Minus(z, w) }

// TimesReal returns z·v.
func (z Dual) TimesReal(v float64) Dual { return bnum.TimesReal(z, v) }

// IsNaN reports whether either part is NaN.
func (z Dual) IsNaN() bool { return bnum.IsNaN(z) }

// IsInfinite reports whether z is not NaN and either part is infinite.
func (z Dual) IsInfinite() bool { return bnum.IsInfinite(z) }

// Equal reports bit-exact equality of both parts.
func (z Dual) Equal(w Dual) bool { return bnum.Equal(z, w) }

// Hash returns a hash consistent with Equal.
func (z Dual) Hash() uint64 { return bnum.Hash(z) }

// String formats z as "(x+yε)".
func (z Dual) String() string { return bnum.Format(z, "ε") }

// Derivative evaluates f at x + 1j and returns f(x) and f'(x).
//
// f must be built from Dual operations only; every closed form above
// propagates the derivative through the infinitesimal part.
func Derivative(f func(Dual) Dual, x float64) (value, slope float64) {
	r := f(Variable(x))

	return r.x, r.y
}
