package complexnum

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// Complex is an immutable complex number x + i·y.
// The zero value is 0+0i.
type Complex struct {
	x, y float64
}

// Named values.
var (
	Zero = Complex{0, 0}
	One  = Complex{1, 0}
	I    = Complex{0, 1}
)

var _ bnum.Number[Complex] = Complex{}

// New returns x + i·y.
func New(x, y float64) Complex { return Complex{x, y} }

// Real returns x + 0i.
func Real(x float64) Complex { return Complex{x, 0} }

// Imaginary returns 0 + i·y.
func Imaginary(y float64) Complex { return Complex{0, y} }

// FromComplex128 converts a built-in complex value.
func FromComplex128(c complex128) Complex { return Complex{real(c), imag(c)} }

// Complex128 converts z to the built-in complex type.
func (z Complex) Complex128() complex128 { return complex(z.x, z.y) }

// X returns the real part.
func (z Complex) X() float64 { return z.x }

// Y returns the imaginary part.
func (z Complex) Y() float64 { return z.y }

// New returns x + i·y; it is the same-system constructor of bnum.Number.
func (Complex) New(x, y float64) Complex { return Complex{x, y} }

// Abs returns |z| = hypot(x, y).
func (z Complex) Abs() float64 { return math.Hypot(z.x, z.y) }

// Abs2 returns x² + y².
func (z Complex) Abs2() float64 { return z.x*z.x + z.y*z.y }

// Arg returns atan2(y, x), in [−π, π], with the branch cut on the negative
// real axis and math.Atan2's conventions for signed zeros and infinities.
func (z Complex) Arg() float64 { return math.Atan2(z.y, z.x) }

// Inverse returns 1/z.
//
// Rules (in order):
//
//	x = y = 0 (any signs)  → NaN + i·NaN
//	y² == 0                → 1/x + 0i
//	x² == 0                → 0 − i/y
//	otherwise              → (x − i·y)/(x² + y²)
func (z Complex) Inverse() Complex {
	switch {
	case z.x == 0 && z.y == 0:
		return Complex{math.NaN(), math.NaN()}
	case z.y*z.y == 0:
		return Complex{1 / z.x, 0}
	case z.x*z.x == 0:
		return Complex{0, -1 / z.y}
	}
	d := z.x*z.x + z.y*z.y

	return Complex{z.x / d, -z.y / d}
}

// TimesJ returns i·z.
func (z Complex) TimesJ() Complex { return Complex{-z.y, z.x} }

// TimesJBy returns z·(i·v).
func (z Complex) TimesJBy(v float64) Complex { return Complex{-z.y * v, z.x * v} }

// TimesNegJ returns −i·z.
func (z Complex) TimesNegJ() Complex { return Complex{z.y, -z.x} }

// DivJ returns z/i.
func (z Complex) DivJ() Complex { return Complex{z.y, -z.x} }

// DivJBy returns z/(i·v).
func (z Complex) DivJBy(v float64) Complex { return Complex{z.y / v, -z.x / v} }

// DivNegJ returns z/(−i).
func (z Complex) DivNegJ() Complex { return Complex{-z.y, z.x} }

// Region1Map returns the identity: the complex plane has a single region.
func (Complex) Region1Map() bnum.Mapping[Complex] { return bnum.Identity[Complex] }

// Region1 returns z.
func (z Complex) Region1() Complex { return z }

// Negative returns −z.
func (z Complex) Negative() Complex { return bnum.Negative(z) }

// Conjugate returns x − i·y.
func (z Complex) Conjugate() Complex { return bnum.Conjugate(z) }

// Rectify returns |x| + i·|y|.
func (z Complex) Rectify() Complex { return bnum.Rectify(z) }

// Plus returns z + w.
func (z Complex) Plus(w Complex) Complex { return bnum.Plus(z, w) }

// PlusReal returns z + v.
func (z Complex) PlusReal(v float64) Complex { return bnum.PlusReal(z, v) }

// Minus returns z − w.
func (z Complex) Minus(w Complex) Complex { return bnum.Minus(z, w) }

// MinusReal returns z − v.
func (z Complex) MinusReal(v float64) Complex { return bnum.MinusReal(z, v) }

// TimesReal returns z·v.
func (z Complex) TimesReal(v float64) Complex { return bnum.TimesReal(z, v) }

// DivReal returns z/v.
func (z Complex) DivReal(v float64) Complex { return bnum.DivReal(z, v) }

// PlusOrMinus returns z − w when negate is set, z + w otherwise.
func (z Complex) PlusOrMinus(w Complex, negate bool) Complex {
	return bnum.PlusOrMinus(z, w, negate)
}

// IsNaN reports whether either part is NaN.
func (z Complex) IsNaN() bool { return bnum.IsNaN(z) }

// IsInfinite reports whether z is not NaN and either part is infinite.
func (z Complex) IsInfinite() bool { return bnum.IsInfinite(z) }

// IsZero reports whether both parts are ±0.
func (z Complex) IsZero() bool { return bnum.IsZero(z) }

// Equal reports bit-exact equality of both parts.
func (z Complex) Equal(w Complex) bool { return bnum.Equal(z, w) }

// Hash returns a hash consistent with Equal.
func (z Complex) Hash() uint64 { return bnum.Hash(z) }

// Key returns the bit-pattern map key of z.
func (z Complex) Key() bnum.Key { return bnum.KeyOf(z) }

// String formats z like fmt does complex128, e.g. "(1+2i)".
func (z Complex) String() string { return bnum.Format(z, "i") }
