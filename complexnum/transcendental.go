package complexnum

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// LogAbs returns ln|z| without forming x² + y².
//
// With L = max(|x|, |y|) and S = min(|x|, |y|):
//
//	ln|z| = ln(L) + ½·ln1p((S/L)²)
//
// The ratio is always ≤ 1, so the square never overflows and ln1p keeps full
// precision when |z| is close to 1 (where ln(hypot) loses every digit).
func (z Complex) LogAbs() float64 {
	l, s := math.Abs(z.x), math.Abs(z.y)
	if s > l {
		l, s = s, l
	}
	switch {
	case math.IsInf(l, 0) || math.IsInf(s, 0):
		return math.Inf(1)
	case math.IsNaN(l) || math.IsNaN(s):
		return math.NaN()
	case l == 0:
		return math.Inf(-1)
	}
	r := s / l

	return math.Log(l) + 0.5*math.Log1p(r*r)
}

// Log returns the principal logarithm LogAbs + i·Arg.
func (z Complex) Log() Complex { return Complex{z.LogAbs(), z.Arg()} }

// Exp returns eˣ(cos y + i·sin y). A real argument stays exactly real.
func (z Complex) Exp() Complex {
	if z.y == 0 {
		return Complex{math.Exp(z.x), z.y}
	}
	r := math.Exp(z.x)
	s, c := math.Sincos(z.y)

	return Complex{r * c, r * s}
}

// Sin returns sin x·cosh y + i·cos x·sinh y.
func (z Complex) Sin() Complex {
	if z.x == 0 {
		return Complex{z.x, math.Sinh(z.y)}
	}
	s, c := math.Sincos(z.x)

	return Complex{s * math.Cosh(z.y), c * math.Sinh(z.y)}
}

// Cos returns cos x·cosh y − i·sin x·sinh y.
func (z Complex) Cos() Complex {
	if z.x == 0 {
		return Complex{math.Cosh(z.y), -z.x * math.Copysign(1, z.y)}
	}
	s, c := math.Sincos(z.x)

	return Complex{c * math.Cosh(z.y), -s * math.Sinh(z.y)}
}

// Sinh returns sinh x·cos y + i·cosh x·sin y.
func (z Complex) Sinh() Complex {
	if z.y == 0 {
		return Complex{math.Sinh(z.x), z.y}
	}
	s, c := math.Sincos(z.y)

	return Complex{math.Sinh(z.x) * c, math.Cosh(z.x) * s}
}

// Cosh returns cosh x·cos y + i·sinh x·sin y.
func (z Complex) Cosh() Complex {
	if z.y == 0 {
		return Complex{math.Cosh(z.x), z.y * math.Copysign(1, z.x)}
	}
	s, c := math.Sincos(z.y)

	return Complex{math.Cosh(z.x) * c, math.Sinh(z.x) * s}
}

// Tan returns sin z / cos z.
func (z Complex) Tan() Complex { return bnum.Tan(z) }

// Cot returns cos z / sin z.
func (z Complex) Cot() Complex { return bnum.Cot(z) }

// Sec returns 1/cos z.
func (z Complex) Sec() Complex { return bnum.Sec(z) }

// Csc returns 1/sin z.
func (z Complex) Csc() Complex { return bnum.Csc(z) }

// Tanh returns sinh z / cosh z.
func (z Complex) Tanh() Complex { return bnum.Tanh(z) }

// Coth returns cosh z / sinh z.
func (z Complex) Coth() Complex { return bnum.Coth(z) }

// Sech returns 1/cosh z.
func (z Complex) Sech() Complex { return bnum.Sech(z) }

// Csch returns 1/sinh z.
func (z Complex) Csch() Complex { return bnum.Csch(z) }

// Pow returns z^a via exp(a·log z), with the fast paths of bnum.Pow.
func (z Complex) Pow(a float64) Complex { return bnum.Pow(z, a) }

// PowInt returns z^n by repeated squaring.
func (z Complex) PowInt(n int) Complex { return bnum.PowInt(z, n) }

// PowComplex returns z^w.
func (z Complex) PowComplex(w Complex) Complex { return bnum.PowNum(z, w) }

// LogReal returns the logarithm of z in a real base.
func (z Complex) LogReal(base float64) Complex { return bnum.LogReal(z, base) }

// LogBase returns log(z)/log(base).
func (z Complex) LogBase(base Complex) Complex { return bnum.LogNum(z, base) }

// Sqrt returns the principal square root (Friedland's algorithm).
//
//	t = √((|x| + |z|)/2)
//	x ≥ 0: t + i·y/(2t)
//	x < 0: |y|/(2t) + i·sign(y)·t
//
// A zero imaginary part delegates to the real square root:
// √x + 0i for x ≥ 0, 0 + i√|x| otherwise.
func (z Complex) Sqrt() Complex {
	switch {
	case math.IsInf(z.y, 0):
		return Complex{math.Inf(1), z.y}
	case z.IsNaN():
		return Complex{math.NaN(), math.NaN()}
	case z.y == 0:
		return sqrtReal(z.x)
	}
	ax := math.Abs(z.x)
	h := ax + math.Hypot(z.x, z.y)
	var t float64
	if math.IsInf(h, 1) {
		// (|x| + |z|)/2 itself may overflow; take the root of a quarter of it.
		t = math.Sqrt(ax/4+math.Hypot(z.x/4, z.y/4)) * math.Sqrt2
	} else {
		t = math.Sqrt(h / 2)
	}
	if z.x >= 0 {
		return Complex{t, z.y / (2 * t)}
	}

	return Complex{math.Abs(z.y) / (2 * t), math.Copysign(t, z.y)}
}

// sqrtReal is the complex square root of a real number.
func sqrtReal(x float64) Complex {
	if x >= 0 {
		return Complex{math.Sqrt(x), 0}
	}

	return Complex{0, math.Sqrt(-x)}
}
