package complexnum

import "math"

// Crossover constants of the Hull–Fairgrieve–Tang algorithm.
const (
	// ACrossover bounds a = (|z+1| + |z−1|)/2 below which the imaginary part
	// is computed through ln1p to avoid cancellation in a − 1.
	ACrossover = 1.5

	// BCrossover bounds b = |x|/a above which asin(b)/acos(b) lose accuracy and
	// the real part is computed through atan instead.
	BCrossover = 0.6417
)

// sqrtMax is a threshold above which a² overflows.
var sqrtMax = math.Sqrt(math.MaxFloat64) / 2

// Asin returns the principal inverse sine.
//
// Real arguments with |x| ≤ 1 delegate to math.Asin. Otherwise Hull et al.
// (1997): with r = |z+1|, s = |z−1|, a = (r+s)/2, b = |x|/a, the real part is
// asin(b) when b ≤ BCrossover and an atan form otherwise; the imaginary part is
// ln1p(am1 + √(am1·(a+1))) when a ≤ ACrossover (am1 = a − 1 computed without
// cancellation) and ln(a + √(a²−1)) otherwise. Signs follow the input.
func (z Complex) Asin() Complex {
	if z.y == 0 && math.Abs(z.x) <= 1 {
		return Complex{math.Asin(z.x), z.y}
	}
	if re, im, ok := asinSpecial(z); ok {
		return Complex{re, im}
	}
	h := newHull(z)

	var re float64
	if h.b <= BCrossover {
		re = math.Asin(h.b)
	} else {
		apx := h.a + h.x
		if h.x <= 1 {
			re = math.Atan(h.x / math.Sqrt(0.5*apx*(h.yy/(h.r+h.xp1)+(h.s-h.xm1))))
		} else {
			re = math.Atan(h.x / (h.y * math.Sqrt(0.5*(apx/(h.r+h.xp1)+apx/(h.s+h.xm1)))))
		}
	}

	return Complex{math.Copysign(re, z.x), math.Copysign(h.imag(), z.y)}
}

// Acos returns the principal inverse cosine, with the same case analysis as
// Asin. The real part lies in [0, π]; the imaginary part has the opposite sign
// of y.
func (z Complex) Acos() Complex {
	if z.y == 0 && math.Abs(z.x) <= 1 {
		return Complex{math.Acos(z.x), -z.y}
	}
	if re, im, ok := acosSpecial(z); ok {
		return Complex{re, im}
	}
	h := newHull(z)

	var re float64
	if h.b <= BCrossover {
		re = math.Acos(h.b)
	} else {
		apx := h.a + h.x
		if h.x <= 1 {
			re = math.Atan(math.Sqrt(0.5*apx*(h.yy/(h.r+h.xp1)+(h.s-h.xm1))) / h.x)
		} else {
			re = math.Atan(h.y * math.Sqrt(0.5*(apx/(h.r+h.xp1)+apx/(h.s+h.xm1))) / h.x)
		}
	}
	if z.x < 0 {
		re = math.Pi - re
	}

	return Complex{re, -math.Copysign(h.imag(), z.y)}
}

// Atan returns the principal inverse tangent, (i/2)·(log(1 − iz) − log(1 + iz)).
func (z Complex) Atan() Complex {
	iz := z.TimesJ()

	return One.Minus(iz).Log().Minus(One.Plus(iz).Log()).TimesJ().TimesReal(0.5)
}

// Asinh returns the inverse hyperbolic sine, −i·asin(iz).
func (z Complex) Asinh() Complex { return z.TimesJ().Asin().TimesNegJ() }

// Acosh returns the inverse hyperbolic cosine, log(z + √(z+1)·√(z−1)).
func (z Complex) Acosh() Complex {
	return z.Plus(z.PlusReal(1).Sqrt().Times(z.MinusReal(1).Sqrt())).Log()
}

// Atanh returns the inverse hyperbolic tangent, −i·atan(iz).
func (z Complex) Atanh() Complex { return z.TimesJ().Atan().TimesNegJ() }

// hull holds the intermediate quantities shared by Asin and Acos, computed on
// |x| and |y|.
type hull struct {
	x, y     float64
	xp1, xm1 float64
	yy       float64
	r, s     float64 // |z+1|, |z−1|
	a, b     float64
}

func newHull(z Complex) hull {
	h := hull{x: math.Abs(z.x), y: math.Abs(z.y)}
	h.xp1 = 1 + h.x
	h.xm1 = h.x - 1
	h.yy = h.y * h.y
	h.r = math.Hypot(h.xp1, h.y)
	h.s = math.Hypot(h.xm1, h.y)
	h.a = 0.5 * (h.r + h.s)
	h.b = h.x / h.a

	return h
}

// imag returns the (unsigned) imaginary part ln(a + √(a² − 1)).
func (h hull) imag() float64 {
	if h.a <= ACrossover {
		var am1 float64
		if h.x < 1 {
			am1 = 0.5 * (h.yy/(h.r+h.xp1) + h.yy/(h.s-h.xm1))
		} else {
			am1 = 0.5 * (h.yy/(h.r+h.xp1) + (h.s + h.xm1))
		}

		return math.Log1p(am1 + math.Sqrt(am1*(h.a+1)))
	}
	if h.a > sqrtMax {
		return math.Ln2 + math.Log(h.a)
	}

	return math.Log(h.a + math.Sqrt(h.a*h.a-1))
}

// asinSpecial resolves NaN and infinite arguments of Asin.
func asinSpecial(z Complex) (re, im float64, ok bool) {
	switch {
	case z.IsNaN():
		if math.IsInf(z.x, 0) || math.IsInf(z.y, 0) {
			return math.NaN(), math.Copysign(math.Inf(1), z.y), true
		}

		return math.NaN(), math.NaN(), true
	case z.IsInfinite():
		re = math.Atan2(math.Abs(z.x), math.Abs(z.y))

		return math.Copysign(re, z.x), math.Copysign(math.Inf(1), z.y), true
	}

	return 0, 0, false
}

// acosSpecial resolves NaN and infinite arguments of Acos.
func acosSpecial(z Complex) (re, im float64, ok bool) {
	switch {
	case z.IsNaN():
		if math.IsInf(z.x, 0) || math.IsInf(z.y, 0) {
			return math.NaN(), -math.Copysign(math.Inf(1), z.y), true
		}

		return math.NaN(), math.NaN(), true
	case z.IsInfinite():
		return math.Atan2(math.Abs(z.y), z.x), -math.Copysign(math.Inf(1), z.y), true
	}

	return 0, 0, false
}
