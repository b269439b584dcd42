package complexnum

import "math"

// Times returns z·w.
//
// The naive product (ac − bd) + i(ad + bc) yields NaN + i·NaN whenever an
// infinite component meets a zero (∞·0). When both parts come out NaN, the
// C99 Annex G recovery runs:
//   - an infinite operand is boxed: infinite parts become ±1, finite parts ±0,
//     and NaN parts of the other operand become ±0;
//   - if neither operand is infinite but a partial product overflowed, NaNs of
//     both operands become ±0;
//   - the product is recomputed and scaled by +Inf.
func (z Complex) Times(w Complex) Complex {
	a, b, c, d := z.x, z.y, w.x, w.y
	ac, bd := a*c, b*d
	ad, bc := a*d, b*c
	x, y := ac-bd, ad+bc
	if !math.IsNaN(x) || !math.IsNaN(y) {
		return Complex{x, y}
	}

	recalc := false
	if isInf(a) || isInf(b) {
		a, b = box(a), box(b)
		c, d = nanToZero(c), nanToZero(d)
		recalc = true
	}
	if isInf(c) || isInf(d) {
		c, d = box(c), box(d)
		a, b = nanToZero(a), nanToZero(b)
		recalc = true
	}
	if !recalc && (isInf(ac) || isInf(bd) || isInf(ad) || isInf(bc)) {
		a, b = nanToZero(a), nanToZero(b)
		c, d = nanToZero(c), nanToZero(d)
		recalc = true
	}
	if recalc {
		inf := math.Inf(1)
		x = inf * (a*c - b*d)
		y = inf * (a*d + b*c)
	}

	return Complex{x, y}
}

// Div returns z/w.
//
// Implementation:
//   - Stage 1: Smith's algorithm; the larger of |Re w|, |Im w| is the pivot so
//     the ratio r stays in [−1, 1] and the denominator does not cancel.
//   - Stage 2: when both parts are NaN, Annex G recovery:
//     nonzero / ±0           → signed infinity scaled by the numerator,
//     infinite / finite      → boxed numerator, scaled by +Inf,
//     finite / infinite      → boxed divisor, scaled by 0.
//
// Note that Div(One, Zero) is infinite while Zero.Inverse() is NaN: Inverse
// keeps its own documented rules.
func (z Complex) Div(w Complex) Complex {
	a, b, c, d := z.x, z.y, w.x, w.y

	var x, y float64
	if math.Abs(c) >= math.Abs(d) {
		r := d / c
		den := c + d*r
		x = (a + b*r) / den
		y = (b - a*r) / den
	} else {
		r := c / d
		den := c*r + d
		x = (a*r + b) / den
		y = (b*r - a) / den
	}
	if !math.IsNaN(x) || !math.IsNaN(y) {
		return Complex{x, y}
	}

	switch {
	case c == 0 && d == 0 && (!math.IsNaN(a) || !math.IsNaN(b)):
		inf := math.Copysign(math.Inf(1), c)
		x, y = inf*a, inf*b
	case (isInf(a) || isInf(b)) && isFinite(c) && isFinite(d):
		a, b = box(a), box(b)
		inf := math.Inf(1)
		x = inf * (a*c + b*d)
		y = inf * (b*c - a*d)
	case (isInf(c) || isInf(d)) && isFinite(a) && isFinite(b):
		c, d = box(c), box(d)
		x = 0 * (a*c + b*d)
		y = 0 * (b*c - a*d)
	}

	return Complex{x, y}
}

// box maps ±Inf to ±1 and everything else to a zero of the same sign.
func box(v float64) float64 {
	if isInf(v) {
		return math.Copysign(1, v)
	}

	return math.Copysign(0, v)
}

// nanToZero replaces NaN by a zero of the same sign.
func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return math.Copysign(0, v)
	}

	return v
}

func isInf(v float64) bool    { return math.IsInf(v, 0) }
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
