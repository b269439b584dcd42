// SPDX-License-Identifier: MIT

package bnum

import "math"

// Pow returns z^a for a real exponent a.
//
// Implementation:
//   - Stage 1: fast paths (see below), no transcendental calls.
//   - Stage 2: exp(a·log(w)) evaluated on w = m(z) with m = z.Region1Map(),
//     and mapped back with the same m.
//
// Fast paths (in order):
//
//	Pow(z, NaN) = NaN + j·NaN
//	Pow(z, 0)   = 1            for any z, NaN included
//	Pow(z, 1)   = z
//	Pow(z, −1)  = z.Inverse()
//	Pow(0, a)   = 0            for a > 0
//	Pow(0, a)   = 0.Inverse()  for a < 0
//
// Complexity: O(1).
func Pow[T Number[T]](z T, a float64) T {
	if r, ok := powFastPath(z, a); ok {
		return r
	}

	return Region1Mapped(z, z.Region1Map(), func(w T) T {
		return TimesReal(w.Log(), a).Exp()
	})
}

// Sqrt returns Pow(z, 0.5). Systems with a dedicated square-root algorithm
// (complexnum) override it on their own type.
func Sqrt[T Number[T]](z T) T {
	return Pow(z, 0.5)
}

// PowNum returns z^w for an exponent of the same system.
//
// Behavior highlights:
//   - w with a zero y component delegates to Pow(z, w.X()) (and its fast paths).
//   - Zero base: 0 for w.X() > 0, NaN otherwise.
//   - Otherwise exp(w·log(z)) through the region mapping.
func PowNum[T Number[T]](z, w T) T {
	if w.Y() == 0 {
		return Pow(z, w.X())
	}
	if IsZero(z) {
		if w.X() > 0 {
			return z.New(0, 0)
		}

		return z.New(math.NaN(), math.NaN())
	}

	return Region1Mapped(z, z.Region1Map(), func(v T) T {
		return v.Log().Times(w).Exp()
	})
}

// PowInt returns z^n by binary exponentiation.
//
// Behavior highlights:
//   - Exact for the algebra: no log/exp, so negative bases in every system
//     behave as repeated multiplication (no region mapping needed).
//   - n < 0 inverts the positive power.
//   - n == 0 returns 1 for every z.
//
// Complexity: O(log |n|) multiplications.
func PowInt[T Number[T]](z T, n int) T {
	switch n {
	case 0:
		return z.New(1, 0)
	case 1:
		return z
	case -1:
		return z.Inverse()
	}

	var e uint
	if n > 0 {
		e = uint(n)
	} else {
		e = uint(-(n + 1)) + 1 // safe for math.MinInt
	}

	var (
		result T
		have   bool
		base   = z
	)
	for e > 0 {
		if e&1 == 1 {
			if have {
				result = result.Times(base)
			} else {
				result, have = base, true
			}
		}
		e >>= 1
		if e > 0 {
			base = base.Times(base)
		}
	}

	if n < 0 {
		return result.Inverse()
	}

	return result
}

// LogReal returns log(z)/ln(base), the logarithm of z in a real base.
func LogReal[T Number[T]](z T, base float64) T {
	return DivReal(z.Log(), math.Log(base))
}

// LogNum returns log(z)/log(base) for a base of the same system.
func LogNum[T Number[T]](z, base T) T {
	return z.Log().Div(base.Log())
}

// powFastPath resolves the exponents and bases whose result needs no
// transcendental evaluation.
func powFastPath[T Number[T]](z T, a float64) (T, bool) {
	switch {
	case math.IsNaN(a):
		return z.New(math.NaN(), math.NaN()), true
	case a == 0:
		return z.New(1, 0), true
	case a == 1:
		return z, true
	case a == -1:
		return z.Inverse(), true
	case IsZero(z):
		if a > 0 {
			return z.New(0, 0), true
		}

		return z.Inverse(), true
	}

	return z, false
}
