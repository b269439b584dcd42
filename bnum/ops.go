// SPDX-License-Identifier: MIT

package bnum

import "math"

// Negative returns −z = (−x, −y).
func Negative[T Number[T]](z T) T {
	return z.New(-z.X(), -z.Y())
}

// Conjugate returns x − j·y.
func Conjugate[T Number[T]](z T) T {
	return z.New(z.X(), -z.Y())
}

// Rectify returns |x| + j·|y|.
func Rectify[T Number[T]](z T) T {
	return z.New(math.Abs(z.X()), math.Abs(z.Y()))
}

// Plus returns a + b.
func Plus[T Number[T]](a, b T) T {
	return a.New(a.X()+b.X(), a.Y()+b.Y())
}

// PlusReal returns z + v.
func PlusReal[T Number[T]](z T, v float64) T {
	return z.New(z.X()+v, z.Y())
}

// Minus returns a − b.
func Minus[T Number[T]](a, b T) T {
	return a.New(a.X()-b.X(), a.Y()-b.Y())
}

// MinusReal returns z − v.
func MinusReal[T Number[T]](z T, v float64) T {
	return z.New(z.X()-v, z.Y())
}

// TimesReal returns z·v, scaling both components.
func TimesReal[T Number[T]](z T, v float64) T {
	return z.New(z.X()*v, z.Y()*v)
}

// DivReal returns z/v, dividing both components.
func DivReal[T Number[T]](z T, v float64) T {
	return z.New(z.X()/v, z.Y()/v)
}

// DivByInverse returns a·b⁻¹. Systems without a dedicated division
// algorithm use it as their Div.
func DivByInverse[T Number[T]](a, b T) T {
	return a.Times(b.Inverse())
}

// PlusOrMinus returns z − v when negate is set and z + v otherwise.
// It keeps alternating-series loops branch-free at the call site:
//
//	sum := zero
//	for k := 0; k < n; k++ {
//		sum = bnum.PlusOrMinus(sum, term(k), k%2 == 1)
//	}
func PlusOrMinus[T Number[T]](z, v T, negate bool) T {
	if negate {
		return Minus(z, v)
	}

	return Plus(z, v)
}
