// Package dualnum implements dual numbers x + j·y with j² = 0 as a
// bnum.Number system.
//
// Because j² vanishes, every analytic function collapses to its first-order
// Taylor expansion:
//
//	f(x + j·y) = f(x) + j·y·f'(x)
//
// which gives the closed forms used here:
//
//	exp(x + jy) = eˣ + j·y·eˣ
//	log(x + jy) = ln x + j·y/x
//	sin(x + jy) = sin x + j·y·cos x
//	cos(x + jy) = cos x − j·y·sin x
//
// The y component therefore carries the derivative of f at x, which is what
// makes dual numbers useful for forward-mode differentiation.
//
// Degenerate locus: every point with x = 0 is a zero divisor. Division by
// such a value (and by j itself) yields signed infinities or NaN, never a
// panic. Region1Map reflects values with negative x across the y axis so that
// Pow and Sqrt stay consistent for negative real parts.
package dualnum
