// SPDX-License-Identifier: MIT

package bnum

// Number is the primitive contract of a binary number system.
//
// T is the concrete value type itself (e.g. complexnum.Complex), so every
// operation returns the same system it started in. Implementations MUST be
// immutable value types: no method may modify the receiver.
//
// Primitives:
//   - X, Y        — raw components.
//   - New(x, y)   — same-system constructor, used by the generic defaults.
//   - Abs, Abs2, Arg, Inverse — each system defines its own metric and inverse.
//   - TimesJ, TimesJBy(y), TimesNegJ — multiplication by j, j·y and −j.
//   - DivJ, DivJBy(y), DivNegJ       — division by j, j·y and −j.
//   - Times, Div  — multiplication and division by another value of T.
//   - Log, Exp, Sin, Cos, Sinh, Cosh — elementary transcendental functions.
//   - Region1Map  — the self-inverse Mapping that sends this value into the
//     system's canonical region (Identity when it is already canonical or
//     cannot be mapped). It is chosen from the receiver once, so the same
//     function can map a result back.
//
// Everything else (Tan, Pow, Sqrt, LogReal, ...) is derived in this package.
type Number[T any] interface {
	X() float64
	Y() float64
	New(x, y float64) T

	Abs() float64
	Abs2() float64
	Arg() float64
	Inverse() T

	TimesJ() T
	TimesJBy(y float64) T
	TimesNegJ() T
	DivJ() T
	DivJBy(y float64) T
	DivNegJ() T

	Times(other T) T
	Div(other T) T

	Log() T
	Exp() T
	Sin() T
	Cos() T
	Sinh() T
	Cosh() T

	Region1Map() Mapping[T]
}

// Mapping is a self-inverse map of a number system onto itself, used as the
// region strategy of Region1Mapped.
type Mapping[T any] func(T) T

// Identity returns z unchanged. It is the region strategy of systems without
// regions (complex numbers).
func Identity[T any](z T) T { return z }

// Region1Mapped maps z into region 1 with m, applies op, and maps the result
// back with the same m.
//
// m must be chosen from z (see Number.Region1Map), never from the result: op
// returns a region 1 value, so re-selecting the map there would always pick
// the identity. A nil m applies op directly.
func Region1Mapped[T any](z T, m Mapping[T], op func(T) T) T {
	if m == nil {
		return op(z)
	}

	return m(op(m(z)))
}
