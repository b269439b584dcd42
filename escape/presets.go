// SPDX-License-Identifier: MIT

package escape

import "github.com/katalvlaran/binum/bnum"

// DefaultBailout is the escape radius used by the quadratic presets.
const DefaultBailout = 2.0

// Quadratic returns z² + k.
func Quadratic[T bnum.Number[T]](z, k T) T {
	return bnum.Plus(z.Times(z), k)
}

// RadiusEscape returns a test that fires when |z|² > radius². The strict
// comparison keeps orbits that settle exactly on the circle (c = −2 for
// z² + c) contained.
func RadiusEscape[T bnum.Number[T]](radius float64) Predicate[T] {
	r2 := radius * radius

	return func(z T) bool { return z.Abs2() > r2 }
}

// Mandelbrot returns a Builder for z ← z² + c with z₁ = c counted as the
// first iteration. Callers may refine it (shortcut, smoothing) before Build.
func Mandelbrot[T bnum.Number[T]](maxIters int, bailout float64) Builder[T] {
	return NewBuilder[T]().
		IncludeInit().
		Step(func(c, z T) T { return Quadratic(z, c) }).
		EscapeTest(RadiusEscape[T](bailout)).
		MaxIters(maxIters)
}

// Julia returns a Builder for z ← z² + k starting at z₀ = c, counted as the
// first iteration.
func Julia[T bnum.Number[T]](k T, maxIters int, bailout float64) Builder[T] {
	return NewBuilder[T]().
		IncludeInit().
		Step(func(_, z T) T { return Quadratic(z, k) }).
		EscapeTest(RadiusEscape[T](bailout)).
		MaxIters(maxIters)
}
