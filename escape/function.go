// SPDX-License-Identifier: MIT

package escape

import "github.com/katalvlaran/binum/bnum"

// Function classifies inputs of a number system as escaped or contained.
// Implementations must be safe for concurrent use.
type Function[T any] interface {
	Evaluate(c T) Result[T]
	// MaxIters is the iteration cap; renderers use it to normalise counts.
	MaxIters() int
}

// DefaultFunction is the evaluator produced by Builder.Build.
// It is immutable; Evaluate allocates its smoothers per call.
type DefaultFunction[T bnum.Number[T]] struct {
	init        InitFunc[T]
	step        StepFunc[T]
	escapeTest  Predicate[T]
	shortcut    Predicate[T]
	includeInit bool
	maxIters    int
	convOn      bool
	convAdjust  float64
	divOn       bool
	divAdjust   float64
}

// MaxIters returns the configured iteration cap.
func (f *DefaultFunction[T]) MaxIters() int { return f.maxIters }

// Evaluate runs the orbit of c.
//
// Steps:
//  1. Shortcut containment → Contained(c) without smoothing.
//  2. z ← init(c); smoothers start at z.
//  3. includeInit: i = 1, feed z; escape on z → Escaped(1).
//  4. Loop while i < maxIters: i++, z ← step(c, z), feed; escape → Escaped(i)
//     with divergence smoothing.
//  5. Contained(z) with convergence smoothing.
//
// Complexity: O(maxIters) calls to step and escapeTest.
func (f *DefaultFunction[T]) Evaluate(c T) Result[T] {
	if f.shortcut != nil && f.shortcut(c) {
		return NewContained(c, 0, false)
	}

	z := f.init(c)
	div := newDivergence[T](f.divOn, f.divAdjust)
	conv := newConvergence(f.convOn, f.convAdjust, z)

	i := 0
	if f.includeInit {
		i = 1
		div.feed(z)
		conv.feed(z)
		if f.escapeTest(z) {
			s, ok := div.finish()

			return NewEscaped(i, z, s, ok)
		}
	}

	for i < f.maxIters {
		i++
		z = f.step(c, z)
		div.feed(z)
		conv.feed(z)
		if f.escapeTest(z) {
			s, ok := div.finish()

			return NewEscaped(i, z, s, ok)
		}
	}

	s, ok := conv.finish()

	return NewContained(z, s, ok)
}
