// SPDX-License-Identifier: MIT

package escape

import "fmt"

// Result is the outcome of evaluating one input.
//
// Invariants:
//   - Escaped ⇒ Iters ≥ 1.
//   - !Escaped ⇒ Iters == 0.
//   - Smoothing is meaningful only when Smoothed is true.
type Result[T any] struct {
	// Escaped reports whether the escape test fired before the cap.
	Escaped bool
	// Iters is the iteration at which the escape test fired; 0 when contained.
	Iters int
	// Z is the last iterate (c itself when a shortcut fired).
	Z T
	// Smoothing is the accumulated continuous value of the active smoother.
	Smoothing float64
	// Smoothed is true when the matching smoothing mode was enabled and ran.
	Smoothed bool
}

// NewEscaped returns an escaped result. iters must be ≥ 1.
func NewEscaped[T any](iters int, z T, smoothing float64, smoothed bool) Result[T] {
	return Result[T]{Escaped: true, Iters: iters, Z: z, Smoothing: smoothing, Smoothed: smoothed}
}

// NewContained returns a contained result.
func NewContained[T any](z T, smoothing float64, smoothed bool) Result[T] {
	return Result[T]{Z: z, Smoothing: smoothing, Smoothed: smoothed}
}

// String renders a short human-readable summary.
func (r Result[T]) String() string {
	state := "contained"
	if r.Escaped {
		state = fmt.Sprintf("escaped@%d", r.Iters)
	}
	if r.Smoothed {
		return fmt.Sprintf("%s z=%v smoothing=%g", state, r.Z, r.Smoothing)
	}

	return fmt.Sprintf("%s z=%v", state, r.Z)
}
