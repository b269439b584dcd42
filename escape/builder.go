// SPDX-License-Identifier: MIT

package escape

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// Defaults (single source of truth for an unconfigured Builder).
const (
	// DefaultSmoothingFactor is the factor used by EnableConvergenceSmoothing
	// and EnableDivergenceSmoothing; adjust = factor / maxIters.
	DefaultSmoothingFactor = 1.0

	// DefaultIncludeInit leaves init out of the iteration count.
	DefaultIncludeInit = false
)

// InitFunc maps an input c to the starting iterate z₀.
type InitFunc[T any] func(c T) T

// StepFunc computes the next iterate from the input c and the current z.
type StepFunc[T any] func(c, z T) T

// Predicate tests one value; used for escape, containment and shortcut tests.
type Predicate[T any] func(z T) bool

// Builder assembles a DefaultFunction. Every method returns a new Builder;
// the receiver is never modified, so partially configured builders can be
// shared and extended independently.
//
// Defaults:
//   - init: identity (z₀ = c)
//   - shortcutContainmentTest: always false
//   - includeInit: DefaultIncludeInit
//   - smoothing: disabled
//
// Required: Step, MaxIters, and EscapeTest or ContainmentTest.
type Builder[T bnum.Number[T]] struct {
	init        InitFunc[T]
	step        StepFunc[T]
	escapeTest  Predicate[T]
	shortcut    Predicate[T]
	includeInit bool

	maxIters    int
	maxItersSet bool

	convFactor float64
	convOn     bool
	divFactor  float64
	divOn      bool
}

// NewBuilder returns an empty Builder.
func NewBuilder[T bnum.Number[T]]() Builder[T] {
	return Builder[T]{includeInit: DefaultIncludeInit}
}

// Init sets the starting-iterate function. nil restores the identity.
func (b Builder[T]) Init(f InitFunc[T]) Builder[T] {
	b.init = f

	return b
}

// IncludeInit counts z₀ = init(c) as iteration 1 and tests it for escape
// before the first step. Useful when the first step has a closed form,
// e.g. Mandelbrot's z₁ = c.
func (b Builder[T]) IncludeInit() Builder[T] {
	b.includeInit = true

	return b
}

// ShortcutContainmentTest sets a cheap pre-filter: inputs for which it
// reports true are Contained without iterating (and without smoothing).
func (b Builder[T]) ShortcutContainmentTest(p Predicate[T]) Builder[T] {
	b.shortcut = p

	return b
}

// ContainmentTest sets the escape test to ¬p. It shares storage with
// EscapeTest: whichever of the two is called last wins.
func (b Builder[T]) ContainmentTest(p Predicate[T]) Builder[T] {
	if p == nil {
		b.escapeTest = nil

		return b
	}
	b.escapeTest = func(z T) bool { return !p(z) }

	return b
}

// EscapeTest sets the escape test. See ContainmentTest.
func (b Builder[T]) EscapeTest(p Predicate[T]) Builder[T] {
	b.escapeTest = p

	return b
}

// Step sets the iteration function.
func (b Builder[T]) Step(f StepFunc[T]) Builder[T] {
	b.step = f

	return b
}

// MaxIters sets the iteration cap; Build rejects n < 1.
func (b Builder[T]) MaxIters(n int) Builder[T] {
	b.maxIters, b.maxItersSet = n, true

	return b
}

// EnableConvergenceSmoothing enables convergence smoothing with
// DefaultSmoothingFactor.
func (b Builder[T]) EnableConvergenceSmoothing() Builder[T] {
	return b.EnableConvergenceSmoothingFactor(DefaultSmoothingFactor)
}

// EnableConvergenceSmoothingFactor enables convergence smoothing with the
// given factor; Build rejects factors that are not finite and > 0.
func (b Builder[T]) EnableConvergenceSmoothingFactor(factor float64) Builder[T] {
	b.convFactor, b.convOn = factor, true

	return b
}

// EnableDivergenceSmoothing enables divergence smoothing with
// DefaultSmoothingFactor.
func (b Builder[T]) EnableDivergenceSmoothing() Builder[T] {
	return b.EnableDivergenceSmoothingFactor(DefaultSmoothingFactor)
}

// EnableDivergenceSmoothingFactor enables divergence smoothing with the
// given factor; Build rejects factors that are not finite and > 0.
func (b Builder[T]) EnableDivergenceSmoothingFactor(factor float64) Builder[T] {
	b.divFactor, b.divOn = factor, true

	return b
}

// Build validates the configuration and returns the evaluator.
//
// Validation order (first failure wins):
//
//	ErrMissingStep → ErrMissingMaxIters → ErrInvalidMaxIters →
//	ErrMissingEscapeTest → ErrInvalidFactor
//
// Complexity: O(1).
func (b Builder[T]) Build() (*DefaultFunction[T], error) {
	switch {
	case b.step == nil:
		return nil, wrapf(methodBuild, "Step not set", ErrMissingStep)
	case !b.maxItersSet:
		return nil, wrapf(methodBuild, "MaxIters not set", ErrMissingMaxIters)
	case b.maxIters < 1:
		return nil, wrapf(methodBuild, "maxIters=%d", ErrInvalidMaxIters, b.maxIters)
	case b.escapeTest == nil:
		return nil, wrapf(methodBuild, "EscapeTest or ContainmentTest not set", ErrMissingEscapeTest)
	case b.convOn && !validFactor(b.convFactor):
		return nil, wrapf(methodBuild, "convergence factor=%g", ErrInvalidFactor, b.convFactor)
	case b.divOn && !validFactor(b.divFactor):
		return nil, wrapf(methodBuild, "divergence factor=%g", ErrInvalidFactor, b.divFactor)
	}

	f := &DefaultFunction[T]{
		init:        b.init,
		step:        b.step,
		escapeTest:  b.escapeTest,
		shortcut:    b.shortcut,
		includeInit: b.includeInit,
		maxIters:    b.maxIters,
		convOn:      b.convOn,
		divOn:       b.divOn,
	}
	if f.init == nil {
		f.init = func(c T) T { return c }
	}
	if b.convOn {
		f.convAdjust = b.convFactor / float64(b.maxIters)
	}
	if b.divOn {
		f.divAdjust = b.divFactor / float64(b.maxIters)
	}

	return f, nil
}

func validFactor(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
