// SPDX-License-Identifier: MIT

package escape

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// DefaultTolerance is the Newton step size below which an orbit counts as
// converged.
const DefaultTolerance = 1e-9

// NewtonConfig configures a Newton root-finding evaluator.
type NewtonConfig[T any] struct {
	// F is the function whose roots are sought. Required.
	F func(z T) T
	// DF is the derivative of F. Required.
	DF func(z T) T
	// MaxIters caps the number of Newton steps. Must be ≥ 1.
	MaxIters int
	// Tolerance is the convergence threshold on |Δz|; 0 selects DefaultTolerance.
	Tolerance float64
	// Relaxation scales each step (z ← z − a·F/F'); 0 selects 1.
	Relaxation float64
	// Smoothing enables convergence smoothing with DefaultSmoothingFactor.
	Smoothing bool
}

// NewtonFunction iterates z ← z − a·F(z)/F'(z) starting at z₀ = c.
//
// Here "escaped" means converged: the result escapes at the first
// iteration with |Δz| ≤ tolerance and Z holds the root estimate. An orbit
// whose state stops being finite is reported Contained with no smoothing,
// as is one that exhausts MaxIters.
type NewtonFunction[T bnum.Number[T]] struct {
	f, df    func(z T) T
	maxIters int
	tol      float64
	relax    float64
	smooth   bool
	adjust   float64
}

// NewNewton validates cfg and returns the evaluator.
//
// Errors:
//   - ErrMissingStep if F or DF is nil.
//   - ErrInvalidMaxIters if MaxIters < 1.
//   - ErrInvalidTolerance if Tolerance is negative, NaN or infinite.
func NewNewton[T bnum.Number[T]](cfg NewtonConfig[T]) (*NewtonFunction[T], error) {
	switch {
	case cfg.F == nil || cfg.DF == nil:
		return nil, wrapf(methodNewton, "F and DF are required", ErrMissingStep)
	case cfg.MaxIters < 1:
		return nil, wrapf(methodNewton, "maxIters=%d", ErrInvalidMaxIters, cfg.MaxIters)
	case cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0):
		return nil, wrapf(methodNewton, "tolerance=%g", ErrInvalidTolerance, cfg.Tolerance)
	}

	n := &NewtonFunction[T]{
		f:        cfg.F,
		df:       cfg.DF,
		maxIters: cfg.MaxIters,
		tol:      cfg.Tolerance,
		relax:    cfg.Relaxation,
	}
	if n.tol == 0 {
		n.tol = DefaultTolerance
	}
	if n.relax == 0 {
		n.relax = 1
	}
	if cfg.Smoothing {
		n.smooth = true
		n.adjust = DefaultSmoothingFactor / float64(cfg.MaxIters)
	}

	return n, nil
}

// MaxIters returns the configured iteration cap.
func (n *NewtonFunction[T]) MaxIters() int { return n.maxIters }

// Evaluate runs Newton's method from z₀ = c.
func (n *NewtonFunction[T]) Evaluate(c T) Result[T] {
	z := c
	conv := newConvergence(n.smooth, n.adjust, z)
	for i := 1; i <= n.maxIters; i++ {
		if !bnum.IsFinite(z) {
			return NewContained(z, 0, false)
		}
		dz := bnum.TimesReal(n.f(z).Div(n.df(z)), n.relax)
		z = bnum.Minus(z, dz)
		conv.feed(z)
		if dz.Abs() <= n.tol {
			s, ok := conv.finish()

			return NewEscaped(i, z, s, ok)
		}
	}

	return NewContained(z, 0, false)
}
