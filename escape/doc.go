// SPDX-License-Identifier: MIT

// Package escape evaluates iterated maps z ← step(c, z) over any bnum.Number
// system and classifies each input c as escaped or contained.
//
// 🚀 What lives here?
//
//   - Builder[T]: immutable fluent configuration, validated once by Build().
//   - DefaultFunction[T]: the built evaluator; pure and safe for concurrent use.
//   - Result[T]: escaped flag, iteration count, final z, optional smoothing.
//   - Mandelbrot / Julia: preset builders for z² + c and z² + k.
//   - NewNewton: root-finding evaluator (escaped ⇔ converged).
//
// ✨ Evaluation order (DefaultFunction.Evaluate):
//
//  1. shortcutContainmentTest(c) → Contained(c), no smoothing.
//  2. z ← init(c); smoothers start.
//  3. includeInit: i = 1, feed z, test escape on z.
//  4. while i < maxIters: i++, z ← step(c, z), feed, test escape.
//  5. exhausted → Contained(z) with convergence smoothing.
//
// Smoothing sums adjust·exp(−1/|z|) (divergence, reported on escape) or
// adjust·exp(−1/|Δz|) (convergence, reported on containment), where
// adjust = factor / maxIters.
//
// ⚙️ Usage:
//
//	fn, err := escape.NewBuilder[complexnum.Complex]().
//		Step(func(c, z complexnum.Complex) complexnum.Complex { return z.Times(z).Plus(c) }).
//		EscapeTest(func(z complexnum.Complex) bool { return z.Abs2() > 4 }).
//		MaxIters(256).
//		EnableDivergenceSmoothing().
//		Build()
//	if err != nil { /* errors.Is(err, escape.ErrMissingStep) ... */ }
//	r := fn.Evaluate(complexnum.New(-0.75, 0.1))
//
// Concurrency: a built function holds no state between calls; call Evaluate
// from as many goroutines as needed.
package escape
