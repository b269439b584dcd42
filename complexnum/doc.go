// Package complexnum implements complex numbers x + i·y (j² = −1) as a
// bnum.Number system.
//
// Unlike the built-in complex128, Complex follows the algebra contract of
// package bnum (bit-exact equality, the shared default operations, region
// mapping) and commits to specific numerically stable algorithms:
//
//   - Times / Div: C99 Annex G recovery of infinities from NaN results; Div
//     pivots on the larger divisor component (Smith, 1962).
//   - LogAbs:      ln(L) + ½·ln1p((S/L)²) with S ≤ L the component magnitudes.
//   - Sqrt:        Friedland's algorithm (no cancellation for x < 0).
//   - Asin / Acos: Hull, Fairgrieve & Tang (1997), exception-free with the
//     crossover constants ACrossover = 1.5, BCrossover = 0.6417.
//   - Roots(n):    all n-th roots sorted by angle in [0, 2π).
//
// Branch cuts follow math.Atan2 exactly, including signed zeros: Arg is
// discontinuous across the negative real axis.
//
// Example:
//
//	z := complexnum.New(3, 4)
//	fmt.Println(z.Abs())          // 5
//	fmt.Println(z.Sqrt())         // (2+1i)
//	roots, _ := z.Roots(3)        // three cube roots of 3+4i
package complexnum
