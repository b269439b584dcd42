// SPDX-License-Identifier: MIT

// Package bnum defines the shared contract of binary numbers and the generic
// operations built on top of it.
//
// A binary number is an immutable pair (x, y) of float64 values read as
// x + j·y, where j² is fixed by the number system:
//
//	complex        j² = −1   (package complexnum)
//	dual           j² =  0   (package dualnum)
//	split-complex  j² = +1   (package splitnum)
//
// 🚀 What lives here?
//
//   - Number[T]: the primitive method set each system must supply (constructor,
//     multiplication, inverse, exp/log, sin/cos, sinh/cosh, multiplication and
//     division by j, region mapping).
//   - Defaults: free generic functions derived ONLY from those primitives:
//     Plus/Minus/TimesReal/DivReal, Tan/Cot/Sec/Csc and their hyperbolic
//     counterparts, Pow/PowInt/PowNum/Sqrt, LogReal/LogNum.
//   - Region1Mapped: the uniform mechanism that gives log/pow a single-valued
//     meaning in systems whose plane splits into regions.
//   - Equal/Hash/Key: equality on raw bit patterns (+0 ≠ −0).
//
// ✨ Region mapping
//
// Dual and split-complex planes are partitioned by degenerate loci (the y-axis,
// the null lines y = ±x). Each value reports, through Region1Map, the
// self-inverse Mapping that sends it into its system's canonical region.
// Region1Mapped(z, m, op) computes m(op(m(z))) with that one m, so pow and sqrt
// stay region-preserving without per-caller special cases. For complex numbers
// the mapping is Identity.
//
// ⚙️ Usage:
//
//	z := complexnum.New(1, 2)
//	w := bnum.Pow(z, 2.5)        // generic default
//	t := bnum.Tan(z)             // sin/cos through the system's own Div
//	same := bnum.Equal(z, w)     // bit-exact comparison
//
// Concurrency: all values are immutable and every function here is pure, so
// values may be shared between goroutines without synchronization.
package bnum
