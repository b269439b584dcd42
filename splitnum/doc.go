// SPDX-License-Identifier: MIT

// Package splitnum implements split-complex (hyperbolic) numbers x + j·y
// with j² = +1 as a bnum.Number system.
//
// 🚀 Geometry
//
// The null lines y = ±x split the plane into four open regions:
//
//	            y
//	       \  II  /
//	        \    /
//	    III  \  /   I
//	   ───────+──────── x
//	    III  /  \   I
//	        /    \
//	       /  IV  \
//
// Region I (|y| < x) is the canonical region: every point there has a polar
// form r·(cosh θ + j·sinh θ) with r > 0, so log and pow are single-valued.
// Points on a null line (NullVector) have modulus 0 and no polar form at all.
//
// ✨ Region mapping
//
// Region1Map picks, from the value's own region, the self-inverse map that
// sends it into I (·j for II, negation for III, ·(−j) for IV). Pow applies
// that map, evaluates exp(a·log) in region I, and applies the same map again,
// so the result lands back in the original region. Null vectors use the
// exact closed form
//
//	(t·(1 ± j))^a = t^a · 2^(a−1) · (1 ± j)
//
// Note: the composition is correct for the region the argument came from;
// nothing guarantees the intermediate result stays in region I for every
// operation.
//
// ⚙️ Usage:
//
//	z := splitnum.New(3, 1)
//	fmt.Println(z.Classify())    // RegionI
//	fmt.Println(z.Modulus2())    // 8
//	w := splitnum.New(-1, 3).Pow(2.5) // computed in region I, mapped back to II
package splitnum
