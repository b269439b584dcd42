// SPDX-License-Identifier: MIT

package splitnum

// Classification is the part of the hyperbolic plane a value belongs to.
type Classification int

// Classifications. The open regions are named counter-clockwise starting
// with the positive-x-dominant one.
const (
	NaN Classification = iota
	Zero
	PosNullVector
	NegNullVector
	RegionI
	RegionII
	RegionIII
	RegionIV
)

var classificationNames = [...]string{
	NaN:           "NaN",
	Zero:          "Zero",
	PosNullVector: "PosNullVector",
	NegNullVector: "NegNullVector",
	RegionI:       "RegionI",
	RegionII:      "RegionII",
	RegionIII:     "RegionIII",
	RegionIV:      "RegionIV",
}

// String returns the constant name.
func (c Classification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "Classification(?)"
	}

	return classificationNames[c]
}

// IsNullVector reports whether c is one of the two null lines.
func (c Classification) IsNullVector() bool {
	return c == PosNullVector || c == NegNullVector
}

// Basis returns a representative point of c: the unit axis vector pointing
// into an open region, 1 ± j on a null line, and 0 or NaN otherwise.
func (c Classification) Basis() SplitComplex {
	switch c {
	case RegionI:
		return SplitComplex{1, 0}
	case RegionII:
		return SplitComplex{0, 1}
	case RegionIII:
		return SplitComplex{-1, 0}
	case RegionIV:
		return SplitComplex{0, -1}
	case PosNullVector:
		return SplitComplex{1, 1}
	case NegNullVector:
		return SplitComplex{1, -1}
	case Zero:
		return SplitComplex{0, 0}
	}

	return SplitComplex{nan(), nan()}
}

// Classify returns the part of the plane z lies in.
func (z SplitComplex) Classify() Classification {
	x, y := z.x, z.y
	switch {
	case z.IsNaN():
		return NaN
	case x == 0 && y == 0:
		return Zero
	case y == x:
		return PosNullVector
	case y == -x:
		return NegNullVector
	case y > -x && y < x:
		return RegionI
	case y > x && y > -x:
		return RegionII
	case y < -x && y > x:
		return RegionIII
	}

	return RegionIV
}
