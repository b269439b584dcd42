// SPDX-License-Identifier: MIT

package bnum

import (
	"math"
	"strconv"
	"strings"
)

// Key is a comparable identity of a binary number built from the raw bit
// patterns of its components. Use it as a map key: Go's == on float64 treats
// +0 and −0 as equal and NaN as unequal to itself, Key does neither.
type Key struct {
	X, Y uint64
}

// KeyOf returns the bit-pattern key of z.
func KeyOf[T Number[T]](z T) Key {
	return Key{X: math.Float64bits(z.X()), Y: math.Float64bits(z.Y())}
}

// Equal reports whether a and b have bit-identical components.
// +0 and −0 differ; two NaNs are equal only when their payloads match.
func Equal[T Number[T]](a, b T) bool {
	return KeyOf(a) == KeyOf(b)
}

// Hash returns a hash consistent with Equal.
func Hash[T Number[T]](z T) uint64 {
	k := KeyOf(z)
	h := uint64(17)
	h = 31*h + (k.X ^ (k.X >> 32))
	h = 31*h + (k.Y ^ (k.Y >> 32))

	return h
}

// IsNaN reports whether either component is NaN.
func IsNaN[T Number[T]](z T) bool {
	return math.IsNaN(z.X()) || math.IsNaN(z.Y())
}

// IsInfinite reports whether z is not NaN and at least one component is
// infinite. A value with one NaN and one infinite component is NOT infinite.
func IsInfinite[T Number[T]](z T) bool {
	if IsNaN(z) {
		return false
	}

	return math.IsInf(z.X(), 0) || math.IsInf(z.Y(), 0)
}

// IsFinite reports whether both components are finite.
func IsFinite[T Number[T]](z T) bool {
	return !IsNaN(z) && !IsInfinite(z)
}

// IsZero reports whether both components compare equal to zero (either sign).
func IsZero[T Number[T]](z T) bool {
	return z.X() == 0 && z.Y() == 0
}

// Format renders z as "(x+yU)" where U is the unit symbol of the system,
// mirroring how fmt prints complex128 (e.g. "(1+2i)", "(1-NaNj)").
func Format[T Number[T]](z T, unit string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(strconv.FormatFloat(z.X(), 'g', -1, 64))
	im := strconv.FormatFloat(z.Y(), 'g', -1, 64)
	if im[0] != '-' && im[0] != '+' {
		sb.WriteByte('+')
	}
	sb.WriteString(im)
	sb.WriteString(unit)
	sb.WriteByte(')')

	return sb.String()
}
