package complexnum

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/binum/bnum"
)

// MaxRoots is the largest root count accepted by Roots.
const MaxRoots = 10000

const twoPi = 2 * math.Pi

// Roots returns all n-th roots of z, sorted by angle ascending in [0, 2π).
//
// Behavior highlights:
//   - n == 1 returns [z].
//   - NaN or infinite z returns an empty slice.
//   - If the root radius exp(LogAbs/n) underflows to 0, returns [Zero].
//   - Otherwise root k has radius exp(LogAbs/n) and angle k·2π/n + Arg/n,
//     normalised into [0, 2π) (branch cut on the positive real axis).
//
// Errors:
//   - bnum.ErrInvalidArgument when n < 1 or n > MaxRoots.
//
// Complexity: O(n log n) time, O(n) space.
func (z Complex) Roots(n int) ([]Complex, error) {
	if n < 1 || n > MaxRoots {
		return nil, fmt.Errorf("Roots: n=%d outside [1, %d]: %w", n, MaxRoots, bnum.ErrInvalidArgument)
	}
	if n == 1 {
		return []Complex{z}, nil
	}
	if z.IsNaN() || z.IsInfinite() {
		return []Complex{}, nil
	}
	radius := math.Exp(z.LogAbs() / float64(n))
	if radius == 0 {
		return []Complex{Zero}, nil
	}

	base := z.Arg() / float64(n)
	step := twoPi / float64(n)
	angles := make([]float64, n)
	for k := range angles {
		angles[k] = normalizeAngle(float64(k)*step + base)
	}
	sort.Float64s(angles)

	roots := make([]Complex, n)
	for k, theta := range angles {
		s, c := math.Sincos(theta)
		roots[k] = Complex{radius * c, radius * s}
	}

	return roots, nil
}

// normalizeAngle maps theta into [0, 2π).
func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	if theta >= twoPi {
		theta = 0
	}

	return theta
}
