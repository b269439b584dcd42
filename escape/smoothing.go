// SPDX-License-Identifier: MIT

package escape

import (
	"math"

	"github.com/katalvlaran/binum/bnum"
)

// smoother accumulates adjust·exp(−1/|v|) over an orbit. A disabled
// smoother ignores every feed; an enabled one reports its sum even when
// adjust has underflowed to 0.
//
// Divergence smoothing feeds |z|; convergence smoothing feeds |z − prev|,
// where prev is the previous iterate. Smoothers are created per evaluation,
// so built functions stay stateless.
type smoother[T bnum.Number[T]] struct {
	on     bool
	adjust float64
	delta  bool
	prev   T
	sum    float64
}

func newDivergence[T bnum.Number[T]](on bool, adjust float64) *smoother[T] {
	return &smoother[T]{on: on, adjust: adjust}
}

func newConvergence[T bnum.Number[T]](on bool, adjust float64, start T) *smoother[T] {
	return &smoother[T]{on: on, adjust: adjust, delta: true, prev: start}
}

func (s *smoother[T]) enabled() bool { return s.on }

func (s *smoother[T]) feed(z T) {
	if !s.enabled() {
		return
	}
	var v float64
	if s.delta {
		v = bnum.Minus(z, s.prev).Abs()
		s.prev = z
	} else {
		v = z.Abs()
	}
	s.sum += s.adjust * math.Exp(-1/v)
}

// finish returns the accumulated value and whether smoothing was enabled.
func (s *smoother[T]) finish() (float64, bool) {
	if !s.enabled() {
		return 0, false
	}

	return s.sum, true
}
