package plane

import (
	"strings"

	"github.com/katalvlaran/binum/escape"
)

// DefaultRamp shades escape counts from slow (left) to fast (right);
// contained cells use the last rune.
const DefaultRamp = " .:-=+*#%@"

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Grid holds the result of every cell of a Viewport in row-major order.
type Grid[T any] struct {
	Viewport Viewport
	// MaxIters is the iteration cap of the function that produced the grid.
	MaxIters int
	Cells    []escape.Result[T]
}

// At returns the result at (col,row). It panics when the cell is out of
// bounds, like a slice index.
func (g *Grid[T]) At(col, row int) escape.Result[T] {
	return g.Cells[g.Viewport.index(col, row)]
}

// EscapedCount returns the number of escaped cells.
func (g *Grid[T]) EscapedCount() int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Escaped {
			n++
		}
	}

	return n
}

// ASCII renders one line per row. Escaped cells are shaded by Iters/MaxIters
// (or by Smoothing when available) over all but the last rune of ramp;
// contained cells use the last rune. An empty ramp selects DefaultRamp.
func (g *Grid[T]) ASCII(ramp string) string {
	if ramp == "" {
		ramp = DefaultRamp
	}
	runes := []rune(ramp)
	inside := runes[len(runes)-1]
	shades := runes[:len(runes)-1]

	var sb strings.Builder
	sb.Grow((g.Viewport.Width + 1) * g.Viewport.Height)
	for row := 0; row < g.Viewport.Height; row++ {
		for col := 0; col < g.Viewport.Width; col++ {
			r := g.At(col, row)
			if !r.Escaped || len(shades) == 0 {
				sb.WriteRune(inside)
				continue
			}
			sb.WriteRune(shades[shadeIndex(r, g.MaxIters, len(shades))])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// shadeIndex maps an escaped result into [0, n).
func shadeIndex[T any](r escape.Result[T], maxIters, n int) int {
	var t float64
	switch {
	case r.Smoothed:
		t = r.Smoothing
	case maxIters > 0:
		t = float64(r.Iters) / float64(maxIters)
	}
	i := int(t * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}

	return i
}

// ContainedComponents finds all connected regions of contained cells
// according to conn. Each component is a slice of row-major cell indices in
// BFS order; components are ordered by their first cell in row-major order.
//
// Use Viewport.Coordinate to convert an index back to (col,row).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) ContainedComponents(conn Connectivity) [][]int {
	vp := g.Viewport
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	seen := make([]bool, vp.Len())
	var comps [][]int

	for i0 := range g.Cells {
		if g.Cells[i0].Escaped || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := vp.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !vp.InBounds(vx, vy) {
					continue
				}
				vi := vp.index(vx, vy)
				if seen[vi] || g.Cells[vi].Escaped {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
