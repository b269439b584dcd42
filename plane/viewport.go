package plane

import (
	"fmt"
	"math"
)

// Viewport is an immutable sampling of the rectangle [MinX,MaxX]×[MinY,MaxY]
// into Width×Height cells.
type Viewport struct {
	MinX, MinY, MaxX, MaxY float64
	Width, Height          int
}

// NewViewport validates the bounds and size.
// Returns ErrEmptyGrid if width or height < 1, ErrBadBounds if any bound is
// not finite or a minimum is not below its maximum.
func NewViewport(minX, minY, maxX, maxY float64, width, height int) (Viewport, error) {
	if width < 1 || height < 1 {
		return Viewport{}, fmt.Errorf("NewViewport: %dx%d: %w", width, height, ErrEmptyGrid)
	}
	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Viewport{}, fmt.Errorf("NewViewport: bound %v: %w", v, ErrBadBounds)
		}
	}
	if minX >= maxX || minY >= maxY {
		return Viewport{}, fmt.Errorf("NewViewport: [%g,%g]x[%g,%g]: %w", minX, maxX, minY, maxY, ErrBadBounds)
	}

	return Viewport{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, Width: width, Height: height}, nil
}

// InBounds reports whether (col,row) lies within the viewport.
// Complexity: O(1).
func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}

// At returns the plane coordinates of the centre of cell (col,row).
// Row 0 is the top edge, so y decreases as row grows.
func (v Viewport) At(col, row int) (x, y float64) {
	dx := (v.MaxX - v.MinX) / float64(v.Width)
	dy := (v.MaxY - v.MinY) / float64(v.Height)

	return v.MinX + (float64(col)+0.5)*dx, v.MaxY - (float64(row)+0.5)*dy
}

// Len returns the number of cells.
func (v Viewport) Len() int { return v.Width * v.Height }

// index maps (col,row) to a row-major index.
func (v Viewport) index(col, row int) int { return row*v.Width + col }

// Coordinate converts a row-major index back to (col,row).
// Complexity: O(1).
func (v Viewport) Coordinate(idx int) (col, row int) {
	return idx % v.Width, idx / v.Width
}
