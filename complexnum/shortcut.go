package complexnum

// InMandelbrotBulbs reports whether c lies in the main cardioid or the
// period-2 bulb of the Mandelbrot set. Both regions are known to be
// contained, so it is a cheap shortcut containment test for escape-time
// evaluation of z ← z² + c.
//
//	cardioid: q·(q + (x − ¼)) ≤ y²/4, q = (x − ¼)² + y²
//	bulb:     (x + 1)² + y² ≤ 1/16
func InMandelbrotBulbs(c Complex) bool {
	x, y := c.x, c.y
	yy := y * y
	xq := x - 0.25
	q := xq*xq + yy
	if q*(q+xq) <= 0.25*yy {
		return true
	}
	xp := x + 1

	return xp*xp+yy <= 0.0625
}
