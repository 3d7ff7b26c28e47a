// Package geom holds the pure geometry behind the animated chrome: the
// quadratic Bezier path the sparkle marker rides and the organic blob region
// that reveals the sidebar. Everything is deterministic in its inputs.
package geom

// Point is a position in fractional cell coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned region in fractional cell coordinates.
type Rect struct {
	X, Y, W, H float64
}

// QuadBezier evaluates the quadratic Bezier curve through p0 and p1 with
// control point ctrl at parameter t. Values of t at or beyond the endpoints
// return the endpoints exactly, so callers can compare against them without
// an epsilon. In between, the curve stays inside the convex hull of the
// three points.
func QuadBezier(t float64, p0, ctrl, p1 Point) Point {
	if t <= 0 {
		return p0
	}
	if t >= 1 {
		return p1
	}
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y,
	}
}
