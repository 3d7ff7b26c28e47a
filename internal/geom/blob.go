package geom

import "math"

// defaultAspect compensates for terminal cells being roughly twice as tall
// as they are wide, so a blob that is circular in screen space stays
// circular on screen.
const defaultAspect = 2.0

// blobAmplitude scales the silhouette wobble relative to the covering
// radius. It must stay below 1 so the radius grows strictly with progress
// at every angle.
const blobAmplitude = 0.35

// blobHarmonics are the fixed sine components of the silhouette. Their
// amplitudes sum to 1 so the wobble never exceeds blobAmplitude of the
// covering radius.
var blobHarmonics = [...]struct {
	freq, amp, phase float64
}{
	{3, 0.50, 0.0},
	{5, 0.30, 1.7},
	{7, 0.20, 3.9},
}

// Blob is the reveal region for the sidebar: an organic, roughly circular
// area growing from Origin that covers all of Bounds once progress reaches
// 1. The silhouette is a disc modulated by fixed sine harmonics whose
// amplitude peaks mid-reveal and vanishes at both ends, so the region grows
// from a point, wobbles while in motion, and relaxes to a clean disc at
// completion. For a fixed angle the radius is strictly increasing in
// progress: cells never flicker back out of the region while it opens.
type Blob struct {
	Origin Point
	Bounds Rect
	// Aspect scales vertical distances; zero means the terminal default.
	Aspect float64
}

func (b Blob) aspect() float64 {
	if b.Aspect <= 0 {
		return defaultAspect
	}
	return b.Aspect
}

// coverRadius is the screen-space distance from Origin to the farthest
// corner of Bounds. Distance over the rectangle is maximized at a corner,
// so a disc of this radius covers all of Bounds.
func (b Blob) coverRadius() float64 {
	a := b.aspect()
	r := 0.0
	for _, c := range [...]Point{
		{b.Bounds.X, b.Bounds.Y},
		{b.Bounds.X + b.Bounds.W, b.Bounds.Y},
		{b.Bounds.X, b.Bounds.Y + b.Bounds.H},
		{b.Bounds.X + b.Bounds.W, b.Bounds.Y + b.Bounds.H},
	} {
		d := math.Hypot(c.X-b.Origin.X, (c.Y-b.Origin.Y)*a)
		if d > r {
			r = d
		}
	}
	return r
}

func wobble(theta float64) float64 {
	w := 0.0
	for _, h := range blobHarmonics {
		w += h.amp * math.Sin(h.freq*theta+h.phase)
	}
	return w
}

// Radius returns the silhouette radius at angle theta for the given
// progress. Progress is clamped to [0, 1]; 0 collapses the region to the
// origin and 1 yields the covering disc.
func (b Blob) Radius(theta, progress float64) float64 {
	p := progress
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	r := b.coverRadius()
	return p*r + blobAmplitude*r*p*(1-p)*wobble(theta)
}

// Contains reports whether pt is inside the region at the given progress.
func (b Blob) Contains(pt Point, progress float64) bool {
	dx := pt.X - b.Origin.X
	dy := (pt.Y - b.Origin.Y) * b.aspect()
	d := math.Hypot(dx, dy)
	if d == 0 {
		return progress > 0
	}
	return d <= b.Radius(math.Atan2(dy, dx), progress)
}

// Outline samples n points along the silhouette in cell coordinates,
// ordered by angle. Useful for decorating the reveal edge.
func (b Blob) Outline(progress float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	a := b.aspect()
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		r := b.Radius(theta, progress)
		pts = append(pts, Point{
			X: b.Origin.X + r*math.Cos(theta),
			Y: b.Origin.Y + r*math.Sin(theta)/a,
		})
	}
	return pts
}
