package anim

// Curve maps normalized time in [0, 1] to normalized progress. Curves are
// expected to pass through (0, 0) and (1, 1); anything in between is the
// curve's business, including overshoot beyond 1.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from rest.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to rest.
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOutQuad accelerates through the midpoint, then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EaseInCubic accelerates from rest, more sharply than EaseInQuad.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic decelerates to rest, more sharply than EaseOutQuad.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutCubic accelerates through the midpoint, then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutBack overshoots the target slightly before settling on it.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
