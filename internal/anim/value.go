package anim

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// Anim describes a single timed transition of a Value.
type Anim struct {
	// To is the target the value settles on when the transition completes.
	To float64
	// Duration is how long the transition runs once it starts. A zero
	// Duration (with zero Delay) applies To immediately.
	Duration time.Duration
	// Delay postpones the start. The value holds its captured start point
	// until the delay elapses.
	Delay time.Duration
	// Curve shapes the interpolation. Nil means Linear.
	Curve Curve
	// OnDone runs when the transition completes. It never runs if the
	// transition is superseded or snapped away first.
	OnDone func()
}

// SpringAnim describes a physics-driven transition of a Value. Springs run
// until they settle on the target, so they have no fixed duration and may
// overshoot on the way.
type SpringAnim struct {
	To        float64
	Frequency float64 // angular frequency; higher is snappier
	Damping   float64 // damping ratio; below 1 oscillates, 1 is critical
	OnSettle  func()
}

type segKind int

const (
	segCurve segKind = iota
	segSpring
)

// segment is one in-flight transition. A Value holds at most one.
type segment struct {
	kind     segKind
	from, to float64
	start    time.Time
	duration time.Duration
	curve    Curve
	onDone   func()

	spring harmonica.Spring
	vel    float64
	acc    time.Duration
	last   time.Time
}

// Value is a float animated by its Timeline. Starting a new transition while
// one is in flight captures the current interpolated value as the new start
// point, so interruptions never jump.
type Value struct {
	tl      *Timeline
	current float64
	seg     *segment
}

// Current returns the value as of the last Advance.
func (v *Value) Current() float64 { return v.current }

// Target returns where the value is heading, or the current value when idle.
func (v *Value) Target() float64 {
	if v.seg != nil {
		return v.seg.to
	}
	return v.current
}

// Animating reports whether a transition is in flight.
func (v *Value) Animating() bool { return v.seg != nil }

// Start begins a timed transition from the current value, replacing any
// in-flight transition without firing its OnDone.
func (v *Value) Start(a Anim) {
	if a.Duration <= 0 && a.Delay <= 0 {
		done := a.OnDone
		v.Snap(a.To)
		if done != nil {
			done()
		}
		return
	}
	curve := a.Curve
	if curve == nil {
		curve = Linear
	}
	v.seg = &segment{
		kind:     segCurve,
		from:     v.current,
		to:       a.To,
		start:    v.tl.now.Add(a.Delay),
		duration: a.Duration,
		curve:    curve,
		onDone:   a.OnDone,
	}
}

// StartSpring begins a spring transition from the current value and velocity
// zero, replacing any in-flight transition without firing its OnDone.
func (v *Value) StartSpring(s SpringAnim) {
	v.seg = &segment{
		kind:   segSpring,
		to:     s.To,
		onDone: s.OnSettle,
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), s.Frequency, s.Damping),
		last:   v.tl.now,
	}
}

// Snap cancels any in-flight transition and sets the value instantly. The
// cancelled transition's OnDone never fires.
func (v *Value) Snap(to float64) {
	v.seg = nil
	v.current = to
}

const (
	springFPS       = 60
	springSettleEps = 0.001
)

var springStep = time.Second / springFPS

func (v *Value) advance(now time.Time) {
	s := v.seg
	if s == nil {
		return
	}
	switch s.kind {
	case segCurve:
		if now.Before(s.start) {
			v.current = s.from
			return
		}
		t := 1.0
		if s.duration > 0 {
			t = float64(now.Sub(s.start)) / float64(s.duration)
		}
		if t >= 1 {
			v.current = s.to
			v.seg = nil
			if s.onDone != nil {
				s.onDone()
			}
			return
		}
		v.current = s.from + (s.to-s.from)*s.curve(t)
	case segSpring:
		elapsed := now.Sub(s.last)
		s.last = now
		if elapsed > time.Second {
			elapsed = time.Second
		}
		s.acc += elapsed
		for s.acc >= springStep {
			s.acc -= springStep
			v.current, s.vel = s.spring.Update(v.current, s.vel, s.to)
			if abs(v.current-s.to) < springSettleEps && abs(s.vel) < springSettleEps {
				v.current = s.to
				v.seg = nil
				if s.onDone != nil {
					s.onDone()
				}
				return
			}
		}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
