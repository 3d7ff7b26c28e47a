// Package motion holds the headless controllers behind the animated chrome:
// the tab-transition coordinator, the scroll-reactive chat header, and the
// sidebar reveal. Controllers own animated values on a shared timeline and
// expose read-only state; views render from that state and never mutate it.
//
// Every controller carries a generation counter bumped at the start of each
// event it handles. Deferred work captures the generation and no-ops when it
// no longer matches, so a timer from an abandoned transition can never
// corrupt the state of a newer one.
package motion

import (
	"time"

	"github.com/glint-tui/glint/internal/anim"
	"github.com/glint-tui/glint/internal/geom"
)

const (
	// TransitionDelay gives the view swap a beat to settle before the
	// banner chrome starts moving.
	TransitionDelay = 50 * time.Millisecond
	// TransitionDuration paces the logo slide, the icon fade, and the
	// sparkle run, so they all land together.
	TransitionDuration = 800 * time.Millisecond
	// SparkleFadePortion is the fraction of the forward trajectory over
	// which the marker fades in.
	SparkleFadePortion = 0.4
	// LogoAssistantOffset is how far left the wordmark slides, in cells,
	// to make room for the assistant icon.
	LogoAssistantOffset = -12.0
)

// Coordinator choreographs the banner across tab changes: wordmark offset,
// assistant icon opacity, and the sparkle marker riding a quadratic Bezier
// between logo and icon.
type Coordinator struct {
	tl *anim.Timeline

	logoOffset  *anim.Value
	iconOpacity *anim.Value
	sparkleT    *anim.Value
	sparkleOp   *anim.Value

	forward bool
	reverse bool
	gen     uint64
	reduced bool

	p0, ctrl, p1 geom.Point
}

// NewCoordinator returns a coordinator at rest on the given timeline.
func NewCoordinator(tl *anim.Timeline) *Coordinator {
	return &Coordinator{
		tl:          tl,
		logoOffset:  tl.NewValue(0),
		iconOpacity: tl.NewValue(0),
		sparkleT:    tl.NewValue(0),
		sparkleOp:   tl.NewValue(0),
	}
}

// SetSparklePath installs the Bezier the marker rides, in banner cell
// coordinates. The view re-installs it whenever the terminal resizes.
func (c *Coordinator) SetSparklePath(p0, ctrl, p1 geom.Point) {
	c.p0, c.ctrl, c.p1 = p0, ctrl, p1
}

// SetReducedMotion makes subsequent tab changes land on their end states
// instantly instead of animating.
func (c *Coordinator) SetReducedMotion(on bool) { c.reduced = on }

// TabChanged applies the choreography for a tab change. Interrupting an
// in-flight transition is fine: every value departs from wherever it
// currently is.
func (c *Coordinator) TabChanged(from, to Tab) {
	c.gen++
	switch PlanFor(from, to) {
	case PlanNone:
		return

	case PlanEnterAssistant:
		c.forward, c.reverse = true, false
		if c.reduced {
			c.logoOffset.Snap(LogoAssistantOffset)
			c.iconOpacity.Snap(1)
			c.sparkleT.Snap(1)
			c.sparkleOp.Snap(1)
			return
		}
		c.logoOffset.Start(anim.Anim{
			To: LogoAssistantOffset, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInOutCubic,
		})
		c.iconOpacity.Start(anim.Anim{
			To: 1, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInOutCubic,
		})
		c.sparkleT.Start(anim.Anim{
			To: 1, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInOutQuad,
		})
		fade := time.Duration(SparkleFadePortion * float64(TransitionDuration))
		c.sparkleOp.Start(anim.Anim{
			To: 1, Duration: fade,
			Delay: TransitionDelay, Curve: anim.EaseOutQuad,
		})

	case PlanLeaveAssistant:
		c.forward, c.reverse = false, true
		if c.reduced {
			c.snapRest()
			c.reverse = false
			return
		}
		c.logoOffset.Start(anim.Anim{
			To: 0, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInOutCubic,
		})
		c.iconOpacity.Start(anim.Anim{
			To: 0, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInOutCubic,
		})
		// The marker retraces the curve while fading out.
		c.sparkleT.Start(anim.Anim{
			To: 0, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInOutQuad,
		})
		c.sparkleOp.Start(anim.Anim{
			To: 0, Duration: TransitionDuration,
			Delay: TransitionDelay, Curve: anim.EaseInQuad,
		})
		gen := c.gen
		c.tl.Schedule(TransitionDelay+TransitionDuration, func() {
			if gen != c.gen {
				return
			}
			c.reverse = false
		})

	case PlanNeutral:
		c.forward, c.reverse = false, false
		c.snapRest()
	}
}

func (c *Coordinator) snapRest() {
	c.logoOffset.Snap(0)
	c.iconOpacity.Snap(0)
	c.sparkleT.Snap(0)
	c.sparkleOp.Snap(0)
}

// LogoOffset is the wordmark's horizontal shift from its resting column.
func (c *Coordinator) LogoOffset() float64 { return c.logoOffset.Current() }

// IconOpacity is the assistant icon's opacity in [0, 1].
func (c *Coordinator) IconOpacity() float64 { return c.iconOpacity.Current() }

// SparkleForward reports whether the forward sparkle effect is engaged.
func (c *Coordinator) SparkleForward() bool { return c.forward }

// SparkleReverse reports whether the reverse sparkle effect is engaged. It
// resets on its own once the reverse run's duration elapses.
func (c *Coordinator) SparkleReverse() bool { return c.reverse }

// MarkerVisible reports whether the sparkle marker should be drawn at all.
func (c *Coordinator) MarkerVisible() bool {
	return (c.forward || c.reverse) && c.sparkleOp.Current() > 0
}

// MarkerPos is the marker's position on the installed Bezier path.
func (c *Coordinator) MarkerPos() geom.Point {
	return geom.QuadBezier(c.sparkleT.Current(), c.p0, c.ctrl, c.p1)
}

// MarkerOpacity is the marker's opacity in [0, 1].
func (c *Coordinator) MarkerOpacity() float64 { return c.sparkleOp.Current() }
