package motion

import (
	"time"

	"github.com/glint-tui/glint/internal/anim"
)

const (
	// ScrollThreshold is the smallest scroll delta, in rows, that moves
	// the header.
	ScrollThreshold = 0.5
	// ScrollForwardDamp scales scroll-down deltas into collapse movement.
	ScrollForwardDamp = 0.6
	// ScrollBackAmplify scales scroll-up deltas into expand movement, so
	// the header returns faster than it hides.
	ScrollBackAmplify = 1.4
	// ScrollResponse paces each scroll-triggered micro animation.
	ScrollResponse = 120 * time.Millisecond
	// HeaderSlideDuration is how long after Commit the header stays in
	// layout while the spring carries it away.
	HeaderSlideDuration = 450 * time.Millisecond

	headerSpringFrequency = 7.0
	headerSpringDamping   = 0.85
)

// ScrollHeader drives the collapsing chat header. Scroll deltas nudge its
// offset between 0 (fully shown) and the collapse limit (fully tucked),
// damped on the way out and amplified on the way back. Once the
// conversation starts the collapse commits: a spring slides the header away
// and it leaves the layout for good.
type ScrollHeader struct {
	tl        *anim.Timeline
	offset    *anim.Value
	limit     float64
	last      float64
	committed bool
	present   bool
	reduced   bool
	gen       uint64
}

// NewScrollHeader returns a fully shown header. limit is the most negative
// offset scrolling can reach, normally the negated header height in rows.
func NewScrollHeader(tl *anim.Timeline, limit float64) *ScrollHeader {
	return &ScrollHeader{
		tl:      tl,
		offset:  tl.NewValue(0),
		limit:   limit,
		present: true,
	}
}

// SetReducedMotion makes Commit hide the header instantly.
func (h *ScrollHeader) SetReducedMotion(on bool) { h.reduced = on }

// Scrolled feeds the controller a new absolute scroll offset, in rows.
// Deltas beyond the threshold animate the header toward or away from the
// collapse limit; the target is always clamped to [limit, 0]. After Commit
// this is a no-op.
func (h *ScrollHeader) Scrolled(offset float64) {
	if h.committed {
		return
	}
	delta := offset - h.last
	h.last = offset

	cur := h.offset.Current()
	var target float64
	switch {
	case delta > ScrollThreshold:
		target = h.clamp(cur - delta*ScrollForwardDamp)
	case delta < -ScrollThreshold:
		target = h.clamp(cur - delta*ScrollBackAmplify)
	default:
		return
	}
	if target == cur {
		return
	}
	h.offset.Start(anim.Anim{To: target, Duration: ScrollResponse, Curve: anim.EaseOutQuad})
}

// Commit permanently collapses the header: scrolling stops mattering, a
// spring slides it fully away from wherever it is, and once the slide
// duration elapses it is removed from layout, exactly once. Calling Commit
// again is a no-op.
func (h *ScrollHeader) Commit() {
	if h.committed {
		return
	}
	h.committed = true
	h.gen++
	if h.reduced {
		h.offset.Snap(h.limit)
		h.present = false
		return
	}
	h.offset.StartSpring(anim.SpringAnim{
		To:        h.limit,
		Frequency: headerSpringFrequency,
		Damping:   headerSpringDamping,
	})
	gen := h.gen
	h.tl.Schedule(HeaderSlideDuration, func() {
		if gen != h.gen {
			return
		}
		h.present = false
	})
}

// Reset returns the header to its initial state for a fresh conversation.
// Any pending removal from an earlier Commit is abandoned.
func (h *ScrollHeader) Reset() {
	h.gen++
	h.committed = false
	h.present = true
	h.last = 0
	h.offset.Snap(0)
}

func (h *ScrollHeader) clamp(v float64) float64 {
	if v < h.limit {
		return h.limit
	}
	if v > 0 {
		return 0
	}
	return v
}

// Offset is the header's vertical shift in rows: 0 fully shown, limit
// fully tucked. A committed slide may transiently overshoot the limit.
func (h *ScrollHeader) Offset() float64 { return h.offset.Current() }

// Limit is the collapse limit the offset is clamped to.
func (h *ScrollHeader) Limit() float64 { return h.limit }

// Present reports whether the header still occupies layout.
func (h *ScrollHeader) Present() bool { return h.present }

// Committed reports whether the collapse has been committed.
func (h *ScrollHeader) Committed() bool { return h.committed }
