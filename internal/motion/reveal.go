package motion

import (
	"time"

	"github.com/glint-tui/glint/internal/anim"
)

// RevealPhase is the sidebar presentation state.
type RevealPhase int

const (
	RevealClosed RevealPhase = iota
	RevealOpening
	RevealOpen
	RevealClosing
)

// String returns the phase name for logging.
func (p RevealPhase) String() string {
	switch p {
	case RevealClosed:
		return "closed"
	case RevealOpening:
		return "opening"
	case RevealOpen:
		return "open"
	case RevealClosing:
		return "closing"
	default:
		return "unknown"
	}
}

const (
	// RevealOpenDuration paces the liquid fill growing over the view.
	RevealOpenDuration = 450 * time.Millisecond
	// RevealCloseDuration paces the fill shrinking back to nothing.
	RevealCloseDuration = 350 * time.Millisecond
	// SectionLeadDelay is how long after open the first section appears.
	SectionLeadDelay = 120 * time.Millisecond
	// SectionStagger is the gap between consecutive section entrances;
	// the footer follows the last section by the same gap.
	SectionStagger = 60 * time.Millisecond
)

// Reveal drives the sidebar presentation: a progress value shaping the
// liquid reveal, per-section visibility staggered on fixed delays, and a
// presented flag spanning the whole open/close cycle. Phases run Closed,
// Opening, Open, Closing and back to Closed.
type Reveal struct {
	tl        *anim.Timeline
	progress  *anim.Value
	phase     RevealPhase
	sections  []bool
	footer    bool
	presented bool
	reduced   bool
	gen       uint64
}

// NewReveal returns a closed sidebar controller with the given number of
// sections.
func NewReveal(tl *anim.Timeline, sectionCount int) *Reveal {
	return &Reveal{
		tl:       tl,
		progress: tl.NewValue(0),
		sections: make([]bool, sectionCount),
	}
}

// SetReducedMotion makes Open and Close land instantly.
func (r *Reveal) SetReducedMotion(on bool) { r.reduced = on }

// Open starts presenting the sidebar. While Opening or Open it is a no-op.
// From Closing it restarts cleanly, growing from the live progress value.
// Sections enter on a fixed stagger, footer last; a callback from an
// abandoned open can never flip a flag afterward.
func (r *Reveal) Open() {
	switch r.phase {
	case RevealOpening, RevealOpen:
		return
	}
	r.gen++
	gen := r.gen
	wasClosing := r.phase == RevealClosing
	r.phase = RevealOpening
	r.presented = true
	for i := range r.sections {
		r.sections[i] = false
	}
	r.footer = false

	if r.reduced {
		r.progress.Snap(1)
		for i := range r.sections {
			r.sections[i] = true
		}
		r.footer = true
		r.phase = RevealOpen
		return
	}

	if !wasClosing {
		r.progress.Snap(0)
	}
	r.progress.Start(anim.Anim{
		To: 1, Duration: RevealOpenDuration, Curve: anim.EaseInOutCubic,
		OnDone: func() {
			if gen != r.gen {
				return
			}
			r.maybeOpen()
		},
	})
	for i := range r.sections {
		i := i
		r.tl.Schedule(SectionLeadDelay+time.Duration(i)*SectionStagger, func() {
			if gen != r.gen {
				return
			}
			r.sections[i] = true
		})
	}
	r.tl.Schedule(SectionLeadDelay+time.Duration(len(r.sections))*SectionStagger, func() {
		if gen != r.gen {
			return
		}
		r.footer = true
		r.maybeOpen()
	})
}

// Close starts dismissing the sidebar. While Closed or Closing it is a
// no-op. Progress always animates back to 0 before the sidebar is gone;
// presented flips false exactly once, when the close completes.
func (r *Reveal) Close() {
	switch r.phase {
	case RevealClosed, RevealClosing:
		return
	}
	r.gen++
	gen := r.gen
	r.phase = RevealClosing

	if r.reduced {
		r.finishClose()
		return
	}
	r.progress.Start(anim.Anim{
		To: 0, Duration: RevealCloseDuration, Curve: anim.EaseInOutCubic,
		OnDone: func() {
			if gen != r.gen {
				return
			}
			r.finishClose()
		},
	})
}

// Toggle opens a dismissed sidebar and closes a presented one.
func (r *Reveal) Toggle() {
	switch r.phase {
	case RevealClosed, RevealClosing:
		r.Open()
	default:
		r.Close()
	}
}

// SectionTapped dismisses the sidebar in response to a tap on section i.
// The caller handles the section's action; this only drives presentation.
func (r *Reveal) SectionTapped(i int) {
	if i < 0 || i >= len(r.sections) {
		return
	}
	r.Close()
}

// ScrimTapped dismisses the sidebar in response to a tap outside it.
func (r *Reveal) ScrimTapped() { r.Close() }

func (r *Reveal) finishClose() {
	r.phase = RevealClosed
	r.presented = false
	r.footer = false
	for i := range r.sections {
		r.sections[i] = false
	}
	r.progress.Snap(0)
}

func (r *Reveal) maybeOpen() {
	if r.phase != RevealOpening {
		return
	}
	if r.progress.Animating() || r.progress.Current() < 1 {
		return
	}
	if !r.footer {
		return
	}
	for _, s := range r.sections {
		if !s {
			return
		}
	}
	r.phase = RevealOpen
}

// Phase is the current presentation phase.
func (r *Reveal) Phase() RevealPhase { return r.phase }

// Progress is the reveal progress in [0, 1].
func (r *Reveal) Progress() float64 { return r.progress.Current() }

// Presented reports whether the sidebar occupies the screen at all, from
// the moment an open is triggered until a close completes.
func (r *Reveal) Presented() bool { return r.presented }

// SectionCount is the number of sections the controller staggers.
func (r *Reveal) SectionCount() int { return len(r.sections) }

// SectionVisible reports whether section i has entered.
func (r *Reveal) SectionVisible(i int) bool {
	return i >= 0 && i < len(r.sections) && r.sections[i]
}

// FooterVisible reports whether the footer has entered.
func (r *Reveal) FooterVisible() bool { return r.footer }
