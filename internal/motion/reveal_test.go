package motion

import (
	"testing"

	"github.com/glint-tui/glint/internal/anim"
)

func newReveal(sections int) (*anim.Timeline, *Reveal) {
	tl := anim.NewTimeline()
	tl.Advance(at(0))
	return tl, NewReveal(tl, sections)
}

func allFlags(r *Reveal) []bool {
	flags := make([]bool, 0, r.SectionCount()+1)
	for i := 0; i < r.SectionCount(); i++ {
		flags = append(flags, r.SectionVisible(i))
	}
	return append(flags, r.FooterVisible())
}

func anySet(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}

func TestOpenStaggersSectionsThenFooter(t *testing.T) {
	tl, r := newReveal(4)
	r.Open()

	if r.Phase() != RevealOpening || !r.Presented() {
		t.Fatalf("phase %v presented %v right after open", r.Phase(), r.Presented())
	}
	if anySet(allFlags(r)) {
		t.Fatal("flags set before the stagger lead delay")
	}

	// Sections enter at 120, 180, 240, 300ms; footer at 360ms.
	checks := []struct {
		ms   int
		want []bool
	}{
		{100, []bool{false, false, false, false, false}},
		{130, []bool{true, false, false, false, false}},
		{190, []bool{true, true, false, false, false}},
		{250, []bool{true, true, true, false, false}},
		{310, []bool{true, true, true, true, false}},
		{370, []bool{true, true, true, true, true}},
	}
	for _, c := range checks {
		tl.Advance(at(c.ms))
		got := allFlags(r)
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("at %dms: flags %v, want %v", c.ms, got, c.want)
			}
		}
	}

	if r.Phase() != RevealOpening {
		t.Errorf("phase %v before fill completes, want opening", r.Phase())
	}
	tl.Advance(at(500))
	if r.Phase() != RevealOpen {
		t.Errorf("phase %v after fill completes, want open", r.Phase())
	}
	if got := r.Progress(); got != 1 {
		t.Errorf("progress %v, want 1", got)
	}
}

func TestOpenThenImmediateCloseEndsFullyClosed(t *testing.T) {
	tl, r := newReveal(4)
	r.Open()
	r.Close()

	if r.Phase() != RevealClosing {
		t.Fatalf("phase %v after immediate close, want closing", r.Phase())
	}

	// Run far past every staggered entrance; none may fire.
	for ms := 16; ms <= 1500; ms += 16 {
		tl.Advance(at(ms))
		if anySet(allFlags(r)) {
			t.Fatalf("at %dms: residual callback set a flag %v", ms, allFlags(r))
		}
	}
	if r.Phase() != RevealClosed {
		t.Errorf("phase %v, want closed", r.Phase())
	}
	if got := r.Progress(); got != 0 {
		t.Errorf("progress %v, want 0", got)
	}
	if r.Presented() {
		t.Error("sidebar still presented")
	}
}

func TestCloseFlipsPresentedOnCompletion(t *testing.T) {
	tl, r := newReveal(3)
	r.Open()
	tl.Advance(at(1000))
	if r.Phase() != RevealOpen {
		t.Fatalf("setup: phase %v", r.Phase())
	}

	r.Close()
	tl.Advance(at(1000 + 340))
	if !r.Presented() {
		t.Error("presented flipped before the close completed")
	}
	tl.Advance(at(1000 + 360))
	if r.Presented() {
		t.Error("presented still true after the close completed")
	}
	if anySet(allFlags(r)) {
		t.Error("flags survived the close")
	}
}

func TestReopenWhileClosingKeepsProgressContinuous(t *testing.T) {
	tl, r := newReveal(3)
	r.Open()
	tl.Advance(at(1000))
	r.Close()
	tl.Advance(at(1100))

	mid := r.Progress()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("setup: progress %v not mid-close", mid)
	}

	r.Open()
	if got := r.Progress(); got != mid {
		t.Errorf("progress jumped from %v to %v on reopen", mid, got)
	}
	if r.Phase() != RevealOpening {
		t.Errorf("phase %v after reopen, want opening", r.Phase())
	}
	if anySet(allFlags(r)) {
		t.Error("reopen kept stale section flags")
	}

	// The abandoned close's completion callback must not slam the sidebar
	// shut mid-reopen.
	tl.Advance(at(1100 + 300))
	if r.Phase() == RevealClosed || !r.Presented() {
		t.Fatalf("stale close callback closed the reopening sidebar (phase %v)", r.Phase())
	}
	tl.Advance(at(3000))
	if r.Phase() != RevealOpen || r.Progress() != 1 {
		t.Errorf("phase %v progress %v after reopen settled", r.Phase(), r.Progress())
	}
	if !r.FooterVisible() {
		t.Error("footer never entered after reopen")
	}
}

func TestOpenWhileOpeningIsNoOp(t *testing.T) {
	tl, r := newReveal(3)
	r.Open()
	tl.Advance(at(60))
	r.Open() // must not restart the stagger

	tl.Advance(at(130))
	if !r.SectionVisible(0) {
		t.Error("first section missing at its original entrance time")
	}
	tl.Advance(at(1000))
	if r.Phase() != RevealOpen {
		t.Errorf("phase %v, want open", r.Phase())
	}
}

func TestToggle(t *testing.T) {
	tl, r := newReveal(2)
	r.Toggle()
	if r.Phase() != RevealOpening {
		t.Fatalf("phase %v after first toggle, want opening", r.Phase())
	}
	tl.Advance(at(1000))
	r.Toggle()
	if r.Phase() != RevealClosing {
		t.Fatalf("phase %v after second toggle, want closing", r.Phase())
	}
	tl.Advance(at(1100))
	r.Toggle()
	if r.Phase() != RevealOpening {
		t.Errorf("phase %v after toggling mid-close, want opening", r.Phase())
	}
}

func TestTapsClose(t *testing.T) {
	tl, r := newReveal(3)
	r.Open()
	tl.Advance(at(1000))

	r.SectionTapped(1)
	if r.Phase() != RevealClosing {
		t.Errorf("phase %v after section tap, want closing", r.Phase())
	}

	tl2, r2 := newReveal(3)
	r2.Open()
	tl2.Advance(at(1000))
	r2.ScrimTapped()
	if r2.Phase() != RevealClosing {
		t.Errorf("phase %v after scrim tap, want closing", r2.Phase())
	}

	// Out-of-range taps do nothing.
	tl3, r3 := newReveal(3)
	r3.Open()
	tl3.Advance(at(1000))
	r3.SectionTapped(7)
	if r3.Phase() != RevealOpen {
		t.Errorf("phase %v after out-of-range tap, want open", r3.Phase())
	}
}

func TestReducedMotionOpensAndClosesInstantly(t *testing.T) {
	tl, r := newReveal(3)
	r.SetReducedMotion(true)

	r.Open()
	if r.Phase() != RevealOpen || r.Progress() != 1 {
		t.Fatalf("phase %v progress %v, want open/1", r.Phase(), r.Progress())
	}
	for i := 0; i < 3; i++ {
		if !r.SectionVisible(i) {
			t.Errorf("section %d not visible", i)
		}
	}
	if !r.FooterVisible() {
		t.Error("footer not visible")
	}
	if tl.Active() {
		t.Error("reduced-motion open left the timeline active")
	}

	r.Close()
	if r.Phase() != RevealClosed || r.Presented() {
		t.Errorf("phase %v presented %v, want closed/false", r.Phase(), r.Presented())
	}
}
