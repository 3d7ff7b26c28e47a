package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/glint-tui/glint/internal/anim"
	"github.com/glint-tui/glint/internal/motion"
)

// newTestBanner returns a banner at rest with an 80-column path installed.
func newTestBanner() (*Banner, *motion.Coordinator, *anim.Timeline) {
	tl := anim.NewTimeline()
	coord := motion.NewCoordinator(tl)
	banner := NewBanner(coord)
	banner.SetWidth(80)
	return banner, coord, tl
}

// bannerRows renders the banner and strips styling, one string per row.
func bannerRows(t *testing.T, b *Banner) []string {
	t.Helper()
	rows := strings.Split(b.View(), "\n")
	if len(rows) != BannerHeight {
		t.Fatalf("Expected %d banner rows, got %d", BannerHeight, len(rows))
	}
	plain := make([]string, len(rows))
	for i, row := range rows {
		plain[i] = ansi.Strip(row)
	}
	return plain
}

func TestNewBanner(t *testing.T) {
	banner, _, _ := newTestBanner()

	if banner == nil {
		t.Fatal("NewBanner() returned nil")
	}
}

func TestBanner_View_ZeroWidth(t *testing.T) {
	tl := anim.NewTimeline()
	banner := NewBanner(motion.NewCoordinator(tl))

	if view := banner.View(); view != "" {
		t.Errorf("Expected empty view at zero width, got %q", view)
	}
}

func TestBanner_View_RestState(t *testing.T) {
	banner, _, _ := newTestBanner()

	rows := bannerRows(t, banner)

	for i, row := range rows {
		if VisibleWidth(row) != 80 {
			t.Errorf("Row %d: expected width 80, got %d", i, VisibleWidth(row))
		}
	}

	// Wordmark centered on the middle row: (80-5)/2 = 37
	if idx := strings.Index(rows[1], "glint"); idx != 37 {
		t.Errorf("Expected wordmark at column 37, got %d (%q)", idx, rows[1])
	}

	// Icon and marker stay hidden at rest
	joined := strings.Join(rows, "\n")
	if strings.Contains(joined, "assistant") {
		t.Error("Assistant icon should be hidden at rest")
	}
	if strings.Contains(joined, SparkleGlyph) {
		t.Error("Sparkle marker should be hidden at rest")
	}
}

func TestBanner_View_AssistantEntered(t *testing.T) {
	banner, coord, tl := newTestBanner()

	coord.TabChanged(motion.TabHome, motion.TabAssistant)
	tl.Advance(time.Now())

	rows := bannerRows(t, banner)

	// Wordmark slid LogoShift columns left of its resting column
	if idx := strings.Index(rows[1], "glint"); idx != 37-LogoShift {
		t.Errorf("Expected wordmark at column %d, got %d (%q)", 37-LogoShift, idx, rows[1])
	}

	if !strings.Contains(rows[1], "assistant") {
		t.Errorf("Expected assistant icon on the middle row, got %q", rows[1])
	}

	// The marker parks on the icon's landing cell
	if !strings.Contains(rows[1], SparkleGlyph) {
		t.Errorf("Expected sparkle marker at the path end, got %q", rows[1])
	}
}

func TestBanner_View_MarkerArcsAboveWordmark(t *testing.T) {
	banner, coord, tl := newTestBanner()

	t0 := time.Now()
	tl.Advance(t0)
	coord.TabChanged(motion.TabHome, motion.TabAssistant)

	// Halfway through the run the marker sits at the top of its arc,
	// directly above the path midpoint on the banner's first row.
	tl.Advance(t0.Add(motion.TransitionDelay + motion.TransitionDuration/2))

	rows := bannerRows(t, banner)
	if idx := strings.Index(rows[0], SparkleGlyph); idx != 37 {
		t.Errorf("Expected marker at column 37 on the top row, got %d (%q)", idx, rows[0])
	}
}

func TestBanner_View_AssistantLeft(t *testing.T) {
	banner, coord, tl := newTestBanner()

	t0 := time.Now()
	coord.TabChanged(motion.TabHome, motion.TabAssistant)
	tl.Advance(t0)

	coord.TabChanged(motion.TabAssistant, motion.TabHome)
	tl.Advance(t0.Add(2 * time.Second))

	rows := bannerRows(t, banner)

	if idx := strings.Index(rows[1], "glint"); idx != 37 {
		t.Errorf("Expected wordmark back at column 37, got %d (%q)", idx, rows[1])
	}

	joined := strings.Join(rows, "\n")
	if strings.Contains(joined, "assistant") {
		t.Error("Assistant icon should fade out after leaving the tab")
	}
	if strings.Contains(joined, SparkleGlyph) {
		t.Error("Sparkle marker should be gone after the reverse run")
	}
}

func TestBanner_View_ReducedMotionSnaps(t *testing.T) {
	banner, coord, _ := newTestBanner()
	coord.SetReducedMotion(true)

	// No Advance at all: the snap lands the end state immediately
	coord.TabChanged(motion.TabHome, motion.TabAssistant)

	rows := bannerRows(t, banner)
	if idx := strings.Index(rows[1], "glint"); idx != 37-LogoShift {
		t.Errorf("Expected wordmark snapped to column %d, got %d", 37-LogoShift, idx)
	}
	if !strings.Contains(rows[1], "assistant") {
		t.Errorf("Expected assistant icon visible, got %q", rows[1])
	}
}

func TestBanner_View_NeutralSwitchStaysAtRest(t *testing.T) {
	banner, coord, tl := newTestBanner()

	coord.TabChanged(motion.TabHome, motion.TabProjects)
	tl.Advance(time.Now())

	rows := bannerRows(t, banner)
	if idx := strings.Index(rows[1], "glint"); idx != 37 {
		t.Errorf("Expected wordmark at rest for a neutral switch, got column %d", idx)
	}
	if strings.Contains(strings.Join(rows, "\n"), "assistant") {
		t.Error("Assistant icon should stay hidden on a neutral switch")
	}
}
