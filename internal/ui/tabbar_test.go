package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/glint-tui/glint/internal/motion"
)

func TestNewTabBar(t *testing.T) {
	bar := NewTabBar()

	if bar == nil {
		t.Fatal("NewTabBar() returned nil")
	}

	if bar.Active() != motion.TabHome {
		t.Errorf("Expected Home active initially, got %v", bar.Active())
	}
}

func TestTabBar_SetActive(t *testing.T) {
	bar := NewTabBar()

	bar.SetActive(motion.TabAssistant)

	if bar.Active() != motion.TabAssistant {
		t.Errorf("Expected Assistant active, got %v", bar.Active())
	}
}

func TestTabBar_TabAt(t *testing.T) {
	bar := NewTabBar()
	bar.SetWidth(100)

	tests := []struct {
		name     string
		x        int
		expected motion.Tab
		ok       bool
	}{
		{"first column", 0, motion.TabHome, true},
		{"last home column", 19, motion.TabHome, true},
		{"first projects column", 20, motion.TabProjects, true},
		{"assistant center", 45, motion.TabAssistant, true},
		{"inbox", 65, motion.TabInbox, true},
		{"last inbox column", 79, motion.TabInbox, true},
		{"first calendar column", 80, motion.TabCalendar, true},
		{"last column", 99, motion.TabCalendar, true},
		{"past the right edge", 100, 0, false},
		{"left of the bar", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, ok := bar.TabAt(tt.x)
			if ok != tt.ok {
				t.Fatalf("TabAt(%d) ok = %v, want %v", tt.x, ok, tt.ok)
			}
			if ok && tab != tt.expected {
				t.Errorf("TabAt(%d) = %v, want %v", tt.x, tab, tt.expected)
			}
		})
	}
}

func TestTabBar_TabAt_RemainderColumns(t *testing.T) {
	// 103 columns leave a 3-column remainder that the last tab absorbs.
	bar := NewTabBar()
	bar.SetWidth(103)

	tab, ok := bar.TabAt(102)
	if !ok {
		t.Fatal("TabAt(102) should hit a tab")
	}
	if tab != motion.TabCalendar {
		t.Errorf("Expected Calendar in the remainder columns, got %v", tab)
	}
}

func TestTabBar_TabAt_DegenerateWidths(t *testing.T) {
	bar := NewTabBar()

	// No width yet
	if _, ok := bar.TabAt(0); ok {
		t.Error("TabAt should miss before a width is set")
	}

	// Narrower than one column per tab
	bar.SetWidth(4)
	if _, ok := bar.TabAt(0); ok {
		t.Error("TabAt should miss when cells collapse to zero width")
	}
}

func TestTabBar_View(t *testing.T) {
	bar := NewTabBar()
	bar.SetWidth(100)

	view := bar.View()

	if strings.Contains(view, "\n") {
		t.Error("Tab bar should render as a single row")
	}
	if VisibleWidth(view) != 100 {
		t.Errorf("Expected visible width 100, got %d", VisibleWidth(view))
	}

	plain := ansi.Strip(view)
	for _, label := range []string{"home", "projects", "assistant", "inbox", "calendar"} {
		if !strings.Contains(plain, label) {
			t.Errorf("Expected view to contain %q, got %q", label, plain)
		}
	}
}

func TestTabBar_View_NarrowWidthTruncates(t *testing.T) {
	// At 60 columns each cell is 12 wide with 4 columns of padding, so the
	// 9-cell "assistant" label loses its tail instead of wrapping.
	bar := NewTabBar()
	bar.SetWidth(60)

	view := bar.View()

	if strings.Contains(view, "\n") {
		t.Error("Tab bar should stay a single row at narrow widths")
	}
	if VisibleWidth(view) != 60 {
		t.Errorf("Expected visible width 60, got %d", VisibleWidth(view))
	}

	plain := ansi.Strip(view)
	if !strings.Contains(plain, "assistan") {
		t.Errorf("Expected truncated assistant label, got %q", plain)
	}
	if strings.Contains(plain, "assistant") {
		t.Errorf("Expected label cut to fit its cell, got %q", plain)
	}
}

func TestTabBar_View_ZeroWidth(t *testing.T) {
	bar := NewTabBar()

	if view := bar.View(); view != "" {
		t.Errorf("Expected empty view at zero width, got %q", view)
	}
}
