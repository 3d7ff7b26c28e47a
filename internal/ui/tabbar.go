package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/glint-tui/glint/internal/motion"
)

// TabBar is the single-row tab strip below the banner. Tabs share the width
// evenly, with the last tab absorbing the remainder columns.
type TabBar struct {
	width  int
	active motion.Tab
}

// NewTabBar creates a tab bar with Home active.
func NewTabBar() *TabBar {
	return &TabBar{active: motion.TabHome}
}

// SetWidth sets the tab bar width.
func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// SetActive sets the highlighted tab.
func (t *TabBar) SetActive(tab motion.Tab) {
	t.active = tab
}

// Active returns the highlighted tab.
func (t *TabBar) Active() motion.Tab {
	return t.active
}

// TabAt maps a column to the tab rendered there, for mouse hit testing.
func (t *TabBar) TabAt(x int) (motion.Tab, bool) {
	if t.width <= 0 || x < 0 || x >= t.width {
		return 0, false
	}
	n := len(motion.AllTabs)
	cellW := t.width / n
	if cellW == 0 {
		return 0, false
	}
	i := x / cellW
	if i >= n {
		i = n - 1
	}
	return motion.AllTabs[i], true
}

// View renders the tab bar as one row.
func (t *TabBar) View() string {
	if t.width <= 0 {
		return ""
	}
	n := len(motion.AllTabs)
	cellW := t.width / n

	var b strings.Builder
	used := 0
	for i, tab := range motion.AllTabs {
		w := cellW
		if i == n-1 {
			w = t.width - used
		}
		used += w

		style := TabStyle
		if tab == t.active {
			style = TabActiveStyle
		}

		// Truncate against the text area inside the style's padding. A
		// label wider than that would wrap and break the single-row bar.
		avail := w - style.GetHorizontalFrameSize()
		if avail < 0 {
			avail = 0
		}
		label := strings.ToLower(tab.String())
		if VisibleWidth(label) > avail {
			label = TruncateVisible(label, avail, "")
		}

		b.WriteString(style.Width(w).Align(lipgloss.Center).Render(label))
	}
	return b.String()
}
