package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// Calendar is the month-grid tab view. The date is injected so the grid and
// the highlighted day are deterministic under test.
type Calendar struct {
	width  int
	height int
	date   time.Time
}

// NewCalendar creates a calendar showing the month containing date.
func NewCalendar(date time.Time) *Calendar {
	return &Calendar{date: date}
}

// SetSize sets the content area size.
func (c *Calendar) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetDate changes the shown month and highlighted day.
func (c *Calendar) SetDate(date time.Time) {
	c.date = date
}

// View renders the month grid with the injected day highlighted.
func (c *Calendar) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Render(c.date.Format("January 2006"))

	weekdays := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Mo Tu We Th Fr Sa Su")

	grid := c.renderGrid()

	events := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(
		"10:00  design sync\n15:30  one on one")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		weekdays,
		grid,
		"",
		events,
	)

	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, content)
}

// renderGrid renders the day cells, Monday first, six rows at most.
func (c *Calendar) renderGrid() string {
	first := time.Date(c.date.Year(), c.date.Month(), 1, 0, 0, 0, 0, c.date.Location())
	daysIn := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7

	dayStyle := lipgloss.NewStyle().Foreground(ColorText)
	todayStyle := lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	var rows []string
	var row strings.Builder
	col := 0

	writeCell := func(s string) {
		if col > 0 {
			row.WriteByte(' ')
		}
		row.WriteString(s)
		col++
		if col == 7 {
			rows = append(rows, row.String())
			row.Reset()
			col = 0
		}
	}

	for i := 0; i < lead; i++ {
		writeCell("  ")
	}
	for day := 1; day <= daysIn; day++ {
		cell := fmt.Sprintf("%2d", day)
		if day == c.date.Day() {
			writeCell(todayStyle.Render(cell))
		} else {
			writeCell(dayStyle.Render(cell))
		}
	}
	for col != 0 {
		writeCell("  ")
	}

	return strings.Join(rows, "\n")
}
