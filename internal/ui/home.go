package ui

import (
	"time"

	"charm.land/lipgloss/v2"
)

// Home is the dashboard tab: a greeting plus a few static summary cards.
// The content is fixed; the tab exists to give the banner choreography a
// neutral view to land on.
type Home struct {
	width       int
	height      int
	displayName string
}

// NewHome creates the home view.
func NewHome() *Home {
	return &Home{}
}

// SetSize sets the content area size.
func (h *Home) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetDisplayName sets the name used in the greeting.
func (h *Home) SetDisplayName(name string) {
	h.displayName = name
}

// greetingFor maps an hour of day to a greeting.
func greetingFor(hour int) string {
	switch {
	case hour < 5:
		return "Up late"
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// View renders the home dashboard.
func (h *Home) View() string {
	if h.width <= 0 || h.height <= 0 {
		return ""
	}

	greeting := greetingFor(time.Now().Hour())
	if h.displayName != "" {
		greeting += ", " + h.displayName
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Render(greeting)

	cardW := (h.width - 8) / 3
	if cardW < 14 {
		cardW = 14
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		h.card(cardW, "projects", "4 active"),
		" ",
		h.card(cardW, "inbox", "3 unread"),
		" ",
		h.card(cardW, "today", "2 events"),
	)

	muted := lipgloss.NewStyle().Foreground(ColorTextMuted)
	activity := CardStyle.Width(cardW*3 + 4).Render(
		CardTitleStyle.Render("recent") + "\n" +
			muted.Render("· deploy pipeline finished") + "\n" +
			muted.Render("· two replies in #design") + "\n" +
			muted.Render("· standup notes posted"),
	)

	hint := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Render("press 3 to talk to the assistant")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		cards,
		"",
		activity,
		"",
		hint,
	)

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, content)
}

// card renders one fixed-width summary card.
func (h *Home) card(width int, title, value string) string {
	return CardStyle.Width(width).Render(
		CardTitleStyle.Render(title) + "\n" +
			lipgloss.NewStyle().Foreground(ColorText).Render(value),
	)
}
