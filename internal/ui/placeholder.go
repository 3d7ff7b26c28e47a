package ui

import (
	"charm.land/lipgloss/v2"
)

// Placeholder is a "coming soon" tab view. Projects and Inbox both use it
// with their own title and teaser line.
type Placeholder struct {
	width  int
	height int
	glyph  string
	title  string
	teaser string
}

// NewPlaceholder creates a placeholder view.
func NewPlaceholder(glyph, title, teaser string) *Placeholder {
	return &Placeholder{glyph: glyph, title: title, teaser: teaser}
}

// SetSize sets the content area size.
func (p *Placeholder) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the placeholder centered in its area.
func (p *Placeholder) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	glyph := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Render(p.glyph)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Render(p.title)

	teaser := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(p.teaser)

	pill := lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1).
		Render("coming soon")

	content := lipgloss.JoinVertical(lipgloss.Center,
		glyph,
		"",
		title,
		teaser,
		"",
		pill,
	)

	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, content)
}
