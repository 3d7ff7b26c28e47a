package ui

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/glint-tui/glint/internal/geom"
	"github.com/glint-tui/glint/internal/motion"
)

const (
	bannerWordmark      = "glint"
	bannerAssistantIcon = "✳ assistant"
	bannerIconGap       = 2
)

// Banner is the three-row animated strip at the top of the app. It renders
// the wordmark with a per-rune gradient, the assistant icon, and the sparkle
// marker, reading all motion state from the coordinator each frame.
type Banner struct {
	width int
	coord *motion.Coordinator
}

// NewBanner creates a banner that renders from the given coordinator.
func NewBanner(coord *motion.Coordinator) *Banner {
	return &Banner{coord: coord}
}

// SetWidth sets the banner width and re-installs the sparkle path for the
// new layout.
func (b *Banner) SetWidth(width int) {
	b.width = width
	wordW := len([]rune(bannerWordmark))
	p0 := geom.Point{X: float64(b.restX() + wordW), Y: 1}
	p1 := geom.Point{X: float64(b.iconX()), Y: 1}
	// Control point above the text row so the marker arcs over the wordmark.
	ctrl := geom.Point{X: (p0.X + p1.X) / 2, Y: -1}
	b.coord.SetSparklePath(p0, ctrl, p1)
}

// restX is the wordmark's resting column, centered in the banner.
func (b *Banner) restX() int {
	wordW := len([]rune(bannerWordmark))
	x := (b.width - wordW) / 2
	if x < 0 {
		x = 0
	}
	return x
}

// iconX is the assistant icon's column, right of the fully shifted wordmark.
func (b *Banner) iconX() int {
	wordW := len([]rune(bannerWordmark))
	return b.restX() - LogoShift + wordW + bannerIconGap
}

// bannerCell is one terminal cell of the banner grid.
type bannerCell struct {
	ch    string
	style lipgloss.Style
}

// View renders the banner as BannerHeight rows joined by newlines.
func (b *Banner) View() string {
	if b.width <= 0 {
		return ""
	}

	rows := make([][]bannerCell, BannerHeight)
	for r := range rows {
		rows[r] = make([]bannerCell, b.width)
		for c := range rows[r] {
			rows[r][c] = bannerCell{ch: " ", style: BannerStyle}
		}
	}

	b.placeWordmark(rows)
	b.placeIcon(rows)
	b.placeSparkle(rows)

	var out strings.Builder
	for r := 0; r < BannerHeight; r++ {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := 0; c < b.width; c++ {
			out.WriteString(rows[r][c].style.Render(rows[r][c].ch))
		}
	}
	return out.String()
}

// placeWordmark draws the wordmark on the middle row with a per-rune
// gradient from Primary to Secondary, shifted by the coordinator's offset.
func (b *Banner) placeWordmark(rows [][]bannerCell) {
	theme := CurrentTheme()
	runes := []rune(bannerWordmark)
	x := b.restX() + int(math.Round(b.coord.LogoOffset()))

	for i, r := range runes {
		col := x + i
		if col < 0 || col >= b.width {
			continue
		}
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		fg := lipgloss.Color(BlendHex(theme.Primary, theme.Secondary, t))
		rows[1][col] = bannerCell{
			ch: string(r),
			style: lipgloss.NewStyle().
				Foreground(fg).
				Background(ColorBg).
				Bold(true),
		}
	}
}

// placeIcon draws the assistant icon at its landing column, faded by the
// coordinator's icon opacity.
func (b *Banner) placeIcon(rows [][]bannerCell) {
	op := b.coord.IconOpacity()
	if op <= 0.01 {
		return
	}
	theme := CurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(FadeToBg(theme.Secondary, op)).
		Background(ColorBg).
		Bold(true)

	x := b.iconX()
	for i, r := range []rune(bannerAssistantIcon) {
		col := x + i
		if col < 0 || col >= b.width {
			continue
		}
		rows[1][col] = bannerCell{ch: string(r), style: style}
	}
}

// placeSparkle draws the marker at its current position on the Bezier path.
// The marker overdraws whatever is under it.
func (b *Banner) placeSparkle(rows [][]bannerCell) {
	if !b.coord.MarkerVisible() {
		return
	}
	p := b.coord.MarkerPos()
	col := int(math.Round(p.X))
	row := int(math.Round(p.Y))
	if row < 0 {
		row = 0
	}
	if row >= BannerHeight {
		row = BannerHeight - 1
	}
	if col < 0 || col >= b.width {
		return
	}
	theme := CurrentTheme()
	rows[row][col] = bannerCell{
		ch: SparkleGlyph,
		style: lipgloss.NewStyle().
			Foreground(FadeToBg(theme.Secondary, b.coord.MarkerOpacity())).
			Background(ColorBg).
			Bold(true),
	}
}
