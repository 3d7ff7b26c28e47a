package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/glint-tui/glint/internal/geom"
	"github.com/glint-tui/glint/internal/motion"
)

// Settings sections, in display and stagger order.
const (
	SectionProfile = iota
	SectionAppearance
	SectionSound
	SectionMotion
	SectionAbout
)

// sidebarHeaderRows is the row offset of the first section in the sheet.
const sidebarHeaderRows = 3

// Sidebar is the settings sheet revealed over the active view. It renders
// the full sheet at the content size, then composites it cell by cell over
// the base view wherever the reveal region contains the cell, so the sheet
// appears to pour in from the top-right corner. Section rows pop in on the
// reveal controller's stagger.
type Sidebar struct {
	reveal *motion.Reveal

	width  int
	height int
	blob   geom.Blob

	selected int

	displayName string
	themeName   string
	soundOn     bool
	reducedOn   bool
	version     string
}

// NewSidebar creates a sidebar driven by the given reveal controller.
func NewSidebar(reveal *motion.Reveal) *Sidebar {
	return &Sidebar{reveal: reveal}
}

// SetSize sets the sheet area and re-installs the reveal geometry. The blob
// originates at the top-right corner, under the gear that opens it.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.blob = geom.Blob{
		Origin: geom.Point{X: float64(width) - 2, Y: 0},
		Bounds: geom.Rect{X: 0, Y: 0, W: float64(width), H: float64(height)},
	}

	ctx := GetViewContext()
	ctx.Log("Sidebar.SetSize", "width", width, "height", height)
}

// SetValues pushes the current settings into the section rows.
func (s *Sidebar) SetValues(displayName, themeName string, soundOn, reducedOn bool) {
	s.displayName = displayName
	s.themeName = themeName
	s.soundOn = soundOn
	s.reducedOn = reducedOn
}

// SetVersion sets the version shown on the about row and the footer.
func (s *Sidebar) SetVersion(version string) {
	s.version = version
}

// Selected returns the highlighted section index.
func (s *Sidebar) Selected() int {
	return s.selected
}

// MoveSelection moves the highlight by delta, wrapping at either end.
func (s *Sidebar) MoveSelection(delta int) {
	n := SidebarSectionCount
	s.selected = ((s.selected+delta)%n + n) % n
}

// sectionRow is the sheet row carrying section i.
func (s *Sidebar) sectionRow(i int) int {
	return sidebarHeaderRows + i*2
}

// SectionAt maps a content-area coordinate to the section rendered there.
// Sections that have not entered yet do not respond.
func (s *Sidebar) SectionAt(x, y int) (int, bool) {
	if x < 0 || x >= s.width {
		return 0, false
	}
	for i := 0; i < SidebarSectionCount; i++ {
		if y == s.sectionRow(i) && s.reveal.SectionVisible(i) {
			return i, true
		}
	}
	return 0, false
}

// sectionLabel is the glyph and name for section i.
func sectionLabel(i int) string {
	switch i {
	case SectionProfile:
		return "◉ profile"
	case SectionAppearance:
		return "◧ appearance"
	case SectionSound:
		return "♪ sound"
	case SectionMotion:
		return "≈ motion"
	case SectionAbout:
		return "ℹ about"
	default:
		return ""
	}
}

// sectionValue is the current value shown on section i's row.
func (s *Sidebar) sectionValue(i int) string {
	switch i {
	case SectionProfile:
		if s.displayName == "" {
			return "set your name"
		}
		return s.displayName
	case SectionAppearance:
		return s.themeName
	case SectionSound:
		if s.soundOn {
			return "on"
		}
		return "off"
	case SectionMotion:
		if s.reducedOn {
			return "reduced"
		}
		return "full"
	case SectionAbout:
		return s.version
	default:
		return ""
	}
}

// sheetView renders the full settings sheet. Rows for sections that have
// not entered yet stay blank so they pop in on the stagger without shifting
// their neighbors.
func (s *Sidebar) sheetView() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	blank := SidebarStyle.Render(strings.Repeat(" ", s.width))
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = blank
	}

	if s.height > 1 {
		rows[1] = SidebarTitleStyle.Render(PadToWidth("  settings", s.width))
	}

	for i := 0; i < SidebarSectionCount; i++ {
		row := s.sectionRow(i)
		if row >= s.height {
			break
		}
		if !s.reveal.SectionVisible(i) {
			continue
		}
		rows[row] = s.renderSection(i)
	}

	if s.reveal.FooterVisible() && s.height >= 2 {
		rows[s.height-2] = SidebarFooterStyle.Render(PadToWidth("  glint "+s.version, s.width))
	}

	return strings.Join(rows, "\n")
}

// renderSection renders one section row, value right-aligned.
func (s *Sidebar) renderSection(i int) string {
	label := "  " + sectionLabel(i)
	value := s.sectionValue(i) + "  "

	if i == s.selected {
		// Pad inside the style's frame so the row stays sheet-width.
		inner := s.width - SidebarSelectedStyle.GetHorizontalFrameSize()
		gap := max(inner-VisibleWidth(label)-VisibleWidth(value), 1)
		return SidebarSelectedStyle.Render(PadToWidth(label+strings.Repeat(" ", gap)+value, inner))
	}

	left := SidebarItemStyle.Render(label)
	right := SidebarValueStyle.Render(value)
	gap := max(s.width-VisibleWidth(left)-VisibleWidth(right), 1)
	return left + SidebarStyle.Render(strings.Repeat(" ", gap)) + right
}

// Composite draws the sheet over the base view through the reveal mask.
// While the fill is partial, cells on the leading edge take the accent
// color, reading as the rim of the pour.
func (s *Sidebar) Composite(base string) string {
	progress := s.reveal.Progress()
	if !s.reveal.Presented() || progress <= 0 {
		return base
	}
	if s.width <= 0 || s.height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, s.width, s.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	sheet := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(s.sheetView()).Draw(sheet, area)

	accent := lipgloss.Color(CurrentTheme().Secondary)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			pt := geom.Point{X: float64(x), Y: float64(y)}
			if !s.blob.Contains(pt, progress) {
				continue
			}
			cell := sheet.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			if progress < 1 && !s.blob.Contains(pt, progress-SidebarRimWidth) {
				cell.Style.Bg = accent
			}
			scr.SetCell(x, y, cell)
		}
	}

	return scr.Render()
}
