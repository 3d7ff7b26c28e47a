// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of glint.
package ui

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (wordmark gradient, focus, highlights)
	Primary string
	// Secondary is the secondary accent color (sparkle marker, assistant, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSubtle   string // Card and header strip background
	BgSelected string // Selected item background

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string // Warnings
	Error     string // Error messages
	Info      string // Information
	Success   string // Success flashes

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeAurora   ThemeName = "aurora"
	ThemeMidnight ThemeName = "midnight"
	ThemeEmber    ThemeName = "ember"
	ThemeTide     ThemeName = "tide"
	ThemePaper    ThemeName = "paper"
)

// DefaultTheme is the theme used when no preference is saved
const DefaultTheme = ThemeAurora

// BuiltinThemes contains all available themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeAurora: {
		Name:        "Aurora",
		Primary:     "#7C3AED",
		Secondary:   "#22D3EE",
		Bg:          "#111827",
		BgSubtle:    "#1F2937",
		BgSelected:  "#374151",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#111827",
		User:        "#A78BFA",
		Assistant:   "#22D3EE",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
		BorderFocus: "#7C3AED",
		CodeStyle:   "monokai",
	},
	ThemeMidnight: {
		Name:        "Midnight",
		Primary:     "#5E81AC",
		Secondary:   "#88C0D0",
		Bg:          "#2E3440",
		BgSubtle:    "#3B4252",
		BgSelected:  "#434C5E",
		Text:        "#ECEFF4",
		TextMuted:   "#7A869C",
		TextInverse: "#2E3440",
		User:        "#B48EAD",
		Assistant:   "#88C0D0",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		BorderFocus: "#88C0D0",
		CodeStyle:   "nord",
	},
	ThemeEmber: {
		Name:        "Ember",
		Primary:     "#FE8019",
		Secondary:   "#FABD2F",
		Bg:          "#1D2021",
		BgSubtle:    "#282828",
		BgSelected:  "#3C3836",
		Text:        "#EBDBB2",
		TextMuted:   "#928374",
		TextInverse: "#1D2021",
		User:        "#D3869B",
		Assistant:   "#FABD2F",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Info:        "#83A598",
		Success:     "#B8BB26",
		Border:      "#3C3836",
		BorderFocus: "#FE8019",
		CodeStyle:   "gruvbox",
	},
	ThemeTide: {
		Name:        "Tide",
		Primary:     "#0EA5E9",
		Secondary:   "#2DD4BF",
		Bg:          "#0C1524",
		BgSubtle:    "#132036",
		BgSelected:  "#1E3A5F",
		Text:        "#E0F2FE",
		TextMuted:   "#64748B",
		TextInverse: "#0C1524",
		User:        "#7DD3FC",
		Assistant:   "#2DD4BF",
		Warning:     "#FBBF24",
		Error:       "#F87171",
		Info:        "#38BDF8",
		Success:     "#34D399",
		Border:      "#1E3A5F",
		BorderFocus: "#0EA5E9",
		CodeStyle:   "dracula",
	},
	ThemePaper: {
		Name:        "Paper",
		Primary:     "#7C3AED",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSubtle:    "#F3F4F6",
		BgSelected:  "#E5E7EB",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		User:        "#6D28D9",
		Assistant:   "#0E7490",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Success:     "#059669",
		Border:      "#D1D5DB",
		BorderFocus: "#7C3AED",
		CodeStyle:   "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeAurora,
		ThemeMidnight,
		ThemeEmber,
		ThemeTide,
		ThemePaper,
	}
}

// ThemeDisplayNames returns the display names matching ThemeNames order
func ThemeDisplayNames() []string {
	names := ThemeNames()
	display := make([]string, len(names))
	for i, name := range names {
		display[i] = BuiltinThemes[name].Name
	}
	return display
}

// GetTheme returns a theme by name, defaulting to Aurora if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// BlendHex interpolates between two hex colors. t=0 yields from, t=1 yields to.
// Opacity rendering throughout the banner and sidebar is this blend toward the
// theme background.
func BlendHex(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	fr, fg, fb := parseHexColor(from)
	tr, tg, tb := parseHexColor(to)
	r := int(float64(fr)*(1-t) + float64(tr)*t)
	g := int(float64(fg)*(1-t) + float64(tg)*t)
	b := int(float64(fb)*(1-t) + float64(tb)*t)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// FadeToBg blends a foreground color toward the theme background by
// 1-opacity, so opacity 1 is the full color and opacity 0 disappears.
func FadeToBg(fg string, opacity float64) color.Color {
	return lipgloss.Color(BlendHex(currentTheme.Bg, fg, opacity))
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgSubtle = lipgloss.Color(t.BgSubtle)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Update banner styles
	BannerStyle = lipgloss.NewStyle().
		Background(ColorBg)

	BannerIconStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	// Update tab bar styles
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(lipgloss.Color(t.BgSelected)).
		Bold(true).
		Padding(0, 2)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update card styles
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	// Update panel styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	// Update chat styles
	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ChatHeaderStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorText)

	ChatHeaderTitleStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorText).
		Bold(true)

	ChatHeaderMutedStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorTextMuted)

	// Update sidebar styles
	SidebarStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorText)

	SidebarTitleStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorPrimary).
		Bold(true)

	SidebarItemStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorText).
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.BgSelected)).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarValueStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorTextMuted)

	SidebarFooterStyle = lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorTextMuted).
		Italic(true)

	// Update modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Update status styles
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Update markdown styles
	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginTop(1)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Background(ColorBgSubtle)

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Underline(true)
}
