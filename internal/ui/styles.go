package ui

import "charm.land/lipgloss/v2"

// Color palette - Aurora (purple + cyan) theme defaults.
// All of these are reassigned by regenerateStyles() on theme change.
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#22D3EE") // Cyan
	ColorMuted       = lipgloss.Color("#9CA3AF") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#111827") // Dark background
	ColorBgSubtle    = lipgloss.Color("#1F2937") // Header strip and sheet background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#111827") // Dark text for light backgrounds
	ColorUser        = lipgloss.Color("#A78BFA") // Light purple for user messages
	ColorAssistant   = lipgloss.Color("#22D3EE") // Bright cyan for assistant messages
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for warnings
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan for info
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Banner styles
var (
	BannerStyle = lipgloss.NewStyle().
			Background(ColorBg)

	BannerIconStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Tab bar styles
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 2)

	// TabActiveStyle uses the theme's BgSelected color - updated by regenerateStyles()
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color(BuiltinThemes[DefaultTheme].BgSelected)).
			Bold(true).
			Padding(0, 2)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Card styles for the home dashboard
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)
)

// Chat styles
var (
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
)

// Chat header strip styles
var (
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
)

// Sidebar styles
var (
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

	// SidebarSelectedStyle uses the theme's BgSelected color - updated by regenerateStyles()
	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].BgSelected)).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)

	SidebarValueStyle = lipgloss.NewStyle().
				Background(ColorBgSubtle).
				Foreground(ColorTextMuted)

	SidebarFooterStyle = lipgloss.NewStyle().
				Background(ColorBgSubtle).
				Foreground(ColorTextMuted).
				Italic(true)
)

// Modal styles
var (
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
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Markdown rendering styles (updated by regenerateStyles)
var (
	// Headers
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

	// Inline styles
	MarkdownBoldStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText)

	MarkdownItalicStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Background(ColorBgSubtle)

	// List
	MarkdownListBulletStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	// Link
	MarkdownLinkStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Underline(true)
)
