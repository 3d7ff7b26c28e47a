// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for shell chrome sizing
const (
	// BannerHeight is the height of the animated banner in lines
	BannerHeight = 3

	// TabBarHeight is the height of the tab bar in lines
	TabBarHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// ChromeHeight is the total height of banner + tab bar + footer
	ChromeHeight = BannerHeight + TabBarHeight + FooterHeight

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinTerminalWidth is the smallest terminal width the layout math supports
	MinTerminalWidth = 60

	// MinTerminalHeight is the smallest terminal height the layout math supports
	MinTerminalHeight = 20

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Chat panel constants
const (
	// ChatHeaderHeight is the height of the collapsing chat header at rest,
	// including its separator row. The scroll collapse limit is -ChatHeaderHeight.
	ChatHeaderHeight = 4

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight
)

// Banner choreography constants
const (
	// LogoShift is how many columns the wordmark slides left on the
	// Assistant tab. Matches motion.LogoAssistantOffset in magnitude.
	LogoShift = 12

	// SparkleGlyph is the marker drawn along the banner Bezier path
	SparkleGlyph = "✦"
)

// Sidebar constants
const (
	// SidebarSectionCount is the number of settings sections in the sidebar
	SidebarSectionCount = 5

	// SidebarRimWidth is how close to the blob edge a cell must be, in
	// progress terms, to get the rim accent during the reveal
	SidebarRimWidth = 0.04
)

// Flash message constants
const (
	// DefaultFlashDuration is how long a flash message stays in the footer
	DefaultFlashDuration = 4 * time.Second

	// FlashTickInterval is how often the footer checks for expired flashes
	FlashTickInterval = 500 * time.Millisecond
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 52

	// ModalInputCharLimit is the character limit for modal text inputs.
	// Matches the display name limit enforced by config.Validate.
	ModalInputCharLimit = 48

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 40
)
