// Package ui provides the user interface components for the glint TUI.
//
// # Overview
//
// The ui package implements the visual shell of glint using the Bubble Tea
// framework and Lipgloss styling library. Components here are pure renderers:
// they read animation state from internal/motion and draw it, but never drive
// the timeline themselves. All event handling lives in internal/app.
//
// # Layout System
//
// The shell is a single column:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Banner (3 lines: wordmark, sparkle, assistant icon) │
//	├─────────────────────────────────────────────────────┤
//	│ Tab bar (1 line)                                    │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Active tab view                                   │
//	│   (Home / Projects / Assistant / Inbox / Calendar)  │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The settings sidebar is not a column of its own: when open it is composited
// over the active view through a growing blob mask (see Sidebar.Composite).
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Banner: The animated top banner. Reads logo offset, icon opacity and the
// sparkle marker from motion.Coordinator and renders them with gradient and
// color-blend techniques.
//
// TabBar: Five labeled tabs with an active highlight and mouse hit testing.
//
// Chat: The Assistant tab. Viewport message history, textarea input, a
// collapsing header strip driven by motion.ScrollHeader, shimmering spinner
// while a reply is pending, and chroma-highlighted code blocks.
//
// Sidebar: The settings sheet. Renders sections with staggered entrance from
// motion.Reveal and composites itself over the underlying view through the
// geom.Blob mask using an ultraviolet screen buffer.
//
// Footer: Context-aware keyboard hints plus auto-expiring flash messages.
//
// Modal: Popup dialogs (profile name, appearance form). Modal state types
// live in the modals subpackage.
//
// # Styles
//
// All styles are defined in styles.go and regenerated on theme switch by
// theme.go. The built-in palettes live in theme.go; "aurora" is the default.
package ui
