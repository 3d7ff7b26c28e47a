// Package app wires the tab views, the animation controllers, and the
// settings surfaces into the root Bubble Tea model.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/glint-tui/glint/internal/anim"
	"github.com/glint-tui/glint/internal/config"
	"github.com/glint-tui/glint/internal/haptics"
	"github.com/glint-tui/glint/internal/motion"
	"github.com/glint-tui/glint/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	// Animation engine. All three controllers share one timeline so a
	// single frame tick advances everything at once.
	timeline *anim.Timeline
	coord    *motion.Coordinator
	header   *motion.ScrollHeader
	reveal   *motion.Reveal

	banner   *ui.Banner
	tabBar   *ui.TabBar
	footer   *ui.Footer
	home     *ui.Home
	projects *ui.Placeholder
	chat     *ui.Chat
	inbox    *ui.Placeholder
	calendar *ui.Calendar
	sidebar  *ui.Sidebar
	modal    *ui.Modal

	width  int
	height int

	activeTab motion.Tab

	ticking bool // a FrameTickMsg is in flight
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Apply the saved theme before any component captures styles. Unknown
	// or empty names fall back to the default theme.
	ui.SetThemeByName(cfg.GetTheme())

	tl := anim.NewTimeline()
	coord := motion.NewCoordinator(tl)
	header := motion.NewScrollHeader(tl, -float64(ui.ChatHeaderHeight))
	reveal := motion.NewReveal(tl, ui.SidebarSectionCount)

	reduced := cfg.GetReducedMotion()
	coord.SetReducedMotion(reduced)
	header.SetReducedMotion(reduced)
	reveal.SetReducedMotion(reduced)
	haptics.SetEnabled(cfg.GetSoundEnabled())

	m := &Model{
		config:    cfg,
		version:   version,
		timeline:  tl,
		coord:     coord,
		header:    header,
		reveal:    reveal,
		banner:    ui.NewBanner(coord),
		tabBar:    ui.NewTabBar(),
		footer:    ui.NewFooter(),
		home:      ui.NewHome(),
		projects:  ui.NewPlaceholder("▤", "Projects", "Boards and repos land here next release."),
		chat:      ui.NewChat(header),
		inbox:     ui.NewPlaceholder("◈", "Inbox", "Mentions and updates will collect here."),
		calendar:  ui.NewCalendar(time.Now()),
		sidebar:   ui.NewSidebar(reveal),
		modal:     ui.NewModal(),
		activeTab: motion.TabHome,
	}

	name := cfg.GetDisplayName()
	m.home.SetDisplayName(name)
	m.chat.SetDisplayName(name)
	m.sidebar.SetVersion(version)
	m.syncSidebarValues()
	m.tabBar.SetActive(m.activeTab)

	return m
}

// ActiveTab returns the currently selected tab.
func (m *Model) ActiveTab() motion.Tab {
	return m.activeTab
}

// Animating reports whether the shared timeline has motion or timers in
// flight. The demo executor uses this to decide when to keep producing
// frames.
func (m *Model) Animating() bool {
	return m.timeline.Active()
}

// Thinking reports whether an assistant reply is pending.
func (m *Model) Thinking() bool {
	return m.chat.IsThinking()
}

// syncSidebarValues pushes the current settings into the sidebar rows.
func (m *Model) syncSidebarValues() {
	m.sidebar.SetValues(
		m.config.GetDisplayName(),
		ui.GetTheme(ui.ThemeName(m.config.GetTheme())).Name,
		m.config.GetSoundEnabled(),
		m.config.GetReducedMotion(),
	)
}

// sidebarActive reports whether the settings sheet owns the content area,
// in any phase of its reveal.
func (m *Model) sidebarActive() bool {
	return m.reveal.Phase() != motion.RevealClosed
}

// ensureFrameTick starts the frame loop if the timeline has work and no
// tick is already in flight.
func (m *Model) ensureFrameTick() tea.Cmd {
	if m.ticking || !m.timeline.Active() {
		return nil
	}
	m.ticking = true
	return FrameTick()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}
