package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/glint-tui/glint/internal/haptics"
	"github.com/glint-tui/glint/internal/motion"
	"github.com/glint-tui/glint/internal/ui"
)

// handleMouseClick handles tap targets: tab labels, the settings sheet, and
// the assistant input. Returns (nil, nil) for clicks nothing claims so they
// fall through to the assistant view.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return nil, nil
	}

	// Modals are keyboard driven; clicks around them are swallowed
	if m.modal.IsVisible() {
		return m, nil
	}

	// The settings sheet claims every click while it is up
	if m.sidebarActive() {
		return m.handleSidebarClick(msg)
	}

	ctx := ui.GetViewContext()

	// Tab bar row sits directly under the banner
	if msg.Y == ctx.BannerHeight {
		if tab, ok := m.tabBar.TabAt(msg.X); ok {
			return m.switchTab(tab)
		}
		return m, nil
	}

	if m.activeTab == motion.TabAssistant {
		return m.handleChatClick(msg, ctx)
	}
	return nil, nil
}

// handleSidebarClick maps a click to a settings section. Clicks anywhere
// else on the sheet, or on the chrome around it, dismiss it.
func (m *Model) handleSidebarClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	ctx := ui.GetViewContext()
	if sec, ok := m.sidebar.SectionAt(msg.X, msg.Y-ctx.ContentTop); ok {
		return m.activateSection(sec)
	}
	m.reveal.ScrimTapped()
	haptics.Pulse(haptics.Medium)
	return m, m.ensureFrameTick()
}

// handleChatClick focuses the input when tapped and blurs it when the
// transcript is tapped instead, the way a phone keyboard dismisses.
func (m *Model) handleChatClick(msg tea.MouseClickMsg, ctx *ui.ViewContext) (tea.Model, tea.Cmd) {
	contentY := msg.Y - ctx.ContentTop
	if contentY < 0 || contentY >= ctx.ContentHeight {
		return m, nil
	}

	inputTop := ctx.ContentHeight - ui.InputTotalHeight
	if contentY >= inputTop {
		if !m.chat.IsFocused() {
			m.chat.SetFocused(true)
			haptics.Pulse(haptics.Light)
		}
		return m, nil
	}

	if m.chat.IsFocused() {
		m.chat.SetFocused(false)
	}
	return m, nil
}
