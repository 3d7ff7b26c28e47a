package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glint-tui/glint/internal/motion"
	"github.com/glint-tui/glint/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Update footer context for conditional bindings
	m.updateFooterContext()

	content := m.contentView()
	if m.sidebarActive() {
		content = m.sidebar.Composite(content)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.banner.View(),
		m.tabBar.View(),
		content,
		m.footer.View(),
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return view
}

// contentView renders the active tab's view.
func (m *Model) contentView() string {
	switch m.activeTab {
	case motion.TabHome:
		return m.home.View()
	case motion.TabProjects:
		return m.projects.View()
	case motion.TabAssistant:
		return m.chat.View()
	case motion.TabInbox:
		return m.inbox.View()
	case motion.TabCalendar:
		return m.calendar.View()
	default:
		return ""
	}
}

// updateFooterContext updates the footer with current context for
// conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.activeTab, m.sidebarActive(), m.modal.IsVisible(), m.chat.IsThinking())
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.banner.SetWidth(ctx.TerminalWidth)
	m.tabBar.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.home.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.projects.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.inbox.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.calendar.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.sidebar.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
}
