package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/glint-tui/glint/internal/clipboard"
	"github.com/glint-tui/glint/internal/haptics"
	"github.com/glint-tui/glint/internal/keys"
	"github.com/glint-tui/glint/internal/logger"
	"github.com/glint-tui/glint/internal/motion"
	"github.com/glint-tui/glint/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to the
		// assistant view

	case tea.MouseClickMsg:
		if result, cmd := m.handleMouseClick(msg); result != nil {
			return result, cmd
		}
		// Click nothing claimed, let it fall through to the assistant view

	case FrameTickMsg:
		return m.handleFrameTick(msg)

	case AssistantReplyMsg:
		return m.handleAssistantReply(msg)
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// Handle tick messages that run regardless of the active tab
	if cmd := m.handleTickMessages(msg); cmd != nil {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Remaining messages feed the assistant view; mouse wheel events reach
	// its viewport this way
	if m.activeTab == motion.TabAssistant && !m.sidebarActive() {
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)
		if cmd := m.syncHeaderScroll(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleFrameTick advances the shared timeline and keeps the frame loop
// alive while anything is still animating.
func (m *Model) handleFrameTick(msg FrameTickMsg) (tea.Model, tea.Cmd) {
	m.ticking = false
	m.timeline.Advance(time.Time(msg))
	return m, m.ensureFrameTick()
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should
// fall through to the assistant view for typing and scrolling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	logger.Debug("App: key %q, tab=%s, sidebar=%s, modal=%v",
		msg.String(), m.activeTab, m.reveal.Phase(), m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Escape peels back the topmost layer
	if msg.String() == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	key := msg.String()

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// Keys that work in every context
	switch key {
	case keys.Tab:
		return m.switchTab(m.nextTab(1))
	case keys.ShiftTab:
		return m.switchTab(m.nextTab(-1))
	case keys.CtrlB:
		return m.toggleSidebar()
	}

	// The settings sheet captures everything else while it is up
	if m.sidebarActive() {
		return m.handleSidebarKey(key)
	}

	// Keys available while the assistant input is capturing text
	if m.activeTab == motion.TabAssistant && m.chat.IsFocused() {
		switch key {
		case keys.Enter:
			return m.handleEnterKey()
		case keys.CtrlY:
			return m.copyLastReply()
		}
		// Everything else is typing; fall through to the chat input
		return nil, nil
	}

	// Global keys with no text input in the way
	switch key {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4", "5":
		return m.switchTab(motion.Tab(int(key[0] - '1')))
	case "b":
		return m.toggleSidebar()
	case keys.Enter:
		return m.handleEnterKey()
	case keys.CtrlY:
		return m.copyLastReply()
	}

	// Key not handled - return nil to signal it should fall through
	return nil, nil
}

// handleEscapeKey peels back the topmost layer: the settings sheet, then a
// pending reply, then input focus.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	if m.sidebarActive() {
		m.reveal.Close()
		haptics.Pulse(haptics.Medium)
		return m, m.ensureFrameTick(), true
	}
	if m.chat.IsThinking() {
		m.chat.SetThinking(false)
		return m, m.ShowFlashInfo("Reply dismissed"), true
	}
	if m.activeTab == motion.TabAssistant && m.chat.IsFocused() {
		m.chat.SetFocused(false)
		return m, nil, true
	}
	return m, nil, false
}

// handleSidebarKey drives the settings sheet. Every key is consumed while
// the sheet is up so nothing leaks into the views beneath it.
func (m *Model) handleSidebarKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Up, "k":
		m.sidebar.MoveSelection(-1)
	case keys.Down, "j":
		m.sidebar.MoveSelection(1)
	case keys.Enter, keys.Space:
		return m.activateSection(m.sidebar.Selected())
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// handleEnterKey handles the enter key press outside the settings sheet.
// On the assistant tab it focuses the input first, then sends.
func (m *Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.activeTab != motion.TabAssistant {
		return m, nil
	}
	if !m.chat.IsFocused() {
		m.chat.SetFocused(true)
		return m, nil
	}
	return m.sendMessage()
}

// sendMessage sends the drafted input to the assistant. The first send
// permanently collapses the chat header.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	if m.chat.IsThinking() {
		return m, nil
	}
	input := strings.TrimSpace(m.chat.GetInput())
	if input == "" {
		return m, nil
	}

	m.chat.AddUserMessage(input)
	m.chat.ClearInput()
	m.header.Commit()
	m.chat.SetThinking(true)
	haptics.Pulse(haptics.Medium)
	logger.Debug("App: sent message, len=%d", len(input))

	cmds := []tea.Cmd{ui.StopwatchTick(), awaitReply()}
	if cmd := m.ensureFrameTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleAssistantReply lands the assistant's reply in the transcript. A
// reply dismissed with escape is dropped.
func (m *Model) handleAssistantReply(msg AssistantReplyMsg) (tea.Model, tea.Cmd) {
	if !m.chat.IsThinking() {
		return m, nil
	}
	m.chat.SetThinking(false)
	m.chat.AddAssistantMessage(msg.Reply)

	cmds := []tea.Cmd{m.chat.StartCompletionFlash()}
	if m.activeTab != motion.TabAssistant {
		cmds = append(cmds, notifyReply(), m.ShowFlashInfo("Assistant replied"))
	} else {
		haptics.Pulse(haptics.Light)
	}
	return m, tea.Batch(cmds...)
}

// notifyReply returns a command that raises a desktop notification for a
// reply arriving on a background tab.
func notifyReply() tea.Cmd {
	return func() tea.Msg {
		if err := haptics.ReplyArrived(); err != nil {
			logger.Debug("App: reply notification failed: %v", err)
		}
		return nil
	}
}

// switchTab changes the active tab and hands the transition to the banner
// choreography.
func (m *Model) switchTab(to motion.Tab) (tea.Model, tea.Cmd) {
	if to == m.activeTab {
		return m, nil
	}
	from := m.activeTab
	m.activeTab = to
	m.tabBar.SetActive(to)
	m.coord.TabChanged(from, to)
	if from == motion.TabAssistant {
		m.chat.SetFocused(false)
	}
	haptics.Pulse(haptics.Light)
	logger.Debug("App: tab %s -> %s", from, to)
	return m, m.ensureFrameTick()
}

// nextTab returns the tab delta steps away, wrapping at both ends.
func (m *Model) nextTab(delta int) motion.Tab {
	n := len(motion.AllTabs)
	return motion.Tab(((int(m.activeTab)+delta)%n + n) % n)
}

// toggleSidebar opens or closes the settings sheet.
func (m *Model) toggleSidebar() (tea.Model, tea.Cmd) {
	m.syncSidebarValues()
	m.reveal.Toggle()
	haptics.Pulse(haptics.Medium)
	return m, m.ensureFrameTick()
}

// copyLastReply copies the most recent assistant message to the clipboard.
func (m *Model) copyLastReply() (tea.Model, tea.Cmd) {
	reply, ok := m.chat.LastAssistantReply()
	if !ok {
		return m, m.ShowFlashWarning("Nothing to copy yet")
	}
	if err := clipboard.WriteText(reply); err != nil {
		logger.Error("App: clipboard write failed: %v", err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Reply copied")
}

// syncHeaderScroll feeds the transcript's scroll position to the collapsing
// header after the assistant view handles an event.
func (m *Model) syncHeaderScroll() tea.Cmd {
	if m.header.Committed() {
		return nil
	}
	m.header.Scrolled(float64(m.chat.ScrollOffset()))
	return m.ensureFrameTick()
}

// handleTickMessages handles various tick messages for animations and timers
func (m *Model) handleTickMessages(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case ui.StopwatchTickMsg, ui.CompletionFlashTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return cmd
	case ui.FlashTickMsg:
		// Check if flash message has expired
		if m.footer.ClearIfExpired() {
			return nil
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return ui.FlashTick()
		}
		return nil
	}
	return nil
}
