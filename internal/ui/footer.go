package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glint-tui/glint/internal/motion"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType classifies a transient footer message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// FlashMessage is a transient message shown in the footer in place of the
// keybinding hints
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg drives periodic expiry checks while a flash is visible
type FlashTickMsg time.Time

// FlashTick returns a command that ticks at the flash poll interval
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	activeTab    motion.Tab
	sidebarOpen  bool
	modalOpen    bool
	thinking     bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "1-5", Desc: "tabs"},
			{Key: "tab", Desc: "next tab"},
			{Key: "ctrl+b", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(activeTab motion.Tab, sidebarOpen, modalOpen, thinking bool) {
	f.activeTab = activeTab
	f.sidebarOpen = sidebarOpen
	f.modalOpen = modalOpen
	f.thinking = thinking
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a transient message with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a transient message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is currently set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears the flash if its duration has elapsed, reporting
// whether it was cleared
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	// Flash messages take priority over keybinding hints
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	var active []KeyBinding
	switch {
	case f.modalOpen:
		active = []KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case f.sidebarOpen:
		active = []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "close"},
		}
	case f.activeTab == motion.TabAssistant:
		active = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+y", Desc: "copy reply"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "tab", Desc: "next tab"},
			{Key: "ctrl+b", Desc: "settings"},
		}
		if f.thinking {
			active = append([]KeyBinding{{Key: "esc", Desc: "dismiss"}}, active[1:]...)
		}
	default:
		active = f.bindings
	}

	var parts []string
	for _, b := range active {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}

// renderFlash renders the flash message with its type icon and color
func (f *Footer) renderFlash() string {
	msg := f.flashMessage

	var icon string
	var color color.Color
	switch msg.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashInfo:
		icon, color = "ℹ", ColorInfo
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	}

	text := msg.Text
	if f.width > 4 {
		text = TruncateVisible(text, f.width-4, "…")
	}
	content := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon) +
		" " + lipgloss.NewStyle().Foreground(ColorText).Render(text)

	return FooterStyle.Width(f.width).Render(content)
}
