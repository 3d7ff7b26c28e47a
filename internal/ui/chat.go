package ui

import (
	"math"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/glint-tui/glint/internal/motion"
)

// Message is one transcript entry.
type Message struct {
	ID      string
	Role    string // "user" or "assistant"
	Content string
	SentAt  time.Time
}

// Chat is the assistant tab: a transcript viewport above a textarea entry,
// under a header strip that collapses as the transcript scrolls. The strip
// renders from the scroll header controller; only the app mutates it.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	header   *motion.ScrollHeader

	width  int
	height int

	focused     bool
	displayName string
	messages    []Message
	thinking    bool
	thinkStart  time.Time
	spinner     SpinnerState
}

// NewChat creates the assistant view rendering against the given scroll
// header controller.
func NewChat(header *motion.ScrollHeader) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Ask anything..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		header:   header,
		spinner:  SpinnerState{FlashFrame: -1},
	}
	c.updateContent()
	return c
}

// SetSize sets the chat area dimensions.
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.syncLayout()
	c.updateContent()

	ctx := GetViewContext()
	ctx.Log("chat resized", "width", width, "height", height, "viewport_height", c.viewport.Height())
}

// headerRows is how many strip rows are visible at the current offset.
func (c *Chat) headerRows() int {
	if !c.header.Present() {
		return 0
	}
	shift := int(math.Round(-c.header.Offset()))
	if shift < 0 {
		shift = 0
	}
	if shift > ChatHeaderHeight {
		shift = ChatHeaderHeight
	}
	return ChatHeaderHeight - shift
}

// syncLayout sizes the viewport and input for the current header state. The
// viewport grows row by row as the strip slides away.
func (c *Chat) syncLayout() {
	ctx := GetViewContext()

	transcriptH := c.height - c.headerRows() - InputTotalHeight
	innerW := ctx.InnerWidth(c.width)
	vpH := ctx.InnerHeight(transcriptH)
	if innerW < 1 {
		innerW = 1
	}
	if vpH < 1 {
		vpH = 1
	}

	c.viewport.SetWidth(innerW)
	c.viewport.SetHeight(vpH)
	c.input.SetWidth(ctx.InnerWidth(c.width) - InputPaddingWidth)
}

// SetFocused sets the focus state.
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state.
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetDisplayName sets the name shown in the header strip subtitle.
func (c *Chat) SetDisplayName(name string) {
	c.displayName = name
}

// AddUserMessage appends a user message and scrolls to it.
func (c *Chat) AddUserMessage(content string) {
	c.messages = append(c.messages, Message{
		ID:      uuid.NewString(),
		Role:    "user",
		Content: content,
		SentAt:  time.Now(),
	})
	c.updateContent()
	c.viewport.GotoBottom()
}

// AddAssistantMessage appends an assistant reply.
func (c *Chat) AddAssistantMessage(content string) {
	c.messages = append(c.messages, Message{
		ID:      uuid.NewString(),
		Role:    "assistant",
		Content: content,
		SentAt:  time.Now(),
	})
	c.updateContent()
}

// Messages returns the transcript.
func (c *Chat) Messages() []Message {
	return c.messages
}

// LastAssistantReply returns the most recent assistant message, if any.
func (c *Chat) LastAssistantReply() (string, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == "assistant" {
			return c.messages[i].Content, true
		}
	}
	return "", false
}

// GetInput returns the trimmed input text.
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// ClearInput clears the input field.
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value.
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ScrollOffset is the transcript's absolute scroll offset in lines.
func (c *Chat) ScrollOffset() int {
	return c.viewport.YOffset()
}

// updateContent rebuilds the viewport content, keeping the bottom pinned
// only if it already was.
func (c *Chat) updateContent() {
	var sb strings.Builder

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if len(c.messages) == 0 && !c.thinking {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No messages yet. Ask anything below."))
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}

			var roleStyle lipgloss.Style
			var roleName string
			if msg.Role == "user" {
				roleStyle = ChatUserStyle
				roleName = "you"
			} else {
				roleStyle = ChatAssistantStyle
				roleName = "assistant"
			}

			sb.WriteString(roleStyle.Render(roleName + ":"))
			sb.WriteString("\n")
			sb.WriteString(renderMarkdown(strings.TrimSpace(msg.Content), wrapWidth))
		}

		if c.thinking {
			if len(c.messages) > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(ChatAssistantStyle.Render("assistant:"))
			sb.WriteString("\n")
			sb.WriteString(renderSpinner(c.spinner.Verb, c.spinner.Idx))
			sb.WriteString(" " + lipgloss.NewStyle().Foreground(ColorTextMuted).Render(formatElapsed(time.Since(c.thinkStart))))
		} else if c.spinner.FlashFrame >= 0 {
			sb.WriteString("\n\n")
			sb.WriteString(renderCompletionFlash(c.spinner.FlashFrame))
		}
	}

	atBottom := c.viewport.AtBottom()
	c.viewport.SetContent(sb.String())
	if atBottom {
		c.viewport.GotoBottom()
	}
}

// Update handles messages.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case StopwatchTickMsg:
		if cmd := c.handleStopwatchTick(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return c, tea.Batch(cmds...)
	case CompletionFlashTickMsg:
		if cmd := c.handleCompletionFlashTick(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return c, tea.Batch(cmds...)
	}

	if c.focused {
		// Scroll keys bypass the input and drive the viewport.
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end",
				"ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Keep typing keys out of the viewport.
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the header strip, transcript panel, and input area.
func (c *Chat) View() string {
	c.syncLayout()
	hh := c.headerRows()

	var parts []string
	if hh > 0 {
		parts = append(parts, c.renderHeaderStrip(hh))
	}

	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}
	transcriptH := c.height - hh - InputTotalHeight
	parts = append(parts, panelStyle.Width(c.width).Height(transcriptH).Render(c.viewport.View()))

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	parts = append(parts, inputStyle.Width(c.width).Render(c.input.View()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeaderStrip renders the bottom `visible` rows of the strip. The top
// rows slide out first, so the accent border on the last row holds on the
// longest.
func (c *Chat) renderHeaderStrip(visible int) string {
	rows := []string{
		c.stripFill(),
		c.stripTitleRow(),
		c.stripSubtitleRow(),
		c.stripBorderRow(),
	}
	shift := ChatHeaderHeight - visible
	return strings.Join(rows[shift:], "\n")
}

// stripFill is a blank strip row.
func (c *Chat) stripFill() string {
	return ChatHeaderStyle.Render(strings.Repeat(" ", max(c.width, 0)))
}

// stripTitleRow renders the assistant title with the presence dot.
func (c *Chat) stripTitleRow() string {
	left := ChatHeaderTitleStyle.Render("  ✳ assistant")
	right := lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorSuccess).
		Render("● online  ")
	gap := c.width - VisibleWidth(left) - VisibleWidth(right)
	if gap < 0 {
		gap = 0
	}
	return left + ChatHeaderStyle.Render(strings.Repeat(" ", gap)) + right
}

// stripSubtitleRow renders the greeting line.
func (c *Chat) stripSubtitleRow() string {
	subtitle := "  canned answers, instant delivery"
	if c.displayName != "" {
		subtitle = "  here for you, " + c.displayName
	}
	return ChatHeaderMutedStyle.Render(PadToWidth(subtitle, max(c.width, 0)))
}

// stripBorderRow renders the strip's bottom rule.
func (c *Chat) stripBorderRow() string {
	return lipgloss.NewStyle().
		Background(ColorBgSubtle).
		Foreground(ColorBorder).
		Render(strings.Repeat("─", max(c.width, 0)))
}
