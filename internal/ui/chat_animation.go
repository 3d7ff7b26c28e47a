package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// StopwatchTickMsg is sent to update the animated thinking display
type StopwatchTickMsg time.Time

// CompletionFlashTickMsg is sent to animate the reply-arrived checkmark flash
type CompletionFlashTickMsg time.Time

// SpinnerState tracks the shimmer spinner animation.
// FlashFrame is -1 when the completion flash is idle.
type SpinnerState struct {
	Idx        int
	Tick       int
	Verb       string
	FlashFrame int
}

// thinkingVerbs are playful status messages that cycle while a reply brews
var thinkingVerbs = []string{
	"Thinking",
	"Pondering",
	"Musing",
	"Considering",
	"Composing",
	"Drafting",
	"Noodling",
	"Percolating",
	"Brewing",
	"Marinating",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// spinnerFrameHoldTimes defines how long each frame should be held (in ticks)
var spinnerFrameHoldTimes = []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

// StopwatchInterval is the spacing between thinking spinner ticks.
const StopwatchInterval = 200 * time.Millisecond

// CompletionFlashInterval is the spacing between checkmark flash frames.
const CompletionFlashInterval = 160 * time.Millisecond

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(StopwatchInterval, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// CompletionFlashTick returns a command that sends a completion flash tick
func CompletionFlashTick() tea.Cmd {
	return tea.Tick(CompletionFlashInterval, func(t time.Time) tea.Msg {
		return CompletionFlashTickMsg(t)
	})
}

// SetThinking sets the thinking state shown while a reply is pending
func (c *Chat) SetThinking(thinking bool) {
	c.thinking = thinking
	if thinking {
		c.spinner.Verb = randomThinkingVerb()
		c.spinner.Idx = 0
		c.spinner.Tick = 0
		c.thinkStart = time.Now()
	}
	c.updateContent()
}

// IsThinking returns whether a reply is pending
func (c *Chat) IsThinking() bool {
	return c.thinking
}

// StartCompletionFlash starts the reply-arrived checkmark flash
func (c *Chat) StartCompletionFlash() tea.Cmd {
	c.spinner.FlashFrame = 0
	c.updateContent()
	return CompletionFlashTick()
}

// IsCompletionFlashing returns whether the checkmark flash is active
func (c *Chat) IsCompletionFlashing() bool {
	return c.spinner.FlashFrame >= 0
}

// renderSpinner renders the shimmering spinner with the thinking verb.
func renderSpinner(verb string, frameIdx int) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	verbStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Italic(true)

	return spinnerStyle.Render(frame) + " " + verbStyle.Render(verb+"...")
}

// renderCompletionFlash renders the checkmark flash.
// Frame 0 is bright, frame 1 settles, later frames render nothing.
func renderCompletionFlash(frame int) string {
	switch frame {
	case 0:
		return lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true).
			Render("✓") + " " +
			lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true).Render("Done")
	case 1:
		return lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Render("✓")
	default:
		return ""
	}
}

// formatElapsed formats a duration for display (e.g., "12s", "1m30s")
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%ds", secs/60, secs%60)
}

// handleStopwatchTick advances the spinner and keeps ticking while thinking
func (c *Chat) handleStopwatchTick() tea.Cmd {
	if !c.thinking {
		return nil
	}

	c.spinner.Tick++
	holdTime := spinnerFrameHoldTimes[c.spinner.Idx%len(spinnerFrameHoldTimes)]
	if c.spinner.Tick >= holdTime {
		c.spinner.Tick = 0
		c.spinner.Idx++
		if c.spinner.Idx >= len(spinnerFrames) {
			c.spinner.Idx = 0
		}
	}
	c.updateContent()
	return StopwatchTick()
}

// handleCompletionFlashTick advances the checkmark flash until it fades
func (c *Chat) handleCompletionFlashTick() tea.Cmd {
	if c.spinner.FlashFrame < 0 {
		return nil
	}

	c.spinner.FlashFrame++
	if c.spinner.FlashFrame >= 3 {
		c.spinner.FlashFrame = -1
	}
	c.updateContent()
	if c.spinner.FlashFrame >= 0 {
		return CompletionFlashTick()
	}
	return nil
}

// cannedReplies feed the assistant. A few carry markdown and fenced code so
// the transcript renderer has something to chew on.
var cannedReplies = []string{
	"Sure. Each tab keeps its own state, so switching away and back lands you exactly where you left off.",

	"A few things worth knowing:\n\n- the config file lives at `~/.glint/config.json`\n- **reduced motion** turns every transition into a snap\n- themes apply instantly, no restart",

	"That would look something like this:\n\n```go\nfunc greet(name string) string {\n\tif name == \"\" {\n\t\tname = \"there\"\n\t}\n\treturn \"hey \" + name\n}\n```\n\nShort and predictable.",

	"Settings open as a sheet over the current view. Press `ctrl+b`, pick a section, and the sheet closes behind your choice.",

	"Here's the shape of the config file:\n\n```json\n{\n  \"theme\": \"aurora\",\n  \"displayName\": \"Ada\",\n  \"soundEnabled\": true\n}\n```\n\nMissing keys fall back to defaults.",

	"## Scrolling\n\nThe strip above the transcript collapses as you scroll. Once you send a message it slides away for good, and the transcript takes the room.",
}

// RandomCannedReply returns a random assistant reply.
func RandomCannedReply() string {
	return cannedReplies[rand.Intn(len(cannedReplies))]
}
