package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/glint-tui/glint/internal/anim"
	"github.com/glint-tui/glint/internal/motion"
)

// newTestChat returns a sized chat backed by a fresh scroll header.
func newTestChat() (*Chat, *motion.ScrollHeader, *anim.Timeline) {
	tl := anim.NewTimeline()
	header := motion.NewScrollHeader(tl, -float64(ChatHeaderHeight))
	chat := NewChat(header)
	chat.SetSize(80, 30)
	return chat, header, tl
}

func TestNewChat(t *testing.T) {
	chat, _, _ := newTestChat()

	if chat == nil {
		t.Fatal("NewChat() returned nil")
	}
	if chat.IsFocused() {
		t.Error("Chat should not be focused initially")
	}
	if chat.IsThinking() {
		t.Error("Chat should not be thinking initially")
	}
	if chat.IsCompletionFlashing() {
		t.Error("Completion flash should be idle initially")
	}
	if len(chat.Messages()) != 0 {
		t.Errorf("Expected empty transcript, got %d messages", len(chat.Messages()))
	}
}

func TestChat_FocusState(t *testing.T) {
	chat, _, _ := newTestChat()

	chat.SetFocused(true)
	if !chat.IsFocused() {
		t.Error("Should be focused after SetFocused(true)")
	}

	chat.SetFocused(false)
	if chat.IsFocused() {
		t.Error("Should not be focused after SetFocused(false)")
	}
}

func TestChat_Messages(t *testing.T) {
	chat, _, _ := newTestChat()

	chat.AddUserMessage("hello there")
	chat.AddAssistantMessage("hi yourself")

	msgs := chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}

	if msgs[0].Role != "user" || msgs[0].Content != "hello there" {
		t.Errorf("Unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Content != "hi yourself" {
		t.Errorf("Unexpected second message: %+v", msgs[1])
	}

	if msgs[0].ID == "" || msgs[1].ID == "" {
		t.Error("Messages should carry generated IDs")
	}
	if msgs[0].ID == msgs[1].ID {
		t.Error("Message IDs should be unique")
	}
	if msgs[0].SentAt.IsZero() {
		t.Error("Messages should carry a send time")
	}
}

func TestChat_LastAssistantReply(t *testing.T) {
	chat, _, _ := newTestChat()

	if _, ok := chat.LastAssistantReply(); ok {
		t.Error("Empty transcript should have no assistant reply")
	}

	chat.AddUserMessage("question")
	if _, ok := chat.LastAssistantReply(); ok {
		t.Error("User-only transcript should have no assistant reply")
	}

	chat.AddAssistantMessage("first answer")
	chat.AddUserMessage("follow up")
	chat.AddAssistantMessage("second answer")

	reply, ok := chat.LastAssistantReply()
	if !ok {
		t.Fatal("Expected an assistant reply")
	}
	if reply != "second answer" {
		t.Errorf("Expected most recent reply, got %q", reply)
	}
}

func TestChat_Input(t *testing.T) {
	chat, _, _ := newTestChat()

	chat.SetInput("  hello  ")
	if chat.GetInput() != "hello" {
		t.Errorf("Expected trimmed input 'hello', got %q", chat.GetInput())
	}

	chat.ClearInput()
	if chat.GetInput() != "" {
		t.Errorf("Expected empty input after clear, got %q", chat.GetInput())
	}
}

func TestChat_Update_TypingGoesToInput(t *testing.T) {
	chat, _, _ := newTestChat()
	chat.SetFocused(true)

	chat, _ = chat.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	chat, _ = chat.Update(tea.KeyPressMsg{Code: 'i', Text: "i"})

	if chat.GetInput() != "hi" {
		t.Errorf("Expected input 'hi', got %q", chat.GetInput())
	}
}

func TestChat_Update_UnfocusedIgnoresTyping(t *testing.T) {
	chat, _, _ := newTestChat()

	chat, _ = chat.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if chat.GetInput() != "" {
		t.Errorf("Unfocused chat should not accept typing, got %q", chat.GetInput())
	}
}

func TestChat_HeaderRows(t *testing.T) {
	chat, header, tl := newTestChat()

	if got := chat.headerRows(); got != ChatHeaderHeight {
		t.Errorf("Expected %d header rows at rest, got %d", ChatHeaderHeight, got)
	}

	// Scrolling down collapses the strip
	header.Scrolled(10)
	tl.Advance(time.Now())
	if got := chat.headerRows(); got != 0 {
		t.Errorf("Expected 0 header rows after scrolling away, got %d", got)
	}

	// Scrolling back up brings it back, amplified
	header.Scrolled(0)
	tl.Advance(time.Now().Add(time.Second))
	if got := chat.headerRows(); got != ChatHeaderHeight {
		t.Errorf("Expected %d header rows after scrolling back, got %d", ChatHeaderHeight, got)
	}
}

func TestChat_HeaderRows_Committed(t *testing.T) {
	chat, header, tl := newTestChat()

	header.Commit()
	tl.Advance(time.Now())

	if header.Present() {
		t.Error("Header should leave layout after the committed slide")
	}
	if got := chat.headerRows(); got != 0 {
		t.Errorf("Expected 0 header rows after commit, got %d", got)
	}

	// Scrolling no longer matters
	header.Scrolled(0)
	header.Scrolled(-10)
	tl.Advance(time.Now().Add(time.Second))
	if got := chat.headerRows(); got != 0 {
		t.Errorf("Expected header to stay gone, got %d rows", got)
	}
}

func TestChat_View(t *testing.T) {
	chat, _, _ := newTestChat()

	view := ansi.Strip(chat.View())

	if !strings.Contains(view, "assistant") {
		t.Error("View should contain the header strip title")
	}
	if !strings.Contains(view, "online") {
		t.Error("View should contain the presence indicator")
	}
	if !strings.Contains(view, "No messages yet") {
		t.Error("Empty transcript should show the placeholder line")
	}
}

func TestChat_View_WithMessages(t *testing.T) {
	chat, _, _ := newTestChat()

	chat.AddUserMessage("how do themes work?")
	chat.AddAssistantMessage("they apply instantly")

	view := ansi.Strip(chat.View())

	if strings.Contains(view, "No messages yet") {
		t.Error("Placeholder should disappear once messages exist")
	}
	if !strings.Contains(view, "you:") {
		t.Error("View should label the user message")
	}
	if !strings.Contains(view, "how do themes work?") {
		t.Error("View should contain the user message text")
	}
	if !strings.Contains(view, "they apply instantly") {
		t.Error("View should contain the assistant reply")
	}
}

func TestChat_View_HeaderGoneAfterCommit(t *testing.T) {
	chat, header, tl := newTestChat()

	header.Commit()
	tl.Advance(time.Now())

	view := ansi.Strip(chat.View())
	if strings.Contains(view, "online") {
		t.Error("Presence indicator should leave with the header strip")
	}
}

func TestChat_View_SubtitleUsesDisplayName(t *testing.T) {
	chat, _, _ := newTestChat()

	chat.SetDisplayName("Ada")

	view := ansi.Strip(chat.View())
	if !strings.Contains(view, "here for you, Ada") {
		t.Error("Subtitle should greet the configured name")
	}
}

func TestChat_Thinking(t *testing.T) {
	chat, _, _ := newTestChat()

	chat.SetThinking(true)

	if !chat.IsThinking() {
		t.Error("Should be thinking after SetThinking(true)")
	}
	if chat.spinner.Verb == "" {
		t.Error("Thinking should pick a verb")
	}
	if chat.thinkStart.IsZero() {
		t.Error("Thinking should start the stopwatch")
	}

	view := ansi.Strip(chat.View())
	if !strings.Contains(view, chat.spinner.Verb) {
		t.Errorf("View should show the thinking verb %q", chat.spinner.Verb)
	}

	chat.SetThinking(false)
	if chat.IsThinking() {
		t.Error("Should not be thinking after SetThinking(false)")
	}
}

func TestChat_StopwatchTick(t *testing.T) {
	chat, _, _ := newTestChat()

	// Idle ticks keep nothing running
	if cmd := chat.handleStopwatchTick(); cmd != nil {
		t.Error("Idle stopwatch tick should not reschedule")
	}

	chat.SetThinking(true)

	if cmd := chat.handleStopwatchTick(); cmd == nil {
		t.Error("Thinking stopwatch tick should reschedule")
	}
	if chat.spinner.Idx != 1 {
		t.Errorf("Expected spinner frame 1 after one tick, got %d", chat.spinner.Idx)
	}

	// A full cycle wraps back to the first frame
	for i := 0; i < len(spinnerFrames)-1; i++ {
		chat.handleStopwatchTick()
	}
	if chat.spinner.Idx != 0 {
		t.Errorf("Expected spinner to wrap to frame 0, got %d", chat.spinner.Idx)
	}
}

func TestChat_CompletionFlash(t *testing.T) {
	chat, _, _ := newTestChat()

	if cmd := chat.handleCompletionFlashTick(); cmd != nil {
		t.Error("Idle flash tick should not reschedule")
	}

	cmd := chat.StartCompletionFlash()
	if cmd == nil {
		t.Fatal("StartCompletionFlash should schedule the first tick")
	}
	if !chat.IsCompletionFlashing() {
		t.Error("Flash should be active after start")
	}
	if chat.spinner.FlashFrame != 0 {
		t.Errorf("Expected flash frame 0, got %d", chat.spinner.FlashFrame)
	}

	if cmd := chat.handleCompletionFlashTick(); cmd == nil {
		t.Error("Flash should keep ticking at frame 1")
	}
	if cmd := chat.handleCompletionFlashTick(); cmd == nil {
		t.Error("Flash should keep ticking at frame 2")
	}
	if cmd := chat.handleCompletionFlashTick(); cmd != nil {
		t.Error("Flash should stop ticking once faded")
	}
	if chat.IsCompletionFlashing() {
		t.Error("Flash should be idle after fading")
	}
}

func TestChat_TickIntervals(t *testing.T) {
	if StopwatchInterval <= 0 {
		t.Error("StopwatchInterval should be positive")
	}
	if CompletionFlashInterval <= 0 {
		t.Error("CompletionFlashInterval should be positive")
	}
	if len(spinnerFrameHoldTimes) != len(spinnerFrames) {
		t.Errorf("spinnerFrameHoldTimes length (%d) should match spinnerFrames (%d)",
			len(spinnerFrameHoldTimes), len(spinnerFrames))
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"sub-second", 400 * time.Millisecond, "0s"},
		{"seconds", 12 * time.Second, "12s"},
		{"exactly a minute", time.Minute, "1m0s"},
		{"minutes and seconds", 90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatElapsed(tt.d)
			if result != tt.expected {
				t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, result, tt.expected)
			}
		})
	}
}

func TestRenderCompletionFlash(t *testing.T) {
	bright := ansi.Strip(renderCompletionFlash(0))
	if !strings.Contains(bright, "✓") || !strings.Contains(bright, "Done") {
		t.Errorf("Frame 0 should show the bright checkmark, got %q", bright)
	}

	settled := ansi.Strip(renderCompletionFlash(1))
	if !strings.Contains(settled, "✓") || strings.Contains(settled, "Done") {
		t.Errorf("Frame 1 should show only the checkmark, got %q", settled)
	}

	if renderCompletionFlash(2) != "" {
		t.Error("Later frames should render nothing")
	}
}

func TestRandomCannedReply(t *testing.T) {
	for i := 0; i < 20; i++ {
		if RandomCannedReply() == "" {
			t.Fatal("Canned replies should never be empty")
		}
	}
}
