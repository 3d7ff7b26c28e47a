package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/glint-tui/glint/internal/ui"
)

// FrameTickMsg advances the shared animation timeline. At most one is in
// flight, and only while the timeline has active values or pending timers.
type FrameTickMsg time.Time

// FrameInterval is the spacing between animation frames, roughly 30fps.
const FrameInterval = 33 * time.Millisecond

// FrameTick returns a command that sends the next FrameTickMsg.
func FrameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// AssistantReplyMsg delivers the assistant's reply once the thinking delay
// elapses.
type AssistantReplyMsg struct {
	Reply string
}

// replyDelay is how long the assistant "thinks" before answering.
const replyDelay = 1200 * time.Millisecond

// awaitReply returns a command that delivers a canned reply after the
// thinking delay.
func awaitReply() tea.Cmd {
	return tea.Tick(replyDelay, func(time.Time) tea.Msg {
		return AssistantReplyMsg{Reply: ui.RandomCannedReply()}
	})
}
