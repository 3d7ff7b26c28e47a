// Package haptics approximates mobile haptic feedback in a terminal: short
// audible pulses tiered by the weight of the control that was touched, plus
// desktop notifications for events that land while the user is elsewhere.
// Everything here is fire-and-forget; failures are logged and never affect
// application state.
package haptics

import (
	"github.com/gen2brain/beeep"

	"github.com/glint-tui/glint/internal/errors"
	"github.com/glint-tui/glint/internal/logger"
)

// Intensity is the weight of a pulse, selected by which control was touched.
type Intensity int

const (
	// Light accompanies small touches: tab taps, section taps.
	Light Intensity = iota
	// Medium accompanies structural changes: sidebar open/close, sending
	// a message.
	Medium
	// Heavy accompanies destructive or terminal actions.
	Heavy
)

func (i Intensity) String() string {
	switch i {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// tones maps each intensity to a frequency in hertz and a duration in
// milliseconds. Heavier pulses are lower and longer.
var tones = map[Intensity]struct {
	freq float64
	ms   int
}{
	Light:  {880, 35},
	Medium: {660, 60},
	Heavy:  {440, 110},
}

var enabled = true

// SetEnabled turns audible pulses on or off. Notifications are unaffected.
func SetEnabled(on bool) { enabled = on }

// Pulse emits an audible pulse for the given intensity. Disabled or failed
// pulses are silently dropped; the interaction they accompany has already
// happened.
func Pulse(level Intensity) {
	if !enabled {
		return
	}
	tone, ok := tones[level]
	if !ok {
		tone = tones[Light]
	}
	if err := beeep.Beep(tone.freq, tone.ms); err != nil {
		logger.Debug("haptics: pulse %s failed: %v", level, err)
	}
}

// Notify sends a desktop notification with the given title and message.
func Notify(title, message string) error {
	logger.Debug("haptics: notification title=%q message=%q", title, message)
	if err := beeep.Notify(title, message, ""); err != nil {
		logger.Warn("haptics: notification failed: %v", err)
		return errors.NotifyFailed(title, err)
	}
	return nil
}

// ReplyArrived notifies that the assistant answered while another tab was
// active.
func ReplyArrived() error {
	return Notify("glint", "Assistant replied")
}
