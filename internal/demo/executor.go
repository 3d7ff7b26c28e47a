package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/glint-tui/glint/internal/app"
	"github.com/glint-tui/glint/internal/config"
	"github.com/glint-tui/glint/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// SettleCap bounds how long a Settle step may play (default: 4s)
	SettleCap time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		SettleCap:        4 * time.Second,
	}
}

// Executor runs demo scenarios and captures frames.
//
// The executor owns a virtual clock. Animation frames are produced by
// delivering frame ticks stepped at app.FrameInterval, so a scenario
// renders the same motion every run no matter how fast the executor
// itself happens to execute.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	clock         time.Time
	lastStopwatch time.Time // last thinking spinner tick
	lastFlash     time.Time // last reply-arrived flash tick

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	// Execute each step
	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	cfg := &config.Config{
		DisplayName: scenario.Setup.DisplayName,
		Theme:       scenario.Setup.Theme,
		// Sound stays off in demos so recordings never beep
		SoundEnabled:  false,
		ReducedMotion: scenario.Setup.ReducedMotion,
	}

	e.model = app.New(cfg, "demo")
	e.send(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})

	// Prime the timeline clock so transitions started by later steps
	// measure their progress from a set instant.
	e.clock = time.Now()
	e.lastStopwatch = e.clock
	e.lastFlash = e.clock
	e.send(app.FrameTickMsg(e.clock))
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		// If anything is moving, fill the pause with animation frames
		// instead of holding a single still
		if e.model.Animating() || e.model.Thinking() {
			e.playFrames(index, step.Duration)
		} else {
			e.captureFrame(index, step.Duration)
		}

	case StepKey:
		e.send(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.send(keyPress(string(ch)))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepClick:
		e.send(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepReply:
		if !e.model.Thinking() {
			return fmt.Errorf("no reply pending; send a message first")
		}
		e.send(app.AssistantReplyMsg{Reply: step.Text})
		// Play out the reply-arrived checkmark flash
		e.playFrames(index, 4*ui.CompletionFlashInterval)

	case StepResize:
		e.send(tea.WindowSizeMsg{Width: step.Width, Height: step.Height})
		e.captureFrame(index, 300*time.Millisecond)

	case StepSettle:
		e.playUntilIdle(index)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// playFrames fills a pause with animation frames, advancing the virtual
// clock one frame interval at a time.
func (e *Executor) playFrames(index int, total time.Duration) {
	numFrames := int(total / app.FrameInterval)
	if numFrames < 1 {
		numFrames = 1
	}
	for i := 0; i < numFrames; i++ {
		e.advanceFrame()
		e.captureFrame(index, app.FrameInterval)
	}
}

// playUntilIdle plays frames until the timeline goes idle, capped so a
// stuck transition cannot run away.
func (e *Executor) playUntilIdle(index int) {
	limit := int(e.config.SettleCap / app.FrameInterval)
	for i := 0; i < limit && e.model.Animating(); i++ {
		e.advanceFrame()
		e.captureFrame(index, app.FrameInterval)
	}
}

// advanceFrame steps the virtual clock one frame and delivers the frame
// tick, plus any chat ticks that have come due. The chat ignores its ticks
// while the spinner and flash are idle, so these are safe to deliver
// unconditionally.
func (e *Executor) advanceFrame() {
	e.clock = e.clock.Add(app.FrameInterval)
	e.send(app.FrameTickMsg(e.clock))

	if e.clock.Sub(e.lastStopwatch) >= ui.StopwatchInterval {
		e.lastStopwatch = e.clock
		e.send(ui.StopwatchTickMsg(e.clock))
	}
	if e.clock.Sub(e.lastFlash) >= ui.CompletionFlashInterval {
		e.lastFlash = e.clock
		e.send(ui.CompletionFlashTickMsg(e.clock))
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// send delivers a message to the model.
func (e *Executor) send(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from testutil to avoid import cycle.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+b":
		return tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	case "ctrl+y":
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
