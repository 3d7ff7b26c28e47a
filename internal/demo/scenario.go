// Package demo provides infrastructure for generating demos of glint's
// interface. Scenarios feed scripted input to a real model and drive the
// animation timeline on a virtual clock, so recordings are deterministic
// and reproducible without a human at the keyboard.
package demo

import (
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing). While animations
	// or the thinking spinner are running, the pause is filled with frames
	// so the motion shows up in the recording.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClick sends a left mouse click at a terminal cell.
	StepClick
	// StepReply delivers the assistant's reply to a sent message.
	StepReply
	// StepResize resizes the terminal mid-scenario.
	StepResize
	// StepSettle plays frames until every animation has finished.
	StepSettle
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the current frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepReply
	Text string

	// For StepWait
	Duration time.Duration

	// For StepClick
	X, Y int

	// For StepResize
	Width, Height int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 32)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial configuration for a demo. Sound is
// always off so a recording rig never beeps.
type ScenarioSetup struct {
	DisplayName   string
	Theme         string
	ReducedMotion bool
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		DisplayName: "Ada",
		Theme:       "aurora",
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 32
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Click creates a mouse click step at a terminal cell.
func Click(x, y int) Step {
	return Step{
		Type: StepClick,
		X:    x,
		Y:    y,
	}
}

// ClickWithDesc creates a mouse click step with a description.
func ClickWithDesc(x, y int, description string) Step {
	return Step{
		Type:        StepClick,
		X:           x,
		Y:           y,
		Description: description,
	}
}

// Reply creates an assistant reply step. The scenario must have sent a
// message first; the reply lands in the transcript exactly as given.
func Reply(text string) Step {
	return Step{
		Type: StepReply,
		Text: text,
	}
}

// Resize creates a terminal resize step.
func Resize(width, height int) Step {
	return Step{
		Type:   StepResize,
		Width:  width,
		Height: height,
	}
}

// Settle creates a step that plays frames until the timeline goes idle.
// Use it after a tab switch or sheet toggle to let the transition finish
// before the next action.
func Settle() Step {
	return Step{
		Type: StepSettle,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
