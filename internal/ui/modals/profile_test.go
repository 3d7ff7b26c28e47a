package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestNewProfileState(t *testing.T) {
	state := NewProfileState("Ada")

	if state.CurrentName != "Ada" {
		t.Errorf("expected current name 'Ada', got '%s'", state.CurrentName)
	}
	if state.NameInput.Value() != "Ada" {
		t.Errorf("expected input seeded with 'Ada', got '%s'", state.NameInput.Value())
	}
	if state.GetDisplayName() != "Ada" {
		t.Errorf("expected display name 'Ada', got '%s'", state.GetDisplayName())
	}
}

func TestProfileState_Title(t *testing.T) {
	state := NewProfileState("")
	if state.Title() != "Profile" {
		t.Errorf("expected title 'Profile', got '%s'", state.Title())
	}
}

func TestProfileState_Help(t *testing.T) {
	state := NewProfileState("")
	help := state.Help()
	if !strings.Contains(help, "Enter") || !strings.Contains(help, "Esc") {
		t.Errorf("expected help to mention Enter and Esc, got '%s'", help)
	}
}

func TestProfileState_GetDisplayName_Trims(t *testing.T) {
	state := NewProfileState("")
	state.NameInput.SetValue("  Ada  ")

	if state.GetDisplayName() != "Ada" {
		t.Errorf("expected trimmed name 'Ada', got '%s'", state.GetDisplayName())
	}
}

func TestProfileState_GetDisplayName_Empty(t *testing.T) {
	state := NewProfileState("")
	if state.GetDisplayName() != "" {
		t.Errorf("expected empty display name, got '%s'", state.GetDisplayName())
	}
}

func TestProfileState_Update_TypesIntoInput(t *testing.T) {
	state := NewProfileState("")

	newState, _ := state.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	s, ok := newState.(*ProfileState)
	if !ok {
		t.Fatalf("expected *ProfileState, got %T", newState)
	}
	if s.NameInput.Value() != "a" {
		t.Errorf("expected input value 'a' after typing, got '%s'", s.NameInput.Value())
	}
}

func TestProfileState_Render(t *testing.T) {
	state := NewProfileState("Ada")
	rendered := state.Render()

	if !strings.Contains(rendered, "Profile") {
		t.Error("expected render to contain title 'Profile'")
	}
	if !strings.Contains(rendered, "Display name:") {
		t.Error("expected render to contain 'Display name:' label")
	}
}
