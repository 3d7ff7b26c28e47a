package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// ProfileState - State for the display name modal
// =============================================================================

type ProfileState struct {
	CurrentName string
	NameInput   textinput.Model
}

func (*ProfileState) modalState() {}

func (s *ProfileState) Title() string { return "Profile" }

func (s *ProfileState) Help() string {
	return "Enter: save  Esc: cancel"
}

func (s *ProfileState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	nameLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Display name:")

	desc := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginBottom(1).
		Render("Used in the greeting and the assistant header.")

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	inputView := inputStyle.Render(s.NameInput.View())

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		desc,
		nameLabel,
		inputView,
		help,
	)
}

func (s *ProfileState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.NameInput, cmd = s.NameInput.Update(msg)
	return s, cmd
}

// GetDisplayName returns the name entered by the user, trimmed.
func (s *ProfileState) GetDisplayName() string {
	return strings.TrimSpace(s.NameInput.Value())
}

// NewProfileState creates a new ProfileState seeded with the current name.
func NewProfileState(currentName string) *ProfileState {
	nameInput := textinput.New()
	nameInput.Placeholder = "how should glint greet you?"
	nameInput.CharLimit = ModalInputCharLimit
	nameInput.SetWidth(ModalInputWidth)
	nameInput.SetValue(currentName)
	nameInput.Focus()

	return &ProfileState{
		CurrentName: currentName,
		NameInput:   nameInput,
	}
}
