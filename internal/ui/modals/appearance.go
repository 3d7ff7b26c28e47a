package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// AppearanceState - State for the theme picker modal
// =============================================================================

type AppearanceState struct {
	selectedTheme string
	OriginalTheme string // To detect if theme changed

	form *huh.Form
}

func (*AppearanceState) modalState() {}

func (s *AppearanceState) Title() string { return "Appearance" }

func (s *AppearanceState) Help() string {
	return "up/down: choose  Enter: apply  Esc: cancel"
}

func (s *AppearanceState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AppearanceState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the selected theme key.
func (s *AppearanceState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *AppearanceState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// NewAppearanceState creates a new AppearanceState with the available themes.
// themes holds the config keys, displayNames the labels shown in the select.
func NewAppearanceState(themes []string, displayNames []string, currentTheme string) *AppearanceState {
	s := &AppearanceState{
		selectedTheme: currentTheme,
		OriginalTheme: currentTheme,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(displayNames[i], themes[i])
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 8)

	initHuhForm(s.form)
	return s
}
