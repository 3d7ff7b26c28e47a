package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/glint-tui/glint/internal/haptics"
	"github.com/glint-tui/glint/internal/keys"
	"github.com/glint-tui/glint/internal/logger"
	"github.com/glint-tui/glint/internal/ui"
	"github.com/glint-tui/glint/internal/ui/modals"
)

// handleModalKey routes keys to the visible modal's handler based on its
// state type
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.modal.State.(type) {
	case *modals.ProfileState:
		return m.handleProfileModal(msg)
	case *modals.AppearanceState:
		return m.handleAppearanceModal(msg)
	}
	return m, nil
}

// handleProfileModal handles keys for the display name modal
func (m *Model) handleProfileModal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	state := m.modal.State.(*modals.ProfileState)

	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		name := state.GetDisplayName()
		m.config.SetDisplayName(name)
		if err := m.config.Save(); err != nil {
			logger.Error("App: failed to save config: %v", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.home.SetDisplayName(name)
		m.chat.SetDisplayName(name)
		m.syncSidebarValues()
		m.modal.Hide()
		if name == "" {
			return m, m.ShowFlashSuccess("Display name cleared")
		}
		return m, m.ShowFlashSuccess("Hi, " + name)

	default:
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
}

// handleAppearanceModal handles keys for the theme select modal. Moving the
// selection previews the theme live; escape puts the original back.
func (m *Model) handleAppearanceModal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	state := m.modal.State.(*modals.AppearanceState)

	switch msg.String() {
	case keys.Escape:
		if state.ThemeChanged() {
			ui.SetThemeByName(state.OriginalTheme)
		}
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		if state.ThemeChanged() {
			theme := state.GetSelectedTheme()
			ui.SetThemeByName(theme)
			m.config.SetTheme(theme)
			if err := m.config.Save(); err != nil {
				logger.Error("App: failed to save config: %v", err)
				m.modal.SetError("Failed to save: " + err.Error())
				return m, nil
			}
			m.syncSidebarValues()
			m.modal.Hide()
			return m, m.ShowFlashSuccess(ui.CurrentTheme().Name + " applied")
		}
		m.modal.Hide()
		return m, nil

	default:
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		// Live preview follows the highlighted option
		if sel := state.GetSelectedTheme(); sel != string(ui.CurrentThemeName()) {
			ui.SetThemeByName(sel)
		}
		return m, cmd
	}
}

// activateSection performs a settings section's action. The sheet always
// dismisses behind the choice; modal-backed sections then present their
// modal over the restored view.
func (m *Model) activateSection(section int) (tea.Model, tea.Cmd) {
	m.reveal.SectionTapped(section)
	haptics.Pulse(haptics.Light)

	var cmds []tea.Cmd
	if cmd := m.ensureFrameTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch section {
	case ui.SectionProfile:
		m.modal.Show(modals.NewProfileState(m.config.GetDisplayName()))
	case ui.SectionAppearance:
		m.modal.Show(m.newAppearanceState())
	case ui.SectionSound:
		cmds = append(cmds, m.toggleSound())
	case ui.SectionMotion:
		cmds = append(cmds, m.toggleMotion())
	case ui.SectionAbout:
		cmds = append(cmds, m.ShowFlashInfo("glint "+m.version))
	}
	return m, tea.Batch(cmds...)
}

// newAppearanceState builds the theme select modal from the builtin themes.
func (m *Model) newAppearanceState() *modals.AppearanceState {
	names := ui.ThemeNames()
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = string(name)
	}
	return modals.NewAppearanceState(ids, ui.ThemeDisplayNames(), string(ui.CurrentThemeName()))
}

// toggleSound flips the sound setting and persists it.
func (m *Model) toggleSound() tea.Cmd {
	on := !m.config.GetSoundEnabled()
	m.config.SetSoundEnabled(on)
	haptics.SetEnabled(on)
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save config: %v", err)
		return m.ShowFlashError("Failed to save settings")
	}
	m.syncSidebarValues()
	if on {
		return m.ShowFlashSuccess("Sound on")
	}
	return m.ShowFlashSuccess("Sound off")
}

// toggleMotion flips the reduced motion setting, applies it to every
// controller, and persists it.
func (m *Model) toggleMotion() tea.Cmd {
	reduced := !m.config.GetReducedMotion()
	m.config.SetReducedMotion(reduced)
	m.applyReducedMotion(reduced)
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save config: %v", err)
		return m.ShowFlashError("Failed to save settings")
	}
	m.syncSidebarValues()
	if reduced {
		return m.ShowFlashSuccess("Reduced motion on")
	}
	return m.ShowFlashSuccess("Reduced motion off")
}

// applyReducedMotion pushes the reduced motion preference into all three
// animation controllers.
func (m *Model) applyReducedMotion(on bool) {
	m.coord.SetReducedMotion(on)
	m.header.SetReducedMotion(on)
	m.reveal.SetReducedMotion(on)
}
