package app

import (
	"strings"
	"testing"

	"github.com/glint-tui/glint/internal/config"
	"github.com/glint-tui/glint/internal/motion"
	"github.com/glint-tui/glint/internal/ui"
)

func TestNew_DefaultThemeInitialization(t *testing.T) {
	// Create a config with no theme set
	cfg := &config.Config{}

	_ = New(cfg, "test-version")

	currentTheme := ui.CurrentTheme()
	if currentTheme.Name != "Aurora" {
		t.Errorf("Expected default theme to be Aurora, got %s", currentTheme.Name)
	}
}

func TestNew_SavedThemeInitialization(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetTheme(string(ui.ThemeMidnight))

	_ = New(cfg, "test-version")

	currentTheme := ui.CurrentTheme()
	if currentTheme.Name != "Midnight" {
		t.Errorf("Expected theme to be Midnight, got %s", currentTheme.Name)
	}
}

func TestNew_StartsOnHomeTab(t *testing.T) {
	m := testModel(testConfig())

	if m.ActiveTab() != motion.TabHome {
		t.Errorf("Expected Home tab on startup, got %s", m.ActiveTab())
	}
	if m.sidebarActive() {
		t.Error("Expected settings sheet closed on startup")
	}
	if m.modal.IsVisible() {
		t.Error("Expected no modal on startup")
	}
}

func TestNew_SeedsDisplayNameEverywhere(t *testing.T) {
	cfg := testConfig()
	cfg.SetDisplayName("Jordan")

	m := testModelWithSize(cfg, 100, 40)

	view := m.RenderToString()
	if !strings.Contains(view, "Jordan") {
		t.Error("Expected home greeting to include the display name")
	}
}

func TestView_LoadingBeforeFirstSize(t *testing.T) {
	m := testModel(testConfig())

	if m.RenderToString() != "Loading..." {
		t.Error("Expected loading placeholder before the first WindowSizeMsg")
	}
}

func TestUpdate_WindowSizePropagates(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 40)

	if m.width != 100 || m.height != 40 {
		t.Errorf("Expected size 100x40, got %dx%d", m.width, m.height)
	}
	view := m.RenderToString()
	if view == "Loading..." {
		t.Error("Expected a rendered view after sizing")
	}
	if !strings.Contains(view, "Home") {
		t.Error("Expected the tab bar in the rendered view")
	}
}

func TestRenderToString_EveryTabRenders(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"1", "4 active"},    // home projects card
		{"2", "coming soon"}, // projects placeholder
		{"3", "Ask anything"},
		{"4", "coming soon"}, // inbox placeholder
		{"5", "Mo Tu We"},    // calendar weekday header
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := testModelWithSize(testConfig(), 100, 40)
			m = sendKey(m, tt.key)
			view := strings.ToLower(m.RenderToString())
			if !strings.Contains(view, strings.ToLower(tt.want)) {
				t.Errorf("Tab %s: expected view to contain %q", tt.key, tt.want)
			}
		})
	}
}
