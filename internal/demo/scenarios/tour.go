package scenarios

import (
	"time"

	"github.com/glint-tui/glint/internal/demo"
)

// Tour walks through the whole interface:
// - the home dashboard and the static tabs
// - entering the assistant, with the banner choreography playing out
// - sending a message and receiving a reply
// - tapping a tab with the mouse
// - the settings sheet, live theme preview, and applying a theme
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Walk through tabs, the assistant, and the settings sheet",
	Width:       100,
	Height:      32,
	Setup: &demo.ScenarioSetup{
		DisplayName: "Ada",
		Theme:       "aurora",
	},
	Steps: []demo.Step{
		// Open on the home dashboard
		demo.Annotate("Home"),
		demo.Wait(1200 * time.Millisecond),

		// Sweep across the static tabs; these switch instantly
		demo.KeyWithDesc("2", "Projects tab"),
		demo.Wait(700 * time.Millisecond),
		demo.KeyWithDesc("5", "Calendar tab"),
		demo.Wait(900 * time.Millisecond),

		// Entering the assistant slides the wordmark aside and sends the
		// sparkle across the banner
		demo.Annotate("Assistant"),
		demo.KeyWithDesc("3", "Assistant tab"),
		demo.Settle(),
		demo.Wait(400 * time.Millisecond),

		// Draft and send a question
		demo.Key("enter"),
		demo.TypeWithDesc("What does the settings sheet do?", "Draft a question"),
		demo.Wait(400 * time.Millisecond),
		demo.KeyWithDesc("enter", "Send"),
		demo.Wait(1300 * time.Millisecond),
		demo.Reply("Settings open as a sheet over the current view. Press `ctrl+b`, pick a section, and the sheet closes behind your choice."),
		demo.Wait(1100 * time.Millisecond),

		// Tabs answer to the mouse too
		demo.Key("esc"),
		demo.ClickWithDesc(88, 3, "Tap the Calendar tab"),
		demo.Settle(),
		demo.Wait(800 * time.Millisecond),

		// The settings sheet blooms over whatever is on screen
		demo.Annotate("Settings"),
		demo.KeyWithDesc("ctrl+b", "Open settings"),
		demo.Settle(),
		demo.Wait(600 * time.Millisecond),

		// Pick the appearance section
		demo.Key("down"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("enter", "Open appearance"),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),

		// Themes preview live as the cursor moves
		demo.KeyWithDesc("down", "Preview the next theme"),
		demo.Wait(700 * time.Millisecond),
		demo.KeyWithDesc("enter", "Apply it"),
		demo.Wait(900 * time.Millisecond),

		// Close on a freshly themed home screen
		demo.KeyWithDesc("1", "Back home"),
		demo.Wait(1800 * time.Millisecond),
	},
}
