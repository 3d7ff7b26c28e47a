package scenarios

import (
	"time"

	"github.com/glint-tui/glint/internal/demo"
)

// Motion spotlights the animation engine:
// - the banner choreography entering and leaving the assistant
// - the settings sheet reveal with its staggered sections
// - flipping reduced motion on, after which the same transitions snap
var Motion = &demo.Scenario{
	Name:        "motion",
	Description: "Banner choreography, sheet reveal, and reduced motion",
	Width:       100,
	Height:      32,
	Setup: &demo.ScenarioSetup{
		DisplayName: "Ada",
		Theme:       "midnight",
	},
	Steps: []demo.Step{
		demo.Wait(800 * time.Millisecond),

		// In and out of the assistant: the wordmark slides, the icon
		// fades, and the sparkle rides its arc both ways
		demo.Annotate("Banner choreography"),
		demo.KeyWithDesc("3", "Enter the assistant"),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("1", "And back out"),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),

		// The sheet blooms open and staggers its sections in
		demo.Annotate("Sheet reveal"),
		demo.KeyWithDesc("ctrl+b", "Open the sheet"),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("esc", "Dismiss it"),
		demo.Settle(),
		demo.Wait(500 * time.Millisecond),

		// Flip on reduced motion; the same transitions land instantly
		demo.Annotate("Reduced motion"),
		demo.KeyWithDesc("ctrl+b", "Open the sheet"),
		demo.Settle(),
		demo.Key("down"),
		demo.Wait(250 * time.Millisecond),
		demo.Key("down"),
		demo.Wait(250 * time.Millisecond),
		demo.Key("down"),
		demo.Wait(250 * time.Millisecond),
		demo.KeyWithDesc("enter", "Toggle reduced motion"),
		demo.Wait(700 * time.Millisecond),
		demo.KeyWithDesc("3", "Transitions now snap"),
		demo.Wait(700 * time.Millisecond),
		demo.KeyWithDesc("1", "No glide, straight to rest"),
		demo.Wait(900 * time.Millisecond),
	},
}
