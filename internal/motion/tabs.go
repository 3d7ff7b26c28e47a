package motion

// Tab identifies one of the five top-level views.
type Tab int

const (
	TabHome Tab = iota
	TabProjects
	TabAssistant
	TabInbox
	TabCalendar
)

// AllTabs lists the tabs in display order.
var AllTabs = []Tab{TabHome, TabProjects, TabAssistant, TabInbox, TabCalendar}

// String returns the display label for the tab.
func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabProjects:
		return "Projects"
	case TabAssistant:
		return "Assistant"
	case TabInbox:
		return "Inbox"
	case TabCalendar:
		return "Calendar"
	default:
		return "Unknown"
	}
}

// Plan classifies a tab change by the banner choreography it requires.
type Plan int

const (
	// PlanNone means no change: from and to are the same tab.
	PlanNone Plan = iota
	// PlanEnterAssistant animates the logo aside, fades the assistant icon
	// in, and runs the sparkle forward along its path.
	PlanEnterAssistant
	// PlanLeaveAssistant animates the logo home, fades the icon out, and
	// runs the sparkle in reverse.
	PlanLeaveAssistant
	// PlanNeutral covers changes not involving the assistant tab: the
	// banner snaps to rest with no animation.
	PlanNeutral
)

// PlanFor maps a tab change to its choreography. Pure: no state, no side
// effects.
func PlanFor(from, to Tab) Plan {
	switch {
	case from == to:
		return PlanNone
	case to == TabAssistant:
		return PlanEnterAssistant
	case from == TabAssistant:
		return PlanLeaveAssistant
	default:
		return PlanNeutral
	}
}
