package domain

// View is a top-level screen.
type View string

// Screens.
const (
	ViewDashboard  View = "dashboard"
	ViewJobs       View = "jobs"
	ViewOffers     View = "offers"
	ViewResume     View = "resume"
	ViewNetworking View = "networking"
	ViewDiscovery  View = "discovery"
	ViewSettings   View = "settings"
)

// DefaultView is the screen shown at startup.
const DefaultView = ViewDashboard

// AllViews returns every screen in navigation order.
func AllViews() []View {
	return []View{ViewDashboard, ViewJobs, ViewOffers, ViewResume, ViewNetworking, ViewDiscovery, ViewSettings}
}

// IsValid returns true if the view is one of the known screens.
func (v View) IsValid() bool {
	for _, known := range AllViews() {
		if v == known {
			return true
		}
	}
	return false
}

// Title returns the display name of the screen.
func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewJobs:
		return "Applications"
	case ViewOffers:
		return "Interviews & Offers"
	case ViewResume:
		return "Resume"
	case ViewNetworking:
		return "Networking"
	case ViewDiscovery:
		return "Discovery"
	case ViewSettings:
		return "Settings"
	default:
		return unknownDescription
	}
}
