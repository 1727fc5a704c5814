package preference

import "time"

// View is a top-level dashboard screen.
type View string

const (
	ViewDashboard View = "dashboardView"
	ViewEmployees View = "employeesView"
	ViewAdmin     View = "adminView"
)

func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewEmployees, ViewAdmin:
		return true
	}
	return false
}

// Preference is the UI state remembered per browser session.
type Preference struct {
	SessionID        string
	SelectedEmployee string
	ActiveView       View
	UpdatedAt        time.Time
}

// Default is what a session without saved state sees.
func Default(sessionID string) Preference {
	return Preference{SessionID: sessionID, ActiveView: ViewDashboard}
}
