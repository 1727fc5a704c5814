package preference

import "github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"

// SavePreferenceRequest updates only the fields that are set.
type SavePreferenceRequest struct {
	SessionID        string  `json:"-"`
	SelectedEmployee *string `json:"selected_employee,omitempty"`
	ActiveView       *View   `json:"active_view,omitempty"`
}

func (r *SavePreferenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session",
			Message: "session is required",
		})
	}

	// Empty clears the selection.
	if r.SelectedEmployee != nil && *r.SelectedEmployee != "" && !validator.IsValidEmployeeCode(*r.SelectedEmployee) {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_employee",
			Message: "selected_employee contains invalid characters",
		})
	}

	if r.ActiveView != nil && !r.ActiveView.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "active_view",
			Message: "active_view must be one of: dashboardView, employeesView, adminView",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PreferenceResponse struct {
	SelectedEmployee string `json:"selected_employee"`
	ActiveView       View   `json:"active_view"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}
