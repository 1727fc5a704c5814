package dashboard

import (
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
)

// DashboardFilter selects what the per-employee dashboard shows.
type DashboardFilter struct {
	EmployeeCode string `json:"employee"`
	Month        *int   `json:"month,omitempty"` // 1..12
	Year         *int   `json:"year,omitempty"`
	LatestFirst  bool   `json:"latest"`
}

func (f *DashboardFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeCode != "" && !validator.IsValidEmployeeCode(f.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee contains invalid characters",
		})
	}

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != nil && (*f.Year < 1 || *f.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RowActions lists the buttons a row offers. Pending rows can be decided,
// decided rows can be edited or removed.
type RowActions struct {
	Approve bool `json:"approve"`
	Reject  bool `json:"reject"`
	Update  bool `json:"update"`
	Delete  bool `json:"delete"`
}

// UpdatePrefill seeds the update modal with the stored values.
type UpdatePrefill struct {
	Date             string  `json:"date"`
	OriginalPunchIn  string  `json:"original_punch_in"`
	OriginalPunchOut *string `json:"original_punch_out,omitempty"`
	HoursIn          string  `json:"hours_in"`
	MinutesIn        string  `json:"minutes_in"`
	HoursOut         string  `json:"hours_out"`
	MinutesOut       string  `json:"minutes_out"`
}

// EntryRow is one entry ready to render. EmployeeCode, Date and PunchInRaw
// form the key the approve, reject and delete actions send back.
type EntryRow struct {
	EmployeeCode string         `json:"employee_code"`
	Date         string         `json:"date"`
	PunchInRaw   *string        `json:"punch_in_raw"`
	PunchIn      string         `json:"punch_in"`
	PunchOut     string         `json:"punch_out"`
	Overtime     string         `json:"overtime"`
	Status       entry.Status   `json:"status"`
	StatusLabel  string         `json:"status_label"`
	Badge        string         `json:"badge"`
	Actions      RowActions     `json:"actions"`
	Prefill      *UpdatePrefill `json:"prefill,omitempty"`
}

// DayCard is one date heading with its rows.
type DayCard struct {
	Date    string     `json:"date"`
	Heading string     `json:"heading"`
	Rows    []EntryRow `json:"rows"`
}

type DashboardView struct {
	EmployeeCode  string    `json:"employee_code"`
	Cards         []DayCard `json:"cards"`
	EntryCount    int       `json:"entry_count"`
	PendingCount  int       `json:"pending_count"`
	TotalOvertime string    `json:"total_overtime"`
	Empty         bool      `json:"empty"`
}
