package approval

import "github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"

type ApprovalRow struct {
	EmployeeCode string       `json:"employee_code"`
	EmployeeName string       `json:"employee_name"`
	Date         string       `json:"date"`
	DisplayDate  string       `json:"display_date"`
	PunchIn      *string      `json:"punch_in_raw"`
	DisplayIn    string       `json:"punch_in"`
	DisplayOut   string       `json:"punch_out"`
	Overtime     string       `json:"overtime"`
	Status       entry.Status `json:"status"`
	Badge        string       `json:"badge"`
	CanDecide    bool         `json:"can_decide"`
}

// ApprovalView aggregates every employee's entries split by status.
type ApprovalView struct {
	Search        string        `json:"search,omitempty"`
	EmployeeCount int           `json:"employee_count"`
	Pending       []ApprovalRow `json:"pending"`
	Approved      []ApprovalRow `json:"approved"`
	Rejected      []ApprovalRow `json:"rejected"`
	Empty         bool          `json:"empty"`
}
