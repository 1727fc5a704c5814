package entry

// Status is the approval state of a punch entry.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s can be set through the approval endpoint.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// PunchEntry is one attendance record as served by the punch clock API.
// EmployeeCode and EmployeeName are filled in by the client after fetching.
type PunchEntry struct {
	EmployeeCode string  `json:"employeeCode,omitempty"`
	EmployeeName string  `json:"employeeName,omitempty"`
	Date         string  `json:"date"`               // YYYY-MM-DD
	PunchIn      *string `json:"punchIn"`            // HH:MM:SS
	PunchOut     *string `json:"punchOut"`           // HH:MM:SS
	Overtime     *string `json:"overtime,omitempty"` // HH:MM:SS, computed upstream
	Status       Status  `json:"status"`
}

// Key addresses an entry upstream. The API has no surrogate id, so the
// punch-in here is always the value currently stored, never an edited one.
type Key struct {
	EmployeeCode string
	Date         string
	PunchIn      string
}

// Original holds the stored times an update is diffed against.
type Original struct {
	PunchIn  string
	PunchOut *string
}

func (e PunchEntry) Key() Key {
	k := Key{EmployeeCode: e.EmployeeCode, Date: e.Date}
	if e.PunchIn != nil {
		k.PunchIn = *e.PunchIn
	}
	return k
}

func (e PunchEntry) Original() Original {
	o := Original{PunchOut: e.PunchOut}
	if e.PunchIn != nil {
		o.PunchIn = *e.PunchIn
	}
	return o
}

// Badge names the colour the dashboard uses for the status.
func (s Status) Badge() string {
	switch s {
	case StatusApproved:
		return "success"
	case StatusRejected:
		return "danger"
	}
	return "warning"
}

// Label is the status text, "N/A" when upstream sent none.
func (s Status) Label() string {
	if s == "" {
		return "N/A"
	}
	return string(s)
}
