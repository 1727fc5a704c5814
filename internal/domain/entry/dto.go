package entry

import (
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
)

// ========================================
// FORM & PATCH DTOs
// ========================================

// EntryForm is the raw add/update modal input: four hour/minute fields and
// the date they apply to. Values are validated by the entry engine.
type EntryForm struct {
	Date       string `json:"date"`
	HoursIn    string `json:"hours_in"`
	MinutesIn  string `json:"minutes_in"`
	HoursOut   string `json:"hours_out"`
	MinutesOut string `json:"minutes_out"`
}

// AddPatch is the body of POST /employee/add/{code}.
type AddPatch struct {
	Date     string `json:"date"`
	PunchIn  string `json:"punchIn"`
	PunchOut string `json:"punchOut"`
	Status   Status `json:"status"`
}

// UpdatePatch is the body of PUT /employee/{code}. OriginalPunchIn is the
// lookup key and is sent even when it equals NewPunchIn.
type UpdatePatch struct {
	Date            string `json:"date"`
	OriginalPunchIn string `json:"originalPunchIn"`
	NewPunchIn      string `json:"newPunchIn"`
	PunchOut        string `json:"punchOut"`
}

// ApprovalPatch is the body of POST /employee/approval/{code}.
type ApprovalPatch struct {
	Date    string `json:"date"`
	PunchIn string `json:"punchIn"`
	Status  Status `json:"status"`
}

// ========================================
// REQUEST DTOs
// ========================================

type AddEntryRequest struct {
	EmployeeCode string `json:"-"`
	EntryForm
}

func (r *AddEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = appendEmployeeCodeErrors(errs, r.EmployeeCode)

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEntryRequest struct {
	EmployeeCode string `json:"-"`
	EntryForm
	OriginalPunchIn  string  `json:"original_punch_in"`
	OriginalPunchOut *string `json:"original_punch_out,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = appendEmployeeCodeErrors(errs, r.EmployeeCode)

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.OriginalPunchIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "original_punch_in",
			Message: "original_punch_in is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Key addresses the entry being edited by its stored punch-in.
func (r *UpdateEntryRequest) Key() Key {
	return Key{EmployeeCode: r.EmployeeCode, Date: r.Date, PunchIn: r.OriginalPunchIn}
}

// Original returns the stored times; an empty punch-out counts as absent.
func (r *UpdateEntryRequest) Original() Original {
	o := Original{PunchIn: r.OriginalPunchIn}
	if r.OriginalPunchOut != nil && *r.OriginalPunchOut != "" {
		o.PunchOut = r.OriginalPunchOut
	}
	return o
}

type DeleteEntryRequest struct {
	EmployeeCode string `json:"-"`
	Date         string `json:"date"`
	PunchIn      string `json:"punch_in"`
}

func (r *DeleteEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = appendEmployeeCodeErrors(errs, r.EmployeeCode)

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.PunchIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_in",
			Message: "punch_in is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *DeleteEntryRequest) Key() Key {
	return Key{EmployeeCode: r.EmployeeCode, Date: r.Date, PunchIn: r.PunchIn}
}

type ApprovalRequest struct {
	EmployeeCode string `json:"-"`
	Date         string `json:"date"`
	PunchIn      string `json:"punch_in"`
	Status       Status `json:"status"`
}

func (r *ApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = appendEmployeeCodeErrors(errs, r.EmployeeCode)

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.PunchIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_in",
			Message: "punch_in is required",
		})
	}

	if !r.Status.IsDecision() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *ApprovalRequest) Key() Key {
	return Key{EmployeeCode: r.EmployeeCode, Date: r.Date, PunchIn: r.PunchIn}
}

func appendEmployeeCodeErrors(errs validator.ValidationErrors, code string) validator.ValidationErrors {
	if validator.IsEmpty(code) {
		return append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if !validator.IsValidEmployeeCode(code) {
		return append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code contains invalid characters",
		})
	}
	return errs
}

// ========================================
// RESPONSE DTOs
// ========================================

// MutationResult carries the message the punch clock API answered with.
type MutationResult struct {
	Message string `json:"message"`
}

// Fallback messages for mutations the API confirms without a message.
const (
	MessageAdded           = "Entry added successfully."
	MessageUpdated         = "Entry updated successfully."
	MessageDeleted         = "Entry deleted successfully."
	MessageApprovalUpdated = "Entry updated successfully."
)
