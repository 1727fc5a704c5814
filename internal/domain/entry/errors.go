package entry

import "errors"

// Entry validation errors, checked in this order.
var (
	ErrMissingField = errors.New("please fill in all hour and minute fields")
	ErrNotNumeric   = errors.New("hours and minutes must be numeric and up to 2 digits")
	ErrOutBeforeIn  = errors.New("punch out must be after punch in")
	ErrInvalidDate  = errors.New("please enter a valid date")
)

// ErrNoChange is returned by an update whose canonical times equal the stored
// ones. It is informational: nothing is sent upstream.
var ErrNoChange = errors.New("no changes detected")

// General errors
var (
	ErrEmployeeRequired      = errors.New("please select an employee and a date")
	ErrInvalidApprovalStatus = errors.New("approval status must be approved or rejected")
)

// ValidationError reports which form field failed and why. Kind is one of
// ErrMissingField, ErrNotNumeric, ErrInvalidDate or ErrOutBeforeIn.
type ValidationError struct {
	Kind  error
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Kind.Error()
	}
	return e.Field + ": " + e.Kind.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNoChange reports whether err is the no-op outcome of an update.
func IsNoChange(err error) bool {
	return errors.Is(err, ErrNoChange)
}
