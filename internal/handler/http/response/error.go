package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/jwt"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/punchclock"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	HandleActionError(w, "", err)
}

// HandleActionError is HandleError for a user action such as "adding entry".
// Upstream and unexpected failures get a toast of the form
// "Error adding entry: <reason>"; validation toasts are never prefixed.
func HandleActionError(w http.ResponseWriter, action string, err error) {
	// Form validation, checked in the order the engine runs
	var formErr *entry.ValidationError
	if errors.As(err, &formErr) {
		message := Sentence(formErr.Kind.Error())
		ValidationError(w, message, map[string]string{formErr.Field: message})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		message := "Validation failed"
		if len(validationErrs) > 0 {
			message = Sentence(validationErrs[0].Message)
		}
		ValidationError(w, message, validationErrs.ToMap())
		return
	}

	var netErr *punchclock.NetworkError

	switch {
	// Entry domain
	case entry.IsNoChange(err):
		Info(w, Sentence(entry.ErrNoChange.Error()))
	case errors.Is(err, entry.ErrEmployeeRequired),
		errors.Is(err, entry.ErrInvalidApprovalStatus):
		ValidationError(w, Sentence(err.Error()), nil)

	// Employee domain
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Preference domain
	case errors.Is(err, preference.ErrSessionRequired):
		BadRequest(w, "Session is required", nil)

	// Auth
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Punch clock API
	case errors.As(err, &netErr):
		slog.Warn("Punch clock API error", "status", netErr.StatusCode, "error", netErr)
		BadGateway(w, "UPSTREAM_ERROR", netErr.Message, withAction(action, netErr.Message))
	case punchclock.IsMalformed(err):
		slog.Warn("Malformed punch clock response", "error", err)
		BadGateway(w, "UPSTREAM_MALFORMED", "Unexpected response from punch clock API", withAction(action, "unexpected response from punch clock API"))

	// Default
	default:
		slog.Error("Unhandled error", "action", action, "error", err)
		InternalServerError(w, "An unexpected error occurred", withAction(action, "an unexpected error occurred"))
	}
}

func withAction(action, reason string) string {
	if action == "" {
		return Sentence(reason)
	}
	return "Error " + action + ": " + reason
}

// Sentence upper-cases the first letter and terminates with a period.
func Sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
