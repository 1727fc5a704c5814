package response

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Notice  *Notice      `json:"notice,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
	NoticeInfo    NoticeType = "info"
)

// Notice is the toast the dashboard shows for an outcome. ID lets the client
// dismiss a specific toast.
type Notice struct {
	ID      string     `json:"id"`
	Type    NoticeType `json:"type"`
	Message string     `json:"message"`
}

func NewNotice(noticeType NoticeType, message string) *Notice {
	return &Notice{
		ID:      uuid.NewString(),
		Type:    noticeType,
		Message: message,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "ENCODING_ERROR",
				Message: "Failed to encode response",
			},
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithNotice answers a mutation; the message is also shown as a
// success toast.
func SuccessWithNotice(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Notice:  NewNotice(NoticeSuccess, message),
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
		Notice:  NewNotice(NoticeSuccess, message),
	})
}

// Info is a successful answer where nothing happened, e.g. an update
// without changes.
func Info(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Notice:  NewNotice(NoticeInfo, message),
	})
}

// Error responses
func errorResponse(w http.ResponseWriter, status int, code, message string, details map[string]string, notice string) {
	resp := Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	if notice != "" {
		resp.Notice = NewNotice(NoticeError, notice)
	}
	writeJSON(w, status, resp)
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	errorResponse(w, http.StatusBadRequest, "BAD_REQUEST", message, details, message)
}

func ValidationError(w http.ResponseWriter, message string, details map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", message, details, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", message, nil, "")
}

func NotFound(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusNotFound, "NOT_FOUND", message, nil, message)
}

func BadGateway(w http.ResponseWriter, code, message, notice string) {
	errorResponse(w, http.StatusBadGateway, code, message, nil, notice)
}

func InternalServerError(w http.ResponseWriter, message, notice string) {
	errorResponse(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil, notice)
}
