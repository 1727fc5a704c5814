package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/middleware"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/response"
)

type PreferenceHandler interface {
	// GetPreference returns the session's selected employee and view
	GetPreference(w http.ResponseWriter, r *http.Request)
	// SavePreference updates the fields present in the body
	SavePreference(w http.ResponseWriter, r *http.Request)
}

type preferenceHandlerImpl struct {
	preferenceService preference.PreferenceService
}

func NewPreferenceHandler(preferenceService preference.PreferenceService) PreferenceHandler {
	return &preferenceHandlerImpl{preferenceService: preferenceService}
}

// GetPreference handles GET /preferences
func (h *preferenceHandlerImpl) GetPreference(w http.ResponseWriter, r *http.Request) {
	result, err := h.preferenceService.Get(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SavePreference handles PUT /preferences
func (h *preferenceHandlerImpl) SavePreference(w http.ResponseWriter, r *http.Request) {
	var req preference.SavePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SessionID = middleware.SessionID(r.Context())

	result, err := h.preferenceService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
