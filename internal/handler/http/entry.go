package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/entry"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EntryHandler interface {
	// ListEntries returns an employee's raw entries
	ListEntries(w http.ResponseWriter, r *http.Request)
	// AddEntry validates a new punch entry and forwards it upstream
	AddEntry(w http.ResponseWriter, r *http.Request)
	// UpdateEntry edits an entry addressed by its original punch-in
	UpdateEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	// SetApproval approves or rejects a pending entry
	SetApproval(w http.ResponseWriter, r *http.Request)
}

type entryHandlerImpl struct {
	entryService entry.EntryService
}

func NewEntryHandler(entryService entry.EntryService) EntryHandler {
	return &entryHandlerImpl{entryService: entryService}
}

// ListEntries handles GET /employees/{code}/entries
func (h *entryHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}

	entries, err := h.entryService.List(r.Context(), code)
	if err != nil {
		response.HandleActionError(w, "fetching overtime entries", err)
		return
	}

	response.Success(w, entries)
}

// AddEntry handles POST /employees/{code}/entries
func (h *entryHandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req entry.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeCode = chi.URLParam(r, "code")

	result, err := h.entryService.Add(r.Context(), req)
	if err != nil {
		response.HandleActionError(w, "adding entry", err)
		return
	}

	response.Created(w, result.Message, result)
}

// UpdateEntry handles PUT /employees/{code}/entries
func (h *entryHandlerImpl) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req entry.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeCode = chi.URLParam(r, "code")

	result, err := h.entryService.Update(r.Context(), req)
	if err != nil {
		response.HandleActionError(w, "updating entry", err)
		return
	}

	response.SuccessWithNotice(w, result.Message, result)
}

// DeleteEntry handles DELETE /employees/{code}/entries?date=&punch_in=
func (h *entryHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := entry.DeleteEntryRequest{
		EmployeeCode: chi.URLParam(r, "code"),
		Date:         query.Get("date"),
		PunchIn:      query.Get("punch_in"),
	}

	result, err := h.entryService.Delete(r.Context(), req)
	if err != nil {
		response.HandleActionError(w, "deleting entry", err)
		return
	}

	response.SuccessWithNotice(w, result.Message, result)
}

// SetApproval handles POST /employees/{code}/entries/approval
func (h *entryHandlerImpl) SetApproval(w http.ResponseWriter, r *http.Request) {
	var req entry.ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeCode = chi.URLParam(r, "code")

	result, err := h.entryService.SetApproval(r.Context(), req)
	if err != nil {
		response.HandleActionError(w, "updating entry", err)
		return
	}

	response.SuccessWithNotice(w, result.Message, result)
}
