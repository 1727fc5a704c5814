package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/history"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/response"
)

type HistoryHandler interface {
	// GetHistory returns the audit log split into tabs
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type historyHandlerImpl struct {
	historyService history.HistoryService
}

func NewHistoryHandler(historyService history.HistoryService) HistoryHandler {
	return &historyHandlerImpl{historyService: historyService}
}

// GetHistory handles GET /history?q=
func (h *historyHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))

	result, err := h.historyService.Load(r.Context(), search)
	if err != nil {
		response.HandleActionError(w, "fetching history", err)
		return
	}

	response.Success(w, result)
}
