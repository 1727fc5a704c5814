package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/approval"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/response"
)

type ApprovalHandler interface {
	// GetApprovals returns every employee's entries split by status
	GetApprovals(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{approvalService: approvalService}
}

// GetApprovals handles GET /approvals?q=
func (h *approvalHandlerImpl) GetApprovals(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))

	result, err := h.approvalService.Load(r.Context(), search)
	if err != nil {
		response.HandleActionError(w, "fetching approvals", err)
		return
	}

	response.Success(w, result)
}
