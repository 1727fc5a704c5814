package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/dashboard"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns one employee's entries as date cards with totals
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard?employee=&month=&year=&latest=
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := dashboard.DashboardFilter{
		EmployeeCode: strings.TrimSpace(query.Get("employee")),
		LatestFirst:  parseBool(query.Get("latest")),
	}

	details := make(map[string]string)
	if month, ok := parseOptionalInt(query.Get("month")); ok {
		filter.Month = month
	} else {
		details["month"] = "month must be a number"
	}
	if year, ok := parseOptionalInt(query.Get("year")); ok {
		filter.Year = year
	} else {
		details["year"] = "year must be a number"
	}
	if len(details) > 0 {
		response.BadRequest(w, "Invalid query parameters", details)
		return
	}

	result, err := h.dashboardService.Load(r.Context(), filter)
	if err != nil {
		response.HandleActionError(w, "fetching overtime entries", err)
		return
	}

	response.Success(w, result)
}

// parseOptionalInt treats an empty value as "no filter".
func parseOptionalInt(raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
