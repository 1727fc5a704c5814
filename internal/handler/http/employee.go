package http

import (
	"net/http"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	// ListEmployees returns the roster with the active employee count
	ListEmployees(w http.ResponseWriter, r *http.Request)
	// GetEmployee returns one roster row by code
	GetEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees handles GET /employees
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleActionError(w, "fetching employees", err)
		return
	}

	response.Success(w, result)
}

// GetEmployee handles GET /employees/{code}
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		response.BadRequest(w, "Employee code is required", nil)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
