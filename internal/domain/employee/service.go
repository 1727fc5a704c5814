package employee

import (
	"context"
)

// EmployeeService defines roster lookups used by the views
type EmployeeService interface {
	// ListEmployees returns the roster in upstream order
	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)

	// GetEmployee finds one employee by code
	GetEmployee(ctx context.Context, code string) (Employee, error)
}
