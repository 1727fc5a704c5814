package punchclock

import (
	"context"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/employee"
)

type EmployeeEndpoint struct {
	transport *Transport
}

// List implements employee.EmployeeRepository.
func (e *EmployeeEndpoint) List(ctx context.Context) ([]employee.Employee, error) {
	const path = "/employees"

	body, err := e.transport.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if err := decode(path, body, &employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

var _ employee.EmployeeRepository = (*EmployeeEndpoint)(nil)
