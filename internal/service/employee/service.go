package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		employees = []employee.Employee{}
	}

	return employee.ListEmployeeResponse{
		Employees:   employees,
		ActiveCount: len(employees),
		Empty:       len(employees) == 0,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, code string) (employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to list employees: %w", err)
	}

	for _, e := range employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, fmt.Errorf("employee code %s: %w", code, employee.ErrEmployeeNotFound)
}
