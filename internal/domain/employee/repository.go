package employee

import "context"

// EmployeeRepository reads the roster from the punch clock API.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
}
