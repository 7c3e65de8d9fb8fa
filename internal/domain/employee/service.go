package employee

import "context"

// EmployeeService defines read access to employees
type EmployeeService interface {
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
