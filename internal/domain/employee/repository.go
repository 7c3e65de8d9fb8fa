package employee

import "context"

// EmployeeRepository defines data access methods for employees. Reads join
// the linked account and assigned project so callers never chase references
// themselves.
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByAccountID(ctx context.Context, accountID int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
