package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee; EmployeeID and Email must be unique.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	// Update replaces the stored employee with the same ID.
	Update(ctx context.Context, updated Employee) error
	// List returns employees in insertion order.
	List(ctx context.Context) ([]Employee, error)
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
	Count(ctx context.Context) (int, error)
}
