package employee

import (
	"context"
)

// EmployeeService is the employee directory.
type EmployeeService interface {
	// ListEmployees returns the directory in insertion order, optionally filtered.
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by internal ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// FindByEmployeeID retrieves a single employee by employee code.
	FindByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// UpdateEmployeeProfile applies a tagged update. An unknown id is a no-op.
	UpdateEmployeeProfile(ctx context.Context, id string, update Update) (MutationResponse, error)

	// UpdateMyProfile lets an employee edit their own contact details.
	UpdateMyProfile(ctx context.Context, employeeID string, req UpdateMyProfileRequest) (MutationResponse, error)
}
