package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type employeeRepositoryImpl struct {
	mu        sync.RWMutex
	employees []employee.Employee
	index     map[string]int
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		index: make(map[string]int),
	}
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneEmployee(e employee.Employee) employee.Employee {
	e.Phone = copyStringPtr(e.Phone)
	e.Address = copyStringPtr(e.Address)
	e.Avatar = copyStringPtr(e.Avatar)
	return e
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if e.EmployeeID == newEmployee.EmployeeID {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}

	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}
	if _, taken := r.index[newEmployee.ID]; taken {
		return employee.Employee{}, fmt.Errorf("employee id %q already exists", newEmployee.ID)
	}

	stored := cloneEmployee(newEmployee)
	r.index[stored.ID] = len(r.employees)
	r.employees = append(r.employees, stored)

	return cloneEmployee(stored), nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return cloneEmployee(r.employees[pos]), nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.EmployeeID == employeeID })
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.Email == email })
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[updated.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[pos] = cloneEmployee(updated)
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		result = append(result, cloneEmployee(e))
	}
	return result, nil
}

// ListByRole implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]employee.Employee, 0)
	for _, e := range r.employees {
		if e.Role == role {
			result = append(result, cloneEmployee(e))
		}
	}
	return result, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.employees), nil
}

func (r *employeeRepositoryImpl) find(match func(employee.Employee) bool) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if match(e) {
			return cloneEmployee(e), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
