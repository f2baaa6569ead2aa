package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	clock clock.Clock

	mu sync.Mutex
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, clk clock.Clock) employee.EmployeeService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
}

func matchesSearch(e employee.Employee, needle string) bool {
	for _, field := range []string{e.Name, e.Email, e.EmployeeID, e.Department} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if needle != "" && !matchesSearch(e, needle) {
			continue
		}
		result = append(result, employee.NewEmployeeResponse(e))
	}
	return result, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// FindByEmployeeID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FindByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// UpdateEmployeeProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployeeProfile(ctx context.Context, id string, update employee.Update) (employee.MutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.MutationResponse{Applied: false}, nil
		}
		return employee.MutationResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var updated employee.Employee
	switch u := update.(type) {
	case employee.ProfileUpdate:
		updated = u.Apply(current)
	case employee.SalaryUpdate:
		if err := u.Validate(); err != nil {
			return employee.MutationResponse{}, err
		}
		updated = u.Apply(current)
	default:
		return employee.MutationResponse{}, employee.ErrUnknownUpdate
	}
	updated.UpdatedAt = s.clock.Now()

	if err := s.EmployeeRepository.Update(ctx, updated); err != nil {
		return employee.MutationResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	slog.Info("Employee updated", "id", id, "employee_id", updated.EmployeeID, "update", fmt.Sprintf("%T", update))

	resp := employee.NewEmployeeResponse(updated)
	return employee.MutationResponse{Applied: true, Employee: &resp}, nil
}

// UpdateMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateMyProfile(ctx context.Context, employeeID string, req employee.UpdateMyProfileRequest) (employee.MutationResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.MutationResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.MutationResponse{Applied: false}, nil
		}
		return employee.MutationResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.UpdateEmployeeProfile(ctx, e.ID, req.Command())
}
