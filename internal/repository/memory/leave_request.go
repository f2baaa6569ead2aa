package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/google/uuid"
)

type leaveRequestRepositoryImpl struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest
	index    map[string]int
}

func NewLeaveRequestRepository() leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{
		index: make(map[string]int),
	}
}

func cloneLeaveRequest(r leave.LeaveRequest) leave.LeaveRequest {
	if r.AdminComment != nil {
		c := *r.AdminComment
		r.AdminComment = &c
	}
	return r
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
		}
		request.ID = id.String()
	}
	if _, taken := r.index[request.ID]; taken {
		return leave.LeaveRequest{}, fmt.Errorf("leave request id %q already exists", request.ID)
	}

	stored := cloneLeaveRequest(request)
	r.index[stored.ID] = len(r.requests)
	r.requests = append(r.requests, stored)

	return cloneLeaveRequest(stored), nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return cloneLeaveRequest(r.requests[pos]), nil
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.filter(func(lr leave.LeaveRequest) bool { return lr.EmployeeID == employeeID }), nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.filter(func(leave.LeaveRequest) bool { return true }), nil
}

// ListByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	return r.filter(func(lr leave.LeaveRequest) bool { return lr.Status == status }), nil
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, status leave.LeaveRequestStatus) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, lr := range r.requests {
		if lr.Status == status {
			count++
		}
	}
	return count, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	r.requests[pos] = cloneLeaveRequest(request)
	return nil
}

func (r *leaveRequestRepositoryImpl) filter(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]leave.LeaveRequest, 0)
	for _, lr := range r.requests {
		if keep(lr) {
			result = append(result, cloneLeaveRequest(lr))
		}
	}
	return result
}
