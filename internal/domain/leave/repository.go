package leave

import (
	"context"
)

// LeaveRequestRepository stores leave requests in insertion order.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status LeaveRequestStatus) ([]LeaveRequest, error)
	CountByStatus(ctx context.Context, status LeaveRequestStatus) (int, error)
	Update(ctx context.Context, request LeaveRequest) error
}
