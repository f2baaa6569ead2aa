package leave

import (
	"context"
)

type LeaveService interface {
	// ApplyLeave files a new pending request dated today.
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	// UpdateLeaveStatus overwrites status and admin comment. Unknown ids are a no-op.
	UpdateLeaveStatus(ctx context.Context, req UpdateLeaveStatusRequest) (MutationResponse, error)
	// DecideLeave approves or rejects a pending request with a mandatory comment.
	DecideLeave(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	GetEmployeeLeaves(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListLeaves(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
}
