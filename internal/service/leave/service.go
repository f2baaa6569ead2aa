package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/notification"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employeeRepo        employee.EmployeeRepository
	notificationService notification.Service
	clock               clock.Clock

	mu sync.Mutex
}

// NewLeaveService wires the leave workflow. employeeRepo and
// notificationService may be nil, in which case no notifications are sent.
func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.Service,
	clk clock.Clock,
) leave.LeaveService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		employeeRepo:           employeeRepo,
		notificationService:    notificationService,
		clock:                  clk,
	}
}

// ApplyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	now := l.clock.Now()
	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         leave.LeaveType(req.Type),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
		AppliedOn:    clock.Date(now),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "id", created.ID, "employee_id", created.EmployeeID, "type", created.Type)

	l.notifyAdminsOnSubmitted(ctx, created)

	return leave.NewLeaveRequestResponse(created), nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.MutationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.MutationResponse{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.MutationResponse{Applied: false}, nil
		}
		return leave.MutationResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	// No transition rules apply here; decided requests may be overwritten.
	request.Status = leave.LeaveRequestStatus(req.Status)
	request.AdminComment = req.Comment
	request.UpdatedAt = l.clock.Now()

	if err := l.LeaveRequestRepository.Update(ctx, request); err != nil {
		return leave.MutationResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("Leave request status updated", "id", request.ID, "status", request.Status)

	resp := leave.NewLeaveRequestResponse(request)
	return leave.MutationResponse{Applied: true, Request: &resp}, nil
}

// DecideLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) DecideLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	l.mu.Lock()
	request, err := l.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		l.mu.Unlock()
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.StatusPending {
		l.mu.Unlock()
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	comment := req.Comment
	request.Status = leave.LeaveRequestStatus(req.Status)
	request.AdminComment = &comment
	request.UpdatedAt = l.clock.Now()

	err = l.LeaveRequestRepository.Update(ctx, request)
	l.mu.Unlock()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("Leave request decided", "id", request.ID, "employee_id", request.EmployeeID, "status", request.Status)

	l.notifyEmployeeOnDecision(ctx, request)

	return leave.NewLeaveRequestResponse(request), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// GetEmployeeLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetEmployeeLeaves(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// ListLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		requests []leave.LeaveRequest
		err      error
	)
	if filter.Status != nil {
		requests, err = l.LeaveRequestRepository.ListByStatus(ctx, leave.LeaveRequestStatus(*filter.Status))
	} else {
		requests, err = l.LeaveRequestRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// notifyAdminsOnSubmitted tells every admin that a new request is waiting.
func (l *LeaveServiceImpl) notifyAdminsOnSubmitted(ctx context.Context, request leave.LeaveRequest) {
	if l.notificationService == nil || l.employeeRepo == nil {
		return
	}

	admins, err := l.employeeRepo.ListByRole(ctx, employee.RoleAdmin)
	if err != nil {
		slog.Warn("failed to list admins for leave notification", "error", err)
		return
	}

	sender := request.EmployeeID
	reqs := make([]notification.CreateNotificationRequest, 0, len(admins))
	for _, admin := range admins {
		if admin.EmployeeID == request.EmployeeID {
			continue
		}
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: admin.EmployeeID,
			SenderID:    &sender,
			Type:        notification.TypeLeaveSubmitted,
			Title:       "New Leave Request",
			Message:     fmt.Sprintf("%s requested %s leave from %s to %s", request.EmployeeName, request.Type, request.StartDate, request.EndDate),
			Data: map[string]interface{}{
				"leave_request_id": request.ID,
				"employee_id":      request.EmployeeID,
				"type":             string(request.Type),
			},
		})
	}
	if len(reqs) == 0 {
		return
	}

	if err := l.notificationService.QueueBulkNotification(ctx, reqs); err != nil {
		slog.Warn("failed to queue leave submitted notifications", "error", err)
	}
}

// notifyEmployeeOnDecision tells the requester their leave was approved or rejected.
func (l *LeaveServiceImpl) notifyEmployeeOnDecision(ctx context.Context, request leave.LeaveRequest) {
	if l.notificationService == nil {
		return
	}

	notifType := notification.TypeLeaveApproved
	title := "Leave Request Approved"
	if request.Status == leave.StatusRejected {
		notifType = notification.TypeLeaveRejected
		title = "Leave Request Rejected"
	}

	var comment string
	if request.AdminComment != nil {
		comment = *request.AdminComment
	}

	err := l.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: request.EmployeeID,
		Type:        notifType,
		Title:       title,
		Message:     fmt.Sprintf("Your %s leave from %s to %s was %s: %s", request.Type, request.StartDate, request.EndDate, request.Status, comment),
		Data: map[string]interface{}{
			"leave_request_id": request.ID,
			"status":           string(request.Status),
			"admin_comment":    comment,
		},
	})
	if err != nil {
		slog.Warn("failed to queue leave decision notification", "error", err)
	}
}
