package leave

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"

type ApplyLeaveRequest struct {
	EmployeeID   string `json:"-"`
	EmployeeName string `json:"-"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}

	if !LeaveType(r.Type).IsValid() {
		errs.Add("type", "type must be one of paid, sick, unpaid")
	}

	// Start and end are checked for format only.
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}
	if validator.ExceedsLength(r.Reason, 1000) {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

// UpdateLeaveStatusRequest sets a decision status and replaces the admin
// comment (cleared when Comment is nil). Requests never return to pending.
type UpdateLeaveStatusRequest struct {
	ID      string  `json:"id"`
	Status  string  `json:"status"`
	Comment *string `json:"comment,omitempty"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if !LeaveRequestStatus(r.Status).IsDecision() {
		errs.Add("status", "status must be approved or rejected")
	}

	return errs.Err()
}

// DecideLeaveRequest is an admin decision on a pending request.
type DecideLeaveRequest struct {
	RequestID string `json:"-"`
	Status    string `json:"status"`
	Comment   string `json:"comment"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs.Add("request_id", "request_id is required")
	}
	if !LeaveRequestStatus(r.Status).IsDecision() {
		errs.Add("status", "status must be approved or rejected")
	}
	if validator.IsEmpty(r.Comment) {
		errs.Add("comment", "comment is required")
	}
	if validator.ExceedsLength(r.Comment, 1000) {
		errs.Add("comment", "comment must not exceed 1000 characters")
	}

	return errs.Err()
}

type LeaveRequestFilter struct {
	Status *string
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != nil && !LeaveRequestStatus(*f.Status).IsValid() {
		errs.Add("status", "status must be one of pending, approved, rejected")
	}
	return errs.Err()
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
	AppliedOn    string  `json:"applied_on"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         string(r.Type),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Reason:       r.Reason,
		Status:       string(r.Status),
		AdminComment: r.AdminComment,
		AppliedOn:    r.AppliedOn,
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}

type MutationResponse struct {
	Applied bool                  `json:"applied"`
	Request *LeaveRequestResponse `json:"request,omitempty"`
}
