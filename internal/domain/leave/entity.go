package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	StatusPending  LeaveRequestStatus = "pending"
	StatusApproved LeaveRequestStatus = "approved"
	StatusRejected LeaveRequestStatus = "rejected"
)

func (s LeaveRequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a terminal decision.
func (s LeaveRequestStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest entity. EmployeeName is a snapshot taken when the request
// was filed. Dates are YYYY-MM-DD strings; no ordering between StartDate and
// EndDate is enforced.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Type         LeaveType
	StartDate    string
	EndDate      string
	Reason       string
	Status       LeaveRequestStatus
	AdminComment *string
	AppliedOn    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
