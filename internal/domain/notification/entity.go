package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLeaveSubmitted NotificationType = "leave_submitted"
	TypeLeaveApproved  NotificationType = "leave_approved"
	TypeLeaveRejected  NotificationType = "leave_rejected"
)

// EventName is the SSE event a notification of this type is streamed as.
func (t NotificationType) EventName() string {
	switch t {
	case TypeLeaveSubmitted:
		return "leave.submitted"
	case TypeLeaveApproved, TypeLeaveRejected:
		return "leave.decided"
	}
	return "notification"
}

// Notification is addressed to an employee by employee code.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
