package attendance

import (
	"context"
)

// AttendanceService tracks daily check-in, breaks and check-out. Mutations
// that find no applicable record are silent no-ops (Applied=false).
type AttendanceService interface {
	// CheckIn creates today's record if none exists.
	CheckIn(ctx context.Context, employeeID string) (MutationResponse, error)

	// CheckOut stamps the check-out time on today's record and recomputes total hours.
	CheckOut(ctx context.Context, employeeID string) (MutationResponse, error)

	// StartBreak appends an open break to today's record.
	StartBreak(ctx context.Context, employeeID string) (MutationResponse, error)

	// EndBreak closes the last break of today's record if it is open.
	EndBreak(ctx context.Context, employeeID string) (MutationResponse, error)

	// GetEmployeeAttendance returns one employee's records in insertion order.
	GetEmployeeAttendance(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// ListAttendance returns every record matching the filter (admin view).
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
