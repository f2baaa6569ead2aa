package dashboard

import (
	"context"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
)

// DashboardService holds the derived read views. Every call recomputes from
// the current collections.
type DashboardService interface {
	// TodayRecordFor returns the employee's record for today, or nil
	TodayRecordFor(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error)

	// TodayStatus returns today's date, record and break state from a single clock read
	TodayStatus(ctx context.Context, employeeID string) (*attendance.TodayResponse, error)

	// IsOnBreak reports whether any break of the record is still open
	IsOnBreak(record attendance.Attendance) bool

	// PendingLeaveCount counts requests with status pending
	PendingLeaveCount(ctx context.Context) (int, error)

	// PresentTodayCount counts attendance records dated today
	PresentTodayCount(ctx context.Context) (int, error)

	// AdminSummary returns the admin dashboard data, fetched concurrently
	AdminSummary(ctx context.Context) (*AdminSummaryResponse, error)

	// EmployeeSummary returns one employee's dashboard data
	EmployeeSummary(ctx context.Context, employeeID string) (*EmployeeSummaryResponse, error)
}
