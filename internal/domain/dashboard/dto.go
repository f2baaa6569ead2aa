package dashboard

import (
	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
)

// ========== ADMIN DASHBOARD ==========

// AdminSummaryResponse backs the admin dashboard cards
type AdminSummaryResponse struct {
	Date              string                          `json:"date"`
	TotalEmployees    int                             `json:"total_employees"`
	PresentToday      int                             `json:"present_today"`
	PendingLeaves     int                             `json:"pending_leaves"`
	TodayAttendance   []attendance.AttendanceResponse `json:"today_attendance"`
	PendingLeaveQueue []leave.LeaveRequestResponse    `json:"pending_leave_queue"`
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeSummaryResponse backs the employee's own dashboard
type EmployeeSummaryResponse struct {
	Date             string                          `json:"date"`
	Today            *attendance.AttendanceResponse  `json:"today"`
	IsOnBreak        bool                            `json:"is_on_break"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
	Leaves           LeaveCountResponse              `json:"leaves"`
}

// LeaveCountResponse counts an employee's requests by status
type LeaveCountResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
