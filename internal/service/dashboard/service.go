package dashboard

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

// recentAttendanceLimit caps the records shown on the employee dashboard.
const recentAttendanceLimit = 7

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

func (s *DashboardServiceImpl) today() string {
	return clock.Date(s.clock.Now())
}

// TodayRecordFor implements dashboard.DashboardService.
func (s *DashboardServiceImpl) TodayRecordFor(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	return s.recordFor(ctx, employeeID, s.today())
}

// TodayStatus implements dashboard.DashboardService.
func (s *DashboardServiceImpl) TodayStatus(ctx context.Context, employeeID string) (*attendance.TodayResponse, error) {
	date := s.today()
	record, err := s.recordFor(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	resp := &attendance.TodayResponse{Date: date, Record: record}
	if record != nil {
		resp.IsOnBreak = record.IsOnBreak()
	}
	return resp, nil
}

func (s *DashboardServiceImpl) recordFor(ctx context.Context, employeeID, date string) (*attendance.AttendanceResponse, error) {
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	resp := attendance.NewAttendanceResponse(rec)
	return &resp, nil
}

// IsOnBreak implements dashboard.DashboardService.
func (s *DashboardServiceImpl) IsOnBreak(record attendance.Attendance) bool {
	return record.IsOnBreak()
}

// PendingLeaveCount implements dashboard.DashboardService.
func (s *DashboardServiceImpl) PendingLeaveCount(ctx context.Context) (int, error) {
	return s.leaveRepo.CountByStatus(ctx, leave.StatusPending)
}

// PresentTodayCount implements dashboard.DashboardService.
func (s *DashboardServiceImpl) PresentTodayCount(ctx context.Context) (int, error) {
	return s.attendanceRepo.CountByDate(ctx, s.today())
}

// AdminSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AdminSummary(ctx context.Context) (*dashboard.AdminSummaryResponse, error) {
	date := s.today()

	var (
		totalEmployees  int
		todayAttendance []attendance.Attendance
		pending         []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.employeeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		records, err := s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{Date: &date})
		if err != nil {
			return fmt.Errorf("failed to list today's attendance: %w", err)
		}
		todayAttendance = records
		return nil
	})

	g.Go(func() error {
		requests, err := s.leaveRepo.ListByStatus(gCtx, leave.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to list pending leaves: %w", err)
		}
		pending = requests
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.AdminSummaryResponse{
		Date:              date,
		TotalEmployees:    totalEmployees,
		PresentToday:      len(todayAttendance),
		PendingLeaves:     len(pending),
		TodayAttendance:   attendance.NewAttendanceResponses(todayAttendance),
		PendingLeaveQueue: leave.NewLeaveRequestResponses(pending),
	}, nil
}

// EmployeeSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeSummary(ctx context.Context, employeeID string) (*dashboard.EmployeeSummaryResponse, error) {
	date := s.today()

	var (
		records  []attendance.Attendance
		requests []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.attendanceRepo.ListByEmployee(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		records = list
		return nil
	})

	g.Go(func() error {
		list, err := s.leaveRepo.GetByEmployeeID(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		requests = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dashboard.EmployeeSummaryResponse{
		Date:             date,
		RecentAttendance: make([]attendance.AttendanceResponse, 0, recentAttendanceLimit),
	}

	for _, rec := range records {
		if rec.Date == date {
			today := attendance.NewAttendanceResponse(rec)
			resp.Today = &today
			resp.IsOnBreak = s.IsOnBreak(rec)
			break
		}
	}

	// Newest first
	for _, rec := range slices.Backward(records) {
		if len(resp.RecentAttendance) == recentAttendanceLimit {
			break
		}
		resp.RecentAttendance = append(resp.RecentAttendance, attendance.NewAttendanceResponse(rec))
	}

	for _, r := range requests {
		resp.Leaves.Total++
		switch r.Status {
		case leave.StatusPending:
			resp.Leaves.Pending++
		case leave.StatusApproved:
			resp.Leaves.Approved++
		case leave.StatusRejected:
			resp.Leaves.Rejected++
		}
	}

	return resp, nil
}
