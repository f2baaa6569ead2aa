package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock clock.Clock

	// mu serializes read-modify-write sequences on today's record.
	mu sync.Mutex
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		clock:                clk,
	}
}

func applied(rec attendance.Attendance) attendance.MutationResponse {
	resp := attendance.NewAttendanceResponse(rec)
	return attendance.MutationResponse{Applied: true, Record: &resp}
}

func notApplied(rec *attendance.Attendance) attendance.MutationResponse {
	if rec == nil {
		return attendance.MutationResponse{Applied: false}
	}
	resp := attendance.NewAttendanceResponse(*rec)
	return attendance.MutationResponse{Applied: false, Record: &resp}
}

// today loads the employee's record for the clock's current date. A missing
// record yields (nil, nil).
func (s *AttendanceServiceImpl) today(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for %s on %s: %w", employeeID, date, err)
	}
	return &rec, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.MutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	date := clock.Date(now)

	existing, err := s.today(ctx, employeeID, date)
	if err != nil {
		return attendance.MutationResponse{}, err
	}
	if existing != nil {
		return notApplied(existing), nil
	}

	checkIn := clock.TimeOfDay(now)
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &checkIn,
		Breaks:     []attendance.Break{},
		Status:     attendance.StatusPresent,
		TotalHours: 0,
	})
	if err != nil {
		return attendance.MutationResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	slog.Info("Employee checked in", "employee_id", employeeID, "date", date, "check_in", checkIn)
	return applied(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.MutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	rec, err := s.today(ctx, employeeID, clock.Date(now))
	if err != nil {
		return attendance.MutationResponse{}, err
	}
	if rec == nil {
		return notApplied(nil), nil
	}

	// A repeated check-out overwrites the previous one; status is left as is.
	checkOut := clock.TimeOfDay(now)
	rec.TotalHours = rec.WorkedHours(checkOut)
	rec.CheckOut = &checkOut

	if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.MutationResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	slog.Info("Employee checked out", "employee_id", employeeID, "date", rec.Date, "check_out", checkOut, "total_hours", rec.TotalHours)
	return applied(*rec), nil
}

// StartBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, employeeID string) (attendance.MutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	rec, err := s.today(ctx, employeeID, clock.Date(now))
	if err != nil {
		return attendance.MutationResponse{}, err
	}
	if rec == nil {
		return notApplied(nil), nil
	}

	// An already open break does not prevent another one.
	rec.Breaks = append(rec.Breaks, attendance.Break{Start: clock.TimeOfDay(now), End: ""})

	if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.MutationResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	slog.Debug("Break started", "employee_id", employeeID, "breaks", len(rec.Breaks))
	return applied(*rec), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, employeeID string) (attendance.MutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	rec, err := s.today(ctx, employeeID, clock.Date(now))
	if err != nil {
		return attendance.MutationResponse{}, err
	}
	if rec == nil || !rec.LastBreakOpen() {
		return notApplied(rec), nil
	}

	rec.Breaks[len(rec.Breaks)-1].End = clock.TimeOfDay(now)

	if err := s.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.MutationResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	slog.Debug("Break ended", "employee_id", employeeID, "breaks", len(rec.Breaks))
	return applied(*rec), nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewAttendanceResponses(records), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewAttendanceResponses(records), nil
}
