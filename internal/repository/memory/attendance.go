package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type attendanceRepositoryImpl struct {
	mu      sync.RWMutex
	records []attendance.Attendance
	index   map[string]int // ID -> position in records
}

func NewAttendanceRepository() attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		index: make(map[string]int),
	}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newRecord attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == newRecord.EmployeeID && existing.Date == newRecord.Date {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
	}

	if newRecord.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		newRecord.ID = id.String()
	}
	if _, taken := r.index[newRecord.ID]; taken {
		return attendance.Attendance{}, fmt.Errorf("attendance id %q already exists", newRecord.ID)
	}
	if newRecord.Breaks == nil {
		newRecord.Breaks = []attendance.Break{}
	}

	stored := newRecord.Clone()
	r.index[stored.ID] = len(r.records)
	r.records = append(r.records, stored)

	return stored.Clone(), nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			return rec.Clone(), nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, updated attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[updated.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[pos] = updated.Clone()
	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return r.List(ctx, attendance.AttendanceFilter{EmployeeID: &employeeID})
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]attendance.Attendance, 0)
	for _, rec := range r.records {
		if filter.Matches(rec) {
			result = append(result, rec.Clone())
		}
	}
	return result, nil
}

// CountByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByDate(ctx context.Context, date string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.records {
		if rec.Date == date {
			count++
		}
	}
	return count, nil
}
