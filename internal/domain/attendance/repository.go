package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Listing methods return records in insertion order.
type AttendanceRepository interface {
	// Create creates a new attendance record. At most one record may exist
	// per employee and date.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for a specific employee on a
	// specific date, or ErrAttendanceNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Attendance, error)

	// Update replaces the stored record with the same ID.
	Update(ctx context.Context, attendance Attendance) error

	// ListByEmployee retrieves all records of one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// List retrieves all records matching the filter.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// CountByDate counts records for a date.
	CountByDate(ctx context.Context, date string) (int, error)
}
