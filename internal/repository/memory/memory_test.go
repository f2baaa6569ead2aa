package memory

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/notification"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAttendanceRepository_OneRecordPerEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	created, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: "2024-02-05", CheckIn: strPtr("09:00"), Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Breaks)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: "2024-02-05"})
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP002", Date: "2024-02-05"})
	assert.NoError(t, err)
}

func TestAttendanceRepository_InsertionOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	for _, rec := range []attendance.Attendance{
		{ID: "1", EmployeeID: "EMP001", Date: "2024-02-05"},
		{ID: "2", EmployeeID: "EMP001", Date: "2024-02-04"},
		{ID: "3", EmployeeID: "EMP002", Date: "2024-02-05"},
	} {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	mine, err := repo.ListByEmployee(ctx, "EMP001")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "1", mine[0].ID)
	assert.Equal(t, "2", mine[1].ID)

	date := "2024-02-05"
	byDate, err := repo.List(ctx, attendance.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	count, err := repo.CountByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	none, err := repo.ListByEmployee(ctx, "EMP404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttendanceRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	_, err := repo.Create(ctx, attendance.Attendance{ID: "1", EmployeeID: "EMP001", Date: "2024-02-05"})
	require.NoError(t, err)

	got, err := repo.GetByEmployeeAndDate(ctx, "EMP001", "2024-02-05")
	require.NoError(t, err)
	got.Breaks = append(got.Breaks, attendance.Break{Start: "12:00"})

	again, err := repo.GetByEmployeeAndDate(ctx, "EMP001", "2024-02-05")
	require.NoError(t, err)
	assert.Empty(t, again.Breaks)

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.GetByEmployeeAndDate(ctx, "EMP001", "2024-02-05")
	require.NoError(t, err)
	assert.Len(t, again.Breaks, 1)

	assert.ErrorIs(t, repo.Update(ctx, attendance.Attendance{ID: "missing"}), attendance.ErrAttendanceNotFound)
}

func TestLeaveRequestRepository_StatusQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository()

	for _, lr := range []leave.LeaveRequest{
		{ID: "1", EmployeeID: "EMP001", Status: leave.StatusApproved},
		{ID: "2", EmployeeID: "EMP002", Status: leave.StatusPending},
		{ID: "3", EmployeeID: "EMP003", Status: leave.StatusPending},
	} {
		_, err := repo.Create(ctx, lr)
		require.NoError(t, err)
	}

	pending, err := repo.ListByStatus(ctx, leave.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "2", pending[0].ID)
	assert.Equal(t, "3", pending[1].ID)

	count, err := repo.CountByStatus(ctx, leave.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = repo.GetByID(ctx, "404")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	_, err = repo.Create(ctx, leave.LeaveRequest{ID: "1"})
	assert.Error(t, err)
}

func TestEmployeeRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	_, err := repo.Create(ctx, employee.Employee{ID: "1", EmployeeID: "EMP001", Email: "john.doe@dayflow.com", Salary: employee.Salary{Basic: decimal.NewFromInt(75000)}})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP009", Email: "john.doe@dayflow.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeID: "EMP001", Email: "other@dayflow.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	got, err := repo.GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@dayflow.com")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	require.NoError(t, repo.Save(ctx, auth.Session{ID: "s1", User: employee.EmployeeResponse{EmployeeID: "EMP001"}}))

	s, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", s.User.EmployeeID)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), auth.ErrSessionNotFound)
}

func TestNotificationRepository_NewestFirstAndRead(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository()

	require.NoError(t, repo.CreateBatch(ctx, []*notification.Notification{
		{ID: "a", RecipientID: "EMP001", Title: "first"},
		{ID: "b", RecipientID: "EMP001", Title: "second"},
		{ID: "c", RecipientID: "EMP002", Title: "other"},
	}))

	list, err := repo.GetByRecipient(ctx, "EMP001", false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)

	now := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkAsRead(ctx, []string{"a"}, "EMP001", now))
	assert.ErrorIs(t, repo.MarkAsRead(ctx, []string{"c"}, "EMP001", now), notification.ErrNotificationNotFound)

	unread, err := repo.GetUnreadCount(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, repo.MarkAllAsRead(ctx, "EMP001", now))
	onlyUnread, err := repo.GetByRecipient(ctx, "EMP001", true)
	require.NoError(t, err)
	assert.Empty(t, onlyUnread)
}
