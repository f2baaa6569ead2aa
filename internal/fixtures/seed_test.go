package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRepos() Repositories {
	return Repositories{
		Employees:   memory.NewEmployeeRepository(),
		Credentials: memory.NewCredentialRepository(),
		Attendance:  memory.NewAttendanceRepository(),
		Leaves:      memory.NewLeaveRequestRepository(),
	}
}

func TestLoad_DefaultSeed(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixed(time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC))
	repos := newRepos()

	require.NoError(t, Load(ctx, Default(), repos, clk))

	employees, err := repos.Employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 4)
	assert.Equal(t, "EMP001", employees[0].EmployeeID)

	admin, err := repos.Employees.GetByEmail(ctx, "sarah.admin@dayflow.com")
	require.NoError(t, err)
	assert.Equal(t, employee.RoleAdmin, admin.Role)
	assert.Equal(t, "2", admin.ID)
	assert.Equal(t, "90000", admin.Salary.NetPay().String())

	cred, err := repos.Credentials.GetByEmail(ctx, "john.doe@dayflow.com")
	require.NoError(t, err)
	assert.Equal(t, "1", cred.EmployeeID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("password123")))

	today, err := repos.Attendance.GetByEmployeeAndDate(ctx, "EMP001", "2024-02-05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", *today.CheckIn)
	assert.Equal(t, []attendance.Break{{Start: "12:30", End: "13:15"}}, today.Breaks)
	assert.Equal(t, 8.5, today.TotalHours)

	_, err = repos.Attendance.GetByEmployeeAndDate(ctx, "EMP001", "2024-02-04")
	assert.NoError(t, err)

	present, err := repos.Attendance.CountByDate(ctx, "2024-02-05")
	require.NoError(t, err)
	assert.Equal(t, 2, present)

	pending, err := repos.Leaves.CountByStatus(ctx, leave.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	approved, err := repos.Leaves.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, approved.AdminComment)
	assert.Equal(t, "Approved. Enjoy your vacation!", *approved.AdminComment)
}

func TestLoad_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "employees: [unclosed"},
		{"missing password", "employees:\n  - employee_id: X\n    email: x@d.com\n    role: employee\n"},
		{"bad role", "employees:\n  - employee_id: X\n    email: x@d.com\n    password: p\n    role: boss\n"},
		{"bad leave type", "leave_requests:\n  - id: \"1\"\n    type: holiday\n    status: pending\n"},
		{"bad salary", "employees:\n  - employee_id: X\n    email: x@d.com\n    password: p\n    role: employee\n    salary:\n      basic: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(context.Background(), []byte(tt.doc), newRepos(), clock.NewFixed(time.Now()))
			assert.Error(t, err)
		})
	}
}

func TestReadSeed(t *testing.T) {
	data, err := ReadSeed("")
	require.NoError(t, err)
	assert.Equal(t, Default(), data)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees: []\n"), 0o600))
	data, err = ReadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, "employees: []\n", string(data))

	_, err = ReadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
