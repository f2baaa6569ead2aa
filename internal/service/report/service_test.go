package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/report"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr(s string) *string { return &s }

func newTestService(t *testing.T) report.ReportService {
	t.Helper()
	ctx := context.Background()

	employees := memory.NewEmployeeRepository()
	for _, e := range []employee.Employee{
		{ID: "1", EmployeeID: "EMP001", Email: "john.doe@dayflow.com", Name: "John Doe", Role: employee.RoleEmployee},
		{ID: "3", EmployeeID: "EMP002", Email: "mike.chen@dayflow.com", Name: "Mike Chen", Role: employee.RoleEmployee},
	} {
		_, err := employees.Create(ctx, e)
		require.NoError(t, err)
	}

	records := memory.NewAttendanceRepository()
	for _, rec := range []attendance.Attendance{
		{EmployeeID: "EMP001", Date: "2024-02-04", CheckIn: ptr("09:00"), CheckOut: ptr("18:00"),
			Breaks: []attendance.Break{{Start: "12:00", End: "13:00"}}, Status: attendance.StatusPresent, TotalHours: 8},
		{EmployeeID: "EMP001", Date: "2024-02-05", CheckIn: ptr("09:05"),
			Breaks: []attendance.Break{{Start: "12:30"}}, Status: attendance.StatusPresent},
		{EmployeeID: "EMP002", Date: "2024-02-05", CheckIn: ptr("08:55"), CheckOut: ptr("17:30"),
			Breaks: []attendance.Break{{Start: "12:15", End: "13:00"}}, Status: attendance.StatusPresent, TotalHours: 7.8},
	} {
		_, err := records.Create(ctx, rec)
		require.NoError(t, err)
	}

	return NewReportService(records, employees)
}

func readRows(t *testing.T, content []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	return rows
}

func TestReportService_ExportAttendance_All(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{})
	require.NoError(t, err)
	assert.Equal(t, "attendance-all.xlsx", file.Filename)
	assert.Equal(t, report.XLSXContentType, file.ContentType)
	assert.Equal(t, 3, file.Rows)

	rows := readRows(t, file.Content)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Employee ID", "Name", "Date", "Check In", "Check Out", "Breaks", "Break Minutes", "Total Hours", "Status"}, rows[0])
	assert.Equal(t, []string{"EMP001", "John Doe", "2024-02-04", "09:00", "18:00", "12:00-13:00", "60", "8", "present"}, rows[1])
	assert.Equal(t, "12:30-open", rows[2][5])
	assert.Equal(t, "0", rows[2][6])
	assert.Equal(t, "7.8", rows[3][7])
}

func TestReportService_ExportAttendance_Filtered(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{Date: "2024-02-05", EmployeeID: "EMP002"})
	require.NoError(t, err)
	assert.Equal(t, "attendance-EMP002-2024-02-05.xlsx", file.Filename)
	assert.Equal(t, 1, file.Rows)

	rows := readRows(t, file.Content)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mike Chen", rows[1][1])
}

func TestReportService_ExportAttendance_InvalidDate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{Date: "05/02/2024"})
	assert.Error(t, err)
}
