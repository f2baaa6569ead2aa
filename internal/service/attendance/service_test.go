package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2024-02-05 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(t *testing.T, start string) (attendance.AttendanceService, attendance.AttendanceRepository, *clock.Fixed) {
	t.Helper()
	repo := memory.NewAttendanceRepository()
	clk := clock.NewFixed(at(start))
	return NewAttendanceService(repo, clk), repo, clk
}

func TestAttendanceService_CheckIn_CreatesTodayRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, "09:00")

	res, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	require.NotNil(t, res.Record)
	assert.Equal(t, "2024-02-05", res.Record.Date)
	require.NotNil(t, res.Record.CheckIn)
	assert.Equal(t, "09:00", *res.Record.CheckIn)
	assert.Nil(t, res.Record.CheckOut)
	assert.Empty(t, res.Record.Breaks)
	assert.Equal(t, "present", res.Record.Status)
	assert.Equal(t, 0.0, res.Record.TotalHours)
}

func TestAttendanceService_CheckIn_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("09:30"))
	res, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	require.NotNil(t, res.Record)
	assert.Equal(t, "09:00", *res.Record.CheckIn)

	records, err := svc.GetEmployeeAttendance(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceService_FullDayWithBreak(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("12:00"))
	res, err := svc.StartBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)

	clk.Set(at("13:00"))
	res, err = svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)

	clk.Set(at("18:00"))
	res, err = svc.CheckOut(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	require.NotNil(t, res.Record.CheckOut)
	assert.Equal(t, "18:00", *res.Record.CheckOut)
	assert.Equal(t, 8.0, res.Record.TotalHours)
	assert.Equal(t, []attendance.BreakResponse{{Start: "12:00", End: "13:00"}}, res.Record.Breaks)
	assert.Equal(t, "present", res.Record.Status)
}

func TestAttendanceService_CheckOut_OpenBreakContributesZero(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("12:00"))
	_, err = svc.StartBreak(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("17:00"))
	res, err := svc.CheckOut(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Record.TotalHours)
	assert.Equal(t, "", res.Record.Breaks[0].End)
}

func TestAttendanceService_CheckOut_RoundsToOneDecimal(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "08:55")

	_, err := svc.CheckIn(ctx, "EMP002")
	require.NoError(t, err)

	clk.Set(at("12:15"))
	_, err = svc.StartBreak(ctx, "EMP002")
	require.NoError(t, err)
	clk.Set(at("13:00"))
	_, err = svc.EndBreak(ctx, "EMP002")
	require.NoError(t, err)

	clk.Set(at("17:30"))
	res, err := svc.CheckOut(ctx, "EMP002")
	require.NoError(t, err)
	// 515 - 45 = 470 minutes = 7.833h
	assert.Equal(t, 7.8, res.Record.TotalHours)
}

func TestAttendanceService_CheckOut_NoRecordIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t, "18:00")

	res, err := svc.CheckOut(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Nil(t, res.Record)

	all, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAttendanceService_CheckOut_NotClamped(t *testing.T) {
	ctx := context.Background()
	svc, repo, clk := newTestService(t, "18:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("09:00"))
	res, err := svc.CheckOut(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, -9.0, res.Record.TotalHours)

	stored, err := repo.GetByEmployeeAndDate(ctx, "EMP001", "2024-02-05")
	require.NoError(t, err)
	assert.Equal(t, -9.0, stored.TotalHours)
}

func TestAttendanceService_CheckOut_RepeatedOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("17:00"))
	_, err = svc.CheckOut(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("18:00"))
	res, err := svc.CheckOut(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "18:00", *res.Record.CheckOut)
	assert.Equal(t, 9.0, res.Record.TotalHours)
}

func TestAttendanceService_Breaks_WithoutRecordAreNoops(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t, "12:00")

	res, err := svc.StartBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied)

	res, err = svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied)

	all, err := repo.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAttendanceService_EndBreak_OnlyClosesOpenBreak(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	res, err := svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied, "no breaks yet")

	clk.Set(at("12:00"))
	_, err = svc.StartBreak(ctx, "EMP001")
	require.NoError(t, err)
	clk.Set(at("12:30"))
	_, err = svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("12:45"))
	res, err = svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, "12:30", res.Record.Breaks[0].End)
}

func TestAttendanceService_StartBreak_AllowsUnboundedOpenBreaks(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Set(at("10:00"))
	_, err = svc.StartBreak(ctx, "EMP001")
	require.NoError(t, err)
	clk.Set(at("11:00"))
	res, err := svc.StartBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	require.Len(t, res.Record.Breaks, 2)
	assert.Equal(t, "", res.Record.Breaks[0].End)

	clk.Set(at("11:15"))
	res, err = svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "", res.Record.Breaks[0].End)
	assert.Equal(t, "11:15", res.Record.Breaks[1].End)
	assert.True(t, res.Record.IsOnBreak())

	// The earlier break stays open; only the last break can be ended.
	clk.Set(at("11:30"))
	res, err = svc.EndBreak(ctx, "EMP001")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.True(t, res.Record.IsOnBreak())
}

func TestAttendanceService_NewDayCreatesNewRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)

	clk.Advance(24 * time.Hour)
	res, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "2024-02-06", res.Record.Date)

	records, err := svc.GetEmployeeAttendance(ctx, "EMP001")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-02-05", records[0].Date)
	assert.Equal(t, "2024-02-06", records[1].Date)
}

func TestAttendanceService_QueriesIsolatedByEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, "EMP002")
	require.NoError(t, err)

	records, err := svc.GetEmployeeAttendance(ctx, "EMP002")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "EMP002", records[0].EmployeeID)

	records, err = svc.GetEmployeeAttendance(ctx, "EMP404")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceService_ListAttendance(t *testing.T) {
	ctx := context.Background()
	svc, _, clk := newTestService(t, "09:00")

	_, err := svc.CheckIn(ctx, "EMP001")
	require.NoError(t, err)
	clk.Advance(24 * time.Hour)
	_, err = svc.CheckIn(ctx, "EMP002")
	require.NoError(t, err)

	all, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	date := "2024-02-06"
	filtered, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "EMP002", filtered[0].EmployeeID)

	bad := "06-02-2024"
	_, err = svc.ListAttendance(ctx, attendance.AttendanceFilter{Date: &bad})
	assert.Error(t, err)
}
