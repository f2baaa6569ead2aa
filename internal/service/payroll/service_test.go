package payroll

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) payroll.PayrollService {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()

	for _, e := range []employee.Employee{
		{
			ID: "1", EmployeeID: "EMP001", Email: "john.doe@dayflow.com", Name: "John Doe", Role: employee.RoleEmployee,
			Department: "Engineering", Position: "Software Developer",
			Salary: employee.Salary{Basic: decimal.NewFromInt(75000), Allowances: decimal.NewFromInt(12000), Deductions: decimal.NewFromInt(8500)},
		},
		{
			ID: "2", EmployeeID: "ADM001", Email: "sarah.admin@dayflow.com", Name: "Sarah Johnson", Role: employee.RoleAdmin,
			Department: "Human Resources", Position: "HR Manager",
			Salary: employee.Salary{Basic: decimal.NewFromInt(85000), Allowances: decimal.NewFromInt(15000), Deductions: decimal.NewFromInt(10000)},
		},
	} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	return NewPayrollService(repo, clock.NewFixed(time.Date(2024, 2, 18, 10, 0, 0, 0, time.UTC)))
}

func TestPayrollService_GetPayroll(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.GetPayroll(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, 78500.0, p.Salary.NetPay)

	_, err = svc.GetPayroll(context.Background(), "EMP404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_ListPayroll_Totals(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.ListPayroll(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Employees, 2)
	assert.Equal(t, 160000.0, summary.Totals.Basic)
	assert.Equal(t, 27000.0, summary.Totals.Allowances)
	assert.Equal(t, 18500.0, summary.Totals.Deductions)
	assert.Equal(t, 168500.0, summary.Totals.NetPay)
}

func TestPayrollService_RenderPayslip(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.RenderPayslip(context.Background(), payroll.PayslipRequest{EmployeeID: "EMP001", Period: "2024-01"})
	require.NoError(t, err)
	assert.Equal(t, "payslip-EMP001-2024-01.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF-")))
}

func TestPayrollService_RenderPayslip_DefaultsToCurrentMonth(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.RenderPayslip(context.Background(), payroll.PayslipRequest{EmployeeID: "ADM001"})
	require.NoError(t, err)
	assert.Equal(t, "payslip-ADM001-2024-02.pdf", file.Filename)
}

func TestPayrollService_RenderPayslip_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.RenderPayslip(ctx, payroll.PayslipRequest{EmployeeID: "EMP001", Period: "2024/01"})
	assert.Error(t, err)

	_, err = svc.RenderPayslip(ctx, payroll.PayslipRequest{EmployeeID: "EMP404", Period: "2024-01"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
