package payroll

import "context"

// PayrollService exposes salary structures and net pay read from the
// employee directory.
type PayrollService interface {
	GetPayroll(ctx context.Context, employeeID string) (PayrollResponse, error)
	ListPayroll(ctx context.Context) (PayrollSummaryResponse, error)
	RenderPayslip(ctx context.Context, req PayslipRequest) (PayslipFile, error)
}
