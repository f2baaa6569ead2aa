package payroll

import "errors"

var (
	ErrPayslipRenderFailed = errors.New("failed to render payslip")
)
