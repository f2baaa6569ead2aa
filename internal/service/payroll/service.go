package payroll

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	clock clock.Clock
}

func NewPayrollService(employeeRepo employee.EmployeeRepository, clk clock.Clock) payroll.PayrollService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &PayrollServiceImpl{
		EmployeeRepository: employeeRepo,
		clock:              clk,
	}
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, employeeID string) (payroll.PayrollResponse, error) {
	e, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(e), nil
}

// ListPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayroll(ctx context.Context) (payroll.PayrollSummaryResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	totals := employee.Salary{
		Basic:      decimal.Zero,
		Allowances: decimal.Zero,
		Deductions: decimal.Zero,
	}
	rows := make([]payroll.PayrollResponse, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, payroll.NewPayrollResponse(e))
		totals.Basic = totals.Basic.Add(e.Salary.Basic)
		totals.Allowances = totals.Allowances.Add(e.Salary.Allowances)
		totals.Deductions = totals.Deductions.Add(e.Salary.Deductions)
	}

	return payroll.PayrollSummaryResponse{
		Employees: rows,
		Totals:    employee.NewSalaryResponse(totals),
	}, nil
}

// RenderPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, req payroll.PayslipRequest) (payroll.PayslipFile, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipFile{}, err
	}

	e, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipFile{}, err
	}

	now := s.clock.Now()
	period, ok := validator.IsValidPeriod(req.Period)
	if !ok {
		period = now
	}

	slip := payroll.Payslip{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Position:    e.Position,
		Period:      period,
		Salary:      e.Salary,
		GeneratedAt: now,
	}

	content, err := renderPayslipPDF(slip)
	if err != nil {
		slog.Error("Failed to render payslip", "employee_id", e.EmployeeID, "error", err)
		return payroll.PayslipFile{}, fmt.Errorf("%w: %v", payroll.ErrPayslipRenderFailed, err)
	}

	return payroll.PayslipFile{
		Filename: fmt.Sprintf("payslip-%s-%s.pdf", e.EmployeeID, period.Format("2006-01")),
		Content:  content,
	}, nil
}

func renderPayslipPDF(p payroll.Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+p.PeriodLabel(), false)
	pdf.SetAuthor("Dayflow", false)
	pdf.SetCreationDate(p.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", p.Name, p.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", p.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s, %s", p.Department, p.Position))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", p.PeriodLabel()))
	pdf.Ln(12)

	lines := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Basic salary", p.Salary.Basic},
		{"Allowances", p.Salary.Allowances},
		{"Gross", p.Salary.Gross()},
		{"Deductions", p.Salary.Deductions},
	}
	for _, l := range lines {
		pdf.CellFormat(80, 8, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, l.amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 10, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, p.NetPay().StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated "+p.GeneratedAt.Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
