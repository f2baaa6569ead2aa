package payroll

import (
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

type PayrollResponse struct {
	EmployeeID string                  `json:"employee_id"`
	Name       string                  `json:"name"`
	Department string                  `json:"department"`
	Position   string                  `json:"position"`
	Salary     employee.SalaryResponse `json:"salary"`
}

func NewPayrollResponse(e employee.Employee) PayrollResponse {
	return PayrollResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Salary:     employee.NewSalaryResponse(e.Salary),
	}
}

type PayrollSummaryResponse struct {
	Employees []PayrollResponse       `json:"employees"`
	Totals    employee.SalaryResponse `json:"totals"`
}

// PayslipRequest selects an employee and a "YYYY-MM" period. An empty period
// means the current month.
type PayslipRequest struct {
	EmployeeID string
	Period     string
}

func (r *PayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Period != "" {
		if _, ok := validator.IsValidPeriod(r.Period); !ok {
			errs.Add("period", "period must be in YYYY-MM format")
		}
	}

	return errs.Err()
}

type PayslipFile struct {
	Filename string
	Content  []byte
}
