package payroll

import (
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Payslip is a rendered view of one employee's salary structure for a
// period. It is never stored.
type Payslip struct {
	EmployeeID  string
	Name        string
	Email       string
	Department  string
	Position    string
	Period      time.Time
	Salary      employee.Salary
	GeneratedAt time.Time
}

func (p Payslip) NetPay() decimal.Decimal {
	return p.Salary.NetPay()
}

// PeriodLabel formats the period as "January 2024".
func (p Payslip) PeriodLabel() string {
	return p.Period.Format("January 2006")
}
