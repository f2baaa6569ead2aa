package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	EmployeeID string
	Email      string
	Name       string
	Role       Role
	Department string
	Position   string
	Phone      *string
	Address    *string
	Avatar     *string
	JoinDate   string
	Salary     Salary
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Salary is the monthly pay structure. Net pay is derived on read and may be
// negative when deductions exceed basic plus allowances.
type Salary struct {
	Basic      decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
}

func (s Salary) Gross() decimal.Decimal {
	return s.Basic.Add(s.Allowances)
}

func (s Salary) NetPay() decimal.Decimal {
	return s.Basic.Add(s.Allowances).Sub(s.Deductions)
}

// Defaults applied to accounts created through signup.
var (
	DefaultAllowances = decimal.NewFromInt(8000)
	DefaultDeductions = decimal.NewFromInt(5000)
)

// SignupDefaults returns the department, position and salary a new account
// starts with for the given role.
func SignupDefaults(role Role) (department, position string, salary Salary) {
	if role == RoleAdmin {
		return "Human Resources", "HR Officer", Salary{
			Basic:      decimal.NewFromInt(70000),
			Allowances: DefaultAllowances,
			Deductions: DefaultDeductions,
		}
	}
	return "General", "Employee", Salary{
		Basic:      decimal.NewFromInt(55000),
		Allowances: DefaultAllowances,
		Deductions: DefaultDeductions,
	}
}
