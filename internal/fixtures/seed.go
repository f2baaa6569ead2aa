package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	serviceAuth "github.com/dayflow-hris/hris-backend-go/internal/service/auth"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the document shape of seed.yaml.
type Seed struct {
	Employees     []SeedEmployee     `yaml:"employees"`
	Attendance    []SeedAttendance   `yaml:"attendance"`
	LeaveRequests []SeedLeaveRequest `yaml:"leave_requests"`
}

type SeedEmployee struct {
	ID         string     `yaml:"id"`
	EmployeeID string     `yaml:"employee_id"`
	Email      string     `yaml:"email"`
	Password   string     `yaml:"password"`
	Name       string     `yaml:"name"`
	Role       string     `yaml:"role"`
	Department string     `yaml:"department"`
	Position   string     `yaml:"position"`
	Phone      string     `yaml:"phone"`
	Address    string     `yaml:"address"`
	JoinDate   string     `yaml:"join_date"`
	Salary     SeedSalary `yaml:"salary"`
}

type SeedSalary struct {
	Basic      string `yaml:"basic"`
	Allowances string `yaml:"allowances"`
	Deductions string `yaml:"deductions"`
}

// SeedAttendance dates a record relative to today: 0 is today, -1 yesterday.
type SeedAttendance struct {
	ID         string      `yaml:"id"`
	EmployeeID string      `yaml:"employee_id"`
	DayOffset  int         `yaml:"day_offset"`
	CheckIn    string      `yaml:"check_in"`
	CheckOut   string      `yaml:"check_out"`
	Breaks     []SeedBreak `yaml:"breaks"`
	Status     string      `yaml:"status"`
	TotalHours float64     `yaml:"total_hours"`
}

type SeedBreak struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type SeedLeaveRequest struct {
	ID           string `yaml:"id"`
	EmployeeID   string `yaml:"employee_id"`
	EmployeeName string `yaml:"employee_name"`
	Type         string `yaml:"type"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Reason       string `yaml:"reason"`
	Status       string `yaml:"status"`
	AdminComment string `yaml:"admin_comment"`
	AppliedOn    string `yaml:"applied_on"`
}

// Repositories are the stores the seed is written into.
type Repositories struct {
	Employees   employee.EmployeeRepository
	Credentials auth.CredentialRepository
	Attendance  attendance.AttendanceRepository
	Leaves      leave.LeaveRequestRepository
}

// Default returns the embedded seed document.
func Default() []byte {
	return defaultSeed
}

// ReadSeed returns the file at path, or the embedded document when path is empty.
func ReadSeed(path string) ([]byte, error) {
	if path == "" {
		return defaultSeed, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return data, nil
}

// Parse decodes and checks a seed document without touching any store.
func Parse(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed: %w", err)
	}

	for i, e := range seed.Employees {
		if e.EmployeeID == "" || e.Email == "" || e.Password == "" {
			return Seed{}, fmt.Errorf("employee %d: employee_id, email and password are required", i)
		}
		if !employee.Role(e.Role).IsValid() {
			return Seed{}, fmt.Errorf("employee %s: invalid role %q", e.EmployeeID, e.Role)
		}
	}
	for _, a := range seed.Attendance {
		if a.EmployeeID == "" {
			return Seed{}, fmt.Errorf("attendance %s: employee_id is required", a.ID)
		}
	}
	for _, l := range seed.LeaveRequests {
		if !leave.LeaveType(l.Type).IsValid() {
			return Seed{}, fmt.Errorf("leave request %s: invalid type %q", l.ID, l.Type)
		}
		if !leave.LeaveRequestStatus(l.Status).IsValid() {
			return Seed{}, fmt.Errorf("leave request %s: invalid status %q", l.ID, l.Status)
		}
	}
	return seed, nil
}

// Load parses data and inserts it through repos. Attendance day offsets are
// resolved against clk.
func Load(ctx context.Context, data []byte, repos Repositories, clk clock.Clock) error {
	if clk == nil {
		clk = clock.New(nil)
	}

	seed, err := Parse(data)
	if err != nil {
		return err
	}

	now := clk.Now()

	for _, e := range seed.Employees {
		salary, err := e.Salary.toSalary()
		if err != nil {
			return fmt.Errorf("employee %s: %w", e.EmployeeID, err)
		}

		created, err := repos.Employees.Create(ctx, employee.Employee{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			Email:      e.Email,
			Name:       e.Name,
			Role:       employee.Role(e.Role),
			Department: e.Department,
			Position:   e.Position,
			Phone:      optional(e.Phone),
			Address:    optional(e.Address),
			JoinDate:   e.JoinDate,
			Salary:     salary,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", e.EmployeeID, err)
		}

		hash, err := serviceAuth.HashPassword(e.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", e.EmployeeID, err)
		}
		if err := repos.Credentials.Create(ctx, auth.Credential{
			EmployeeID:   created.ID,
			Email:        created.Email,
			PasswordHash: hash,
			CreatedAt:    now,
		}); err != nil {
			return fmt.Errorf("failed to seed credential for %s: %w", e.EmployeeID, err)
		}
	}

	for _, a := range seed.Attendance {
		record := attendance.Attendance{
			ID:         a.ID,
			EmployeeID: a.EmployeeID,
			Date:       clock.Date(now.AddDate(0, 0, a.DayOffset)),
			CheckIn:    optional(a.CheckIn),
			CheckOut:   optional(a.CheckOut),
			Status:     attendance.Status(a.Status),
			TotalHours: a.TotalHours,
		}
		if record.Status == "" {
			record.Status = attendance.StatusPresent
		}
		for _, b := range a.Breaks {
			record.Breaks = append(record.Breaks, attendance.Break{Start: b.Start, End: b.End})
		}
		if _, err := repos.Attendance.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed attendance %s: %w", a.ID, err)
		}
	}

	for _, l := range seed.LeaveRequests {
		if _, err := repos.Leaves.Create(ctx, leave.LeaveRequest{
			ID:           l.ID,
			EmployeeID:   l.EmployeeID,
			EmployeeName: l.EmployeeName,
			Type:         leave.LeaveType(l.Type),
			StartDate:    l.StartDate,
			EndDate:      l.EndDate,
			Reason:       l.Reason,
			Status:       leave.LeaveRequestStatus(l.Status),
			AdminComment: optional(l.AdminComment),
			AppliedOn:    l.AppliedOn,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("failed to seed leave request %s: %w", l.ID, err)
		}
	}

	slog.Info("Seed data loaded",
		"employees", len(seed.Employees),
		"attendance", len(seed.Attendance),
		"leave_requests", len(seed.LeaveRequests),
	)
	return nil
}

func (s SeedSalary) toSalary() (employee.Salary, error) {
	basic, err := parseAmount(s.Basic)
	if err != nil {
		return employee.Salary{}, fmt.Errorf("basic: %w", err)
	}
	allowances, err := parseAmount(s.Allowances)
	if err != nil {
		return employee.Salary{}, fmt.Errorf("allowances: %w", err)
	}
	deductions, err := parseAmount(s.Deductions)
	if err != nil {
		return employee.Salary{}, fmt.Errorf("deductions: %w", err)
	}
	return employee.Salary{Basic: basic, Allowances: allowances, Deductions: deductions}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
