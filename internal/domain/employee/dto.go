package employee

import (
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Update is a tagged directory update command: either a ProfileUpdate or a
// SalaryUpdate.
type Update interface {
	isEmployeeUpdate()
}

// ProfileUpdate merges the non-nil fields into the employee profile.
type ProfileUpdate struct {
	Department *string
	Position   *string
	Phone      *string
	Address    *string
	Avatar     *string
}

// SalaryUpdate replaces the whole salary structure.
type SalaryUpdate struct {
	Salary Salary
}

func (ProfileUpdate) isEmployeeUpdate() {}
func (SalaryUpdate) isEmployeeUpdate()  {}

// Apply returns e with the update applied.
func (u ProfileUpdate) Apply(e Employee) Employee {
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	if u.Phone != nil {
		e.Phone = u.Phone
	}
	if u.Address != nil {
		e.Address = u.Address
	}
	if u.Avatar != nil {
		e.Avatar = u.Avatar
	}
	return e
}

// Validate rejects negative amounts.
func (u SalaryUpdate) Validate() error {
	var errs validator.ValidationErrors
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"basic", u.Salary.Basic},
		{"allowances", u.Salary.Allowances},
		{"deductions", u.Salary.Deductions},
	} {
		if f.value.IsNegative() {
			errs.Add(f.name, f.name+" must not be negative")
		}
	}
	return errs.Err()
}

func (u SalaryUpdate) Apply(e Employee) Employee {
	e.Salary = u.Salary
	return e
}

type UpdateProfileRequest struct {
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "department must not be empty")
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs.Add("position", "position must not be empty")
	}
	validateContact(&errs, r.Phone, r.Address)

	return errs.Err()
}

func (r *UpdateProfileRequest) Command() ProfileUpdate {
	return ProfileUpdate{
		Department: r.Department,
		Position:   r.Position,
		Phone:      r.Phone,
		Address:    r.Address,
		Avatar:     r.Avatar,
	}
}

// UpdateMyProfileRequest is the self-service subset of the profile.
type UpdateMyProfileRequest struct {
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateMyProfileRequest) Validate() error {
	var errs validator.ValidationErrors
	validateContact(&errs, r.Phone, r.Address)
	return errs.Err()
}

func (r *UpdateMyProfileRequest) Command() ProfileUpdate {
	return ProfileUpdate{Phone: r.Phone, Address: r.Address}
}

func validateContact(errs *validator.ValidationErrors, phone, address *string) {
	if phone != nil && !validator.IsEmpty(*phone) && !validator.IsValidPhoneNumber(*phone) {
		errs.Add("phone", "phone must be a valid phone number")
	}
	if address != nil && validator.ExceedsLength(*address, 500) {
		errs.Add("address", "address must not exceed 500 characters")
	}
}

type UpdateSalaryRequest struct {
	Basic      *decimal.Decimal `json:"basic"`
	Allowances *decimal.Decimal `json:"allowances"`
	Deductions *decimal.Decimal `json:"deductions"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, f := range []struct {
		name  string
		value *decimal.Decimal
	}{
		{"basic", r.Basic},
		{"allowances", r.Allowances},
		{"deductions", r.Deductions},
	} {
		if f.value == nil {
			errs.Add(f.name, f.name+" is required")
			continue
		}
		if f.value.IsNegative() {
			errs.Add(f.name, f.name+" must not be negative")
		}
	}

	return errs.Err()
}

// Command assumes Validate succeeded.
func (r *UpdateSalaryRequest) Command() SalaryUpdate {
	return SalaryUpdate{Salary: Salary{
		Basic:      *r.Basic,
		Allowances: *r.Allowances,
		Deductions: *r.Deductions,
	}}
}

type EmployeeFilter struct {
	// Search is matched case-insensitively against name, email, employee ID
	// and department.
	Search string
}

type SalaryResponse struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"net_pay"`
}

func NewSalaryResponse(s Salary) SalaryResponse {
	return SalaryResponse{
		Basic:      s.Basic.InexactFloat64(),
		Allowances: s.Allowances.InexactFloat64(),
		Deductions: s.Deductions.InexactFloat64(),
		NetPay:     s.NetPay().InexactFloat64(),
	}
}

type EmployeeResponse struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Role       string         `json:"role"`
	Department string         `json:"department"`
	Position   string         `json:"position"`
	Phone      *string        `json:"phone,omitempty"`
	Address    *string        `json:"address,omitempty"`
	Avatar     *string        `json:"avatar,omitempty"`
	JoinDate   string         `json:"join_date"`
	Salary     SalaryResponse `json:"salary"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Name:       e.Name,
		Role:       string(e.Role),
		Department: e.Department,
		Position:   e.Position,
		Phone:      e.Phone,
		Address:    e.Address,
		Avatar:     e.Avatar,
		JoinDate:   e.JoinDate,
		Salary:     NewSalaryResponse(e.Salary),
	}
}

type MutationResponse struct {
	Applied  bool              `json:"applied"`
	Employee *EmployeeResponse `json:"employee,omitempty"`
}
