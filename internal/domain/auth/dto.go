package auth

import (
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type SignupRequest struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.ExceedsLength(r.EmployeeID, 50) {
		errs.Add("employee_id", "employee_id must not exceed 50 characters")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters long")
	}
	if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.ExceedsLength(r.Name, 255) {
		errs.Add("name", "name must not exceed 255 characters")
	}

	if r.Role == "" {
		r.Role = string(employee.RoleEmployee)
	}
	if !employee.Role(r.Role).IsValid() {
		errs.Add("role", "role must be employee or admin")
	}

	return errs.Err()
}

// Result is the outcome of a login or signup attempt. Expected failures such
// as wrong credentials are reported here rather than as errors.
type Result struct {
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
	Session *SessionResponse `json:"session,omitempty"`

	cause error
}

func Succeeded(session SessionResponse) Result {
	return Result{Success: true, Session: &session}
}

func Failed(cause error) Result {
	return Result{Success: false, Error: cause.Error(), cause: cause}
}

// Cause returns the sentinel error behind a failed result.
func (r Result) Cause() error {
	return r.cause
}

type SessionResponse struct {
	AccessToken string                    `json:"access_token"`
	TokenType   string                    `json:"token_type"`
	ExpiresAt   int64                     `json:"expires_at"`
	SessionID   string                    `json:"session_id"`
	User        employee.EmployeeResponse `json:"user"`
}

type LogoutRequest struct {
	Token     string
	SessionID string
	ExpiresAt int64
}
