package auth

import (
	"context"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (Result, error)
	Signup(ctx context.Context, req SignupRequest) (Result, error)
	Logout(ctx context.Context, req LogoutRequest) error
	Me(ctx context.Context, sessionID string) (employee.EmployeeResponse, error)
}
