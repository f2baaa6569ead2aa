package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.CredentialRepository
	auth.SessionRepository
	employee.EmployeeRepository
	jwt.Service
	clock clock.Clock

	// signupMu makes the duplicate checks and the inserts of one signup atomic.
	signupMu sync.Mutex
}

func NewAuthService(
	credentialRepository auth.CredentialRepository,
	sessionRepository auth.SessionRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	clk clock.Clock,
) auth.AuthService {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &AuthServiceImpl{
		CredentialRepository: credentialRepository,
		SessionRepository:    sessionRepository,
		EmployeeRepository:   employeeRepository,
		Service:              jwtService,
		clock:                clk,
	}
}

// HashPassword hashes a plain password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.Result, error) {
	if err := req.Validate(); err != nil {
		return auth.Result{}, err
	}

	credential, err := a.CredentialRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrCredentialNotFound) {
			return auth.Failed(auth.ErrInvalidCredentials), nil
		}
		return auth.Result{}, fmt.Errorf("failed to get credential by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(req.Password)); err != nil {
		return auth.Failed(auth.ErrInvalidCredentials), nil
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, credential.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.Failed(auth.ErrInvalidCredentials), nil
		}
		return auth.Result{}, fmt.Errorf("failed to get employee: %w", err)
	}

	session, err := a.startSession(ctx, emp)
	if err != nil {
		return auth.Result{}, err
	}

	slog.Info("User logged in", "employee_id", emp.EmployeeID, "role", emp.Role, "session_id", session.SessionID)
	return auth.Succeeded(session), nil
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.Result, error) {
	if err := req.Validate(); err != nil {
		return auth.Result{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return auth.Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	a.signupMu.Lock()
	emp, result, err := a.createAccount(ctx, req, hash)
	a.signupMu.Unlock()
	if err != nil || !result.Success {
		return result, err
	}

	session, err := a.startSession(ctx, emp)
	if err != nil {
		return auth.Result{}, err
	}

	slog.Info("User signed up", "employee_id", emp.EmployeeID, "role", emp.Role)
	return auth.Succeeded(session), nil
}

// createAccount checks uniqueness and inserts the employee and its
// credential. result.Success is false when the email or code is taken.
func (a *AuthServiceImpl) createAccount(ctx context.Context, req auth.SignupRequest, passwordHash string) (employee.Employee, auth.Result, error) {
	if _, err := a.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, auth.Failed(employee.ErrEmailExists), nil
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, auth.Result{}, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := a.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return employee.Employee{}, auth.Failed(employee.ErrEmployeeCodeExists), nil
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, auth.Result{}, fmt.Errorf("failed to check employee ID: %w", err)
	}

	now := a.clock.Now()
	role := employee.Role(req.Role)
	department, position, salary := employee.SignupDefaults(role)

	emp, err := a.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
		Name:       req.Name,
		Role:       role,
		Department: department,
		Position:   position,
		JoinDate:   clock.Date(now),
		Salary:     salary,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) || errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.Employee{}, auth.Failed(err), nil
		}
		return employee.Employee{}, auth.Result{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if err := a.CredentialRepository.Create(ctx, auth.Credential{
		EmployeeID:   emp.ID,
		Email:        emp.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}); err != nil {
		if errors.Is(err, auth.ErrCredentialExists) {
			return employee.Employee{}, auth.Failed(employee.ErrEmailExists), nil
		}
		return employee.Employee{}, auth.Result{}, fmt.Errorf("failed to create credential: %w", err)
	}

	return emp, auth.Result{Success: true}, nil
}

// startSession issues an access token and stores the session record.
func (a *AuthServiceImpl) startSession(ctx context.Context, emp employee.Employee) (auth.SessionResponse, error) {
	sessionID := uuid.NewString()
	user := employee.NewEmployeeResponse(emp)

	token, expiresAt, err := a.Service.GenerateAccessToken(jwt.AccessClaims{
		UserID:     emp.ID,
		EmployeeID: emp.EmployeeID,
		Email:      emp.Email,
		Name:       emp.Name,
		Role:       string(emp.Role),
		SessionID:  sessionID,
	})
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	if err := a.SessionRepository.Save(ctx, auth.Session{
		ID:        sessionID,
		User:      user,
		CreatedAt: a.clock.Now(),
		ExpiresAt: time.Unix(expiresAt, 0),
	}); err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to save session: %w", err)
	}

	return auth.SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		SessionID:   sessionID,
		User:        user,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, req auth.LogoutRequest) error {
	if req.Token != "" {
		a.Service.RevokeToken(req.Token, req.ExpiresAt)
	}

	if req.SessionID == "" {
		return nil
	}
	if err := a.SessionRepository.Delete(ctx, req.SessionID); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	slog.Info("User logged out", "session_id", req.SessionID)
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, sessionID string) (employee.EmployeeResponse, error) {
	session, err := a.SessionRepository.Get(ctx, sessionID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return session.User, nil
}
