package auth

import (
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
)

// SessionKey is the fixed key under which the signed-in user record is kept.
const SessionKey = "dayflow_user"

// Credential holds the password hash of a directory employee.
type Credential struct {
	EmployeeID   string // internal employee ID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the signed-in user record written on login or signup and
// removed on logout.
type Session struct {
	ID        string
	User      employee.EmployeeResponse
	CreatedAt time.Time
	ExpiresAt time.Time
}

// StorageKey returns the store key for a session id.
func StorageKey(sessionID string) string {
	return SessionKey + ":" + sessionID
}
