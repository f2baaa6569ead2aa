package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrSessionNotFound    = errors.New("session not found")
	ErrCredentialExists   = errors.New("credential already exists")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrAdminRequired      = errors.New("admin access required")
)
