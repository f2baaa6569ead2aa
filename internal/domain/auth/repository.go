package auth

import "context"

type CredentialRepository interface {
	Create(ctx context.Context, credential Credential) error
	GetByEmail(ctx context.Context, email string) (Credential, error)
}

// SessionRepository stores session records under StorageKey(id).
type SessionRepository interface {
	Save(ctx context.Context, session Session) error
	Get(ctx context.Context, sessionID string) (Session, error)
	Delete(ctx context.Context, sessionID string) error
}
