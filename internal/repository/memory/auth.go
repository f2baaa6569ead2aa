package memory

import (
	"context"
	"sync"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
)

type credentialRepositoryImpl struct {
	mu      sync.RWMutex
	byEmail map[string]auth.Credential
}

func NewCredentialRepository() auth.CredentialRepository {
	return &credentialRepositoryImpl{
		byEmail: make(map[string]auth.Credential),
	}
}

// Create implements auth.CredentialRepository.
func (r *credentialRepositoryImpl) Create(ctx context.Context, credential auth.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[credential.Email]; exists {
		return auth.ErrCredentialExists
	}
	r.byEmail[credential.Email] = credential
	return nil
}

// GetByEmail implements auth.CredentialRepository.
func (r *credentialRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byEmail[email]
	if !ok {
		return auth.Credential{}, auth.ErrCredentialNotFound
	}
	return c, nil
}

type sessionRepositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]auth.Session // keyed by auth.StorageKey
}

func NewSessionRepository() auth.SessionRepository {
	return &sessionRepositoryImpl{
		sessions: make(map[string]auth.Session),
	}
}

// Save implements auth.SessionRepository.
func (r *sessionRepositoryImpl) Save(ctx context.Context, session auth.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[auth.StorageKey(session.ID)] = session
	return nil
}

// Get implements auth.SessionRepository.
func (r *sessionRepositoryImpl) Get(ctx context.Context, sessionID string) (auth.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[auth.StorageKey(sessionID)]
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return s, nil
}

// Delete implements auth.SessionRepository.
func (r *sessionRepositoryImpl) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := auth.StorageKey(sessionID)
	if _, ok := r.sessions[key]; !ok {
		return auth.ErrSessionNotFound
	}
	delete(r.sessions, key)
	return nil
}
