package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/store"
)

// SessionStore is the in-memory implementation of store.SessionStore: one
// mutable session slot for the whole process. Mutations hold the lock for
// their full duration, so the authenticated flag, user info and user type
// always change together.
type SessionStore struct {
	mu      sync.RWMutex
	session domain.Session
	logger  *slog.Logger
}

// Ensure SessionStore satisfies the interface.
var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store in the signed-out state.
func NewSessionStore(logger *slog.Logger) *SessionStore {
	return &SessionStore{
		logger: logger.With("component", "session_store"),
	}
}

// Login marks the session authenticated and stores the payload verbatim.
func (s *SessionStore) Login(ctx context.Context, info domain.UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Authenticated = true
	s.session.UserInfo = &info
	s.session.UserType = info.UserType

	s.logger.Info("session established",
		"name", info.Name,
		"user_type", info.UserType)

	return nil
}

// Logout clears the whole session slot. Idempotent.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}

	s.logger.Info("session cleared")

	return nil
}

// SetUserType sets the session's user type independently of login state.
func (s *SessionStore) SetUserType(ctx context.Context, userType domain.UserType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.UserType = userType

	s.logger.Debug("session user type set", "user_type", userType)

	return nil
}

// Current returns a snapshot of the session. The user info is copied so
// callers cannot reach back into store state.
func (s *SessionStore) Current(ctx context.Context) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.session
	if s.session.UserInfo != nil {
		info := *s.session.UserInfo
		snapshot.UserInfo = &info
	}

	return snapshot, nil
}
