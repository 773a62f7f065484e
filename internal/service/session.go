package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/events"
	"github.com/kalamela/kalamela-api/internal/store"
)

// SessionService exposes session reads and the logout flow to the
// presentation boundary.
type SessionService struct {
	sessions store.SessionStore
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewSessionService creates a SessionService with the given dependencies.
func NewSessionService(
	sessions store.SessionStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		sessions: sessions,
		emitter:  emitter,
		logger:   logger.With("component", "session_service"),
	}
}

// Current returns the session state as of the most recently completed
// mutation.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return session, nil
}

// Logout clears the session slot and requests a transition back to the
// registration screen. Safe to call when already signed out.
func (s *SessionService) Logout(ctx context.Context) (events.Screen, error) {
	if err := s.sessions.Logout(ctx); err != nil {
		return "", fmt.Errorf("failed to clear session: %w", err)
	}

	s.logger.Info("account signed out")

	if err := s.emitter.EmitEvent(ctx, events.NewScreenRequestEvent(events.ScreenRegistration)); err != nil {
		s.logger.Error("failed to emit navigation event", "error", err)
	}

	return events.ScreenRegistration, nil
}
