package store

import (
	"context"

	"github.com/kalamela/kalamela-api/internal/domain"
)

// SessionStore defines the interface for the single authenticated-session
// slot. None of the mutation operations can fail on well-formed input;
// credential verification is deliberately not part of this contract (the
// registration flow is the only sign-in path).
type SessionStore interface {
	// Login marks the session authenticated and stores the payload
	// verbatim. The session's user type follows the payload's.
	Login(ctx context.Context, info domain.UserInfo) error

	// Logout atomically clears the authenticated flag, the user info and
	// the user type. It is idempotent: logging out of a signed-out
	// session leaves the same resulting state.
	Logout(ctx context.Context) error

	// SetUserType sets the session's user type independently of login
	// state. Used transiently during registration before a full login.
	SetUserType(ctx context.Context, userType domain.UserType) error

	// Current returns a snapshot of the session state as of the most
	// recently completed mutation.
	Current(ctx context.Context) (domain.Session, error)
}
