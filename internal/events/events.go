package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Screen identifies a presentation screen a transition can target.
type Screen string

// Screens the core requests transitions to.
const (
	ScreenDiscovery    Screen = "discovery"
	ScreenRegistration Screen = "registration"
)

// ScreenRequestEvent represents a request to navigate to a screen. It is
// the only signal the core sends toward the navigation layer; how the
// transition is realized is the listener's concern.
type ScreenRequestEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Target is the screen the core wants shown next
	Target Screen `json:"target"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewScreenRequestEvent creates a navigation request for the given screen.
func NewScreenRequestEvent(target Screen) *ScreenRequestEvent {
	return &ScreenRequestEvent{
		ID:        uuid.New(),
		Target:    target,
		CreatedAt: time.Now(),
	}
}

// EventHandler defines an interface for components that react to
// navigation requests.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ScreenRequestEvent) error
}

// EventEmitter defines an interface for components that emit navigation
// requests. This allows services to publish transitions without direct
// knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ScreenRequestEvent) error
}
