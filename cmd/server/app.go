package main

import (
	"context"
	"log/slog"

	"github.com/kalamela/kalamela-api/internal/config"
	"github.com/kalamela/kalamela-api/internal/events"
	"github.com/kalamela/kalamela-api/internal/service"
	"github.com/kalamela/kalamela-api/internal/store/memory"
)

// application holds the wired-up components of the server: the two
// in-memory stores, the services over them, and the navigation emitter.
// Both stores are created once at startup and live for the process
// lifetime; nothing is persisted across restarts.
type application struct {
	config *config.Config
	logger *slog.Logger

	artistStore  *memory.ArtistStore
	sessionStore *memory.SessionStore
	emitter      *events.InMemoryEventEmitter

	registrationService *service.RegistrationService
	sessionService      *service.SessionService
	directoryService    *service.DirectoryService
	discoveryService    *service.DiscoveryService
}

// navigationLogger is the default handler for navigation requests: with
// no real navigation layer attached, transitions are just recorded in the
// logs.
type navigationLogger struct {
	logger *slog.Logger
}

func (n *navigationLogger) HandleEvent(ctx context.Context, event *events.ScreenRequestEvent) error {
	n.logger.Info("navigation requested",
		"target", event.Target,
		"event_id", event.ID)
	return nil
}

// newApplication wires the stores, services and event emitter together.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	artistStore := memory.NewArtistStore(logger)
	sessionStore := memory.NewSessionStore(logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(&navigationLogger{logger: logger.With("component", "navigation")})

	return &application{
		config:       cfg,
		logger:       logger,
		artistStore:  artistStore,
		sessionStore: sessionStore,
		emitter:      emitter,

		registrationService: service.NewRegistrationService(sessionStore, artistStore, emitter, logger),
		sessionService:      service.NewSessionService(sessionStore, emitter, logger),
		directoryService:    service.NewDirectoryService(artistStore, logger),
		discoveryService:    service.NewDiscoveryService(artistStore, logger),
	}
}
