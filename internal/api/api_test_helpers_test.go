package api

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kalamela/kalamela-api/internal/events"
	"github.com/kalamela/kalamela-api/internal/service"
	"github.com/kalamela/kalamela-api/internal/store/memory"
)

// testEnv bundles the stores, services and router a handler test needs.
type testEnv struct {
	artists  *memory.ArtistStore
	sessions *memory.SessionStore
	router   http.Handler
}

// newTestEnv wires real in-memory stores and services behind the same
// routes the server registers, so tests exercise path parameters and
// JSON handling the way production does.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	artists := memory.NewArtistStore(logger)
	sessions := memory.NewSessionStore(logger)
	emitter := events.NewInMemoryEventEmitter(logger)

	authHandler := NewAuthHandler(
		service.NewRegistrationService(sessions, artists, emitter, logger),
		service.NewSessionService(sessions, emitter, logger),
		logger,
	)
	artistHandler := NewArtistHandler(
		service.NewDirectoryService(artists, logger),
		service.NewDiscoveryService(artists, logger),
		logger,
	)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/session", authHandler.GetSession)
		r.Get("/artists", artistHandler.ListArtists)
		r.Post("/artists", artistHandler.AddArtist)
		r.Get("/artists/{id}", artistHandler.GetArtist)
		r.Put("/artists/{id}", artistHandler.UpdateArtist)
	})

	return &testEnv{
		artists:  artists,
		sessions: sessions,
		router:   r,
	}
}
