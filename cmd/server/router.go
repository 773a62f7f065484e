package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kalamela/kalamela-api/internal/api"
	apiMiddleware "github.com/kalamela/kalamela-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.registrationService, app.sessionService, app.logger)
	artistHandler := api.NewArtistHandler(app.directoryService, app.discoveryService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Registration doubles as sign-in; there is no separate login.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/session", authHandler.GetSession)

		// Directory and discovery endpoints
		r.Get("/artists", artistHandler.ListArtists)
		r.Post("/artists", artistHandler.AddArtist)
		r.Get("/artists/{id}", artistHandler.GetArtist)
		r.Put("/artists/{id}", artistHandler.UpdateArtist)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
