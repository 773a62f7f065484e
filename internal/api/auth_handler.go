package api

import (
	"log/slog"
	"net/http"

	"github.com/kalamela/kalamela-api/internal/api/shared"
	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/service"
)

// AuthHandler handles registration and session API requests.
type AuthHandler struct {
	registration *service.RegistrationService
	sessions     *service.SessionService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	registration *service.RegistrationService,
	sessions *service.SessionService,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		registration: registration,
		sessions:     sessions,
		logger:       logger.With("component", "auth_handler"),
	}
}

// Register handles the /auth/register endpoint. Registration is the only
// sign-up and sign-in path: on success the session is established, artist
// accounts are listed in the directory, and the response names the screen
// to show next.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	input := service.RegistrationInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		UserType:        domain.UserType(req.UserType),
		CurrentLocation: domain.Location(req.CurrentLocation),
		Category:        domain.Category(req.Category),
		Locations:       toLocations(req.Locations),
		Rating:          domain.Rating(req.Rating),
	}

	result, err := h.registration.Register(r.Context(), input)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Session:    result.Session,
		Artist:     result.Artist,
		NextScreen: string(result.NextScreen),
	})
}

// Logout handles the /auth/logout endpoint. Idempotent: logging out of a
// signed-out session succeeds with the same resulting state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	next, err := h.sessions.Logout(r.Context())
	if err != nil {
		h.logger.Error("failed to log out", "error", err)
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LogoutResponse{NextScreen: string(next)})
}

// GetSession handles the /session endpoint, returning the current session
// state. The plaintext password held in the session is never serialized.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Current(r.Context())
	if err != nil {
		h.logger.Error("failed to read session", "error", err)
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, session)
}
