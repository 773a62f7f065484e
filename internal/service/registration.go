package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"unicode"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/events"
	"github.com/kalamela/kalamela-api/internal/store"
)

// emailPattern accepts a local part of letters, digits, '.', '_' and '-',
// a domain with at least one dot, and a TLD of 2-4 letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// RegistrationInput carries the raw fields collected by the registration
// form. Category, Locations and Rating are only consulted for artist
// accounts.
type RegistrationInput struct {
	Name            string
	Email           string
	Password        string
	UserType        domain.UserType
	CurrentLocation domain.Location
	Category        domain.Category
	Locations       []domain.Location
	Rating          domain.Rating
}

// RegistrationResult reports the outcome of a successful registration:
// the established session, the directory record created for artist
// accounts (nil for plain users), and the screen the caller should show
// next.
type RegistrationResult struct {
	Session    domain.Session
	Artist     *domain.Artist
	NextScreen events.Screen
}

// RegistrationService runs the registration flow: validation in a fixed
// short-circuit order, then session login, then - for artists - the
// directory insert, then a navigation request. Validation failures leave
// both stores untouched.
type RegistrationService struct {
	sessions store.SessionStore
	artists  store.ArtistStore
	emitter  events.EventEmitter
	logger   *slog.Logger
}

// NewRegistrationService creates a RegistrationService with the given
// dependencies.
func NewRegistrationService(
	sessions store.SessionStore,
	artists store.ArtistStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *RegistrationService {
	return &RegistrationService{
		sessions: sessions,
		artists:  artists,
		emitter:  emitter,
		logger:   logger.With("component", "registration_service"),
	}
}

// Register validates the input and, on success, signs the account in and
// lists artist accounts in the directory. Checks short-circuit in the
// documented order, so exactly one field-scoped error is surfaced per
// attempt: required fields, then email format, then password strength,
// then (artists only) category. No store mutation happens on any
// validation failure.
func (s *RegistrationService) Register(ctx context.Context, input RegistrationInput) (*RegistrationResult, error) {
	if err := s.validate(input); err != nil {
		s.logger.Debug("registration rejected", "error", err)
		return nil, err
	}

	// The user type selection is recorded ahead of the full login, the
	// way the registration screen tracks it before submitting.
	if err := s.sessions.SetUserType(ctx, input.UserType); err != nil {
		return nil, fmt.Errorf("failed to set user type: %w", err)
	}

	info := domain.UserInfo{
		Name:            input.Name,
		Email:           input.Email,
		CurrentLocation: input.CurrentLocation,
		Password:        input.Password,
		UserType:        input.UserType,
	}
	if err := s.sessions.Login(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	result := &RegistrationResult{NextScreen: events.ScreenDiscovery}

	if input.UserType == domain.UserTypeArtist {
		artist, err := domain.NewArtist(
			input.Name,
			input.Category,
			input.Rating,
			input.Locations,
			input.Email,
			input.CurrentLocation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build artist record: %w", err)
		}

		if err := s.artists.Create(ctx, artist); err != nil {
			return nil, fmt.Errorf("failed to list artist in directory: %w", err)
		}

		result.Artist = artist

		s.logger.Info("artist registered",
			"artist_id", artist.ID,
			"name", artist.Name,
			"category", artist.Category)
	} else {
		s.logger.Info("user registered", "name", input.Name)
	}

	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	result.Session = session

	if err := s.emitter.EmitEvent(ctx, events.NewScreenRequestEvent(events.ScreenDiscovery)); err != nil {
		// Navigation is advisory; the registration itself already
		// succeeded, so report the outcome and let the caller decide.
		s.logger.Error("failed to emit navigation event", "error", err)
	}

	return result, nil
}

// validate applies the registration checks in their observable order and
// returns the first failure as a field-scoped error.
func (s *RegistrationService) validate(input RegistrationInput) error {
	if input.Name == "" {
		return NewValidationError("name", "Please fill in all fields.")
	}
	if input.Email == "" {
		return NewValidationError("email", "Please fill in all fields.")
	}
	if input.Password == "" {
		return NewValidationError("password", "Please fill in all fields.")
	}
	if input.UserType == "" {
		return NewValidationError("user_type", "Please select if you are a User or an Artist.")
	}
	if !input.UserType.Valid() {
		return NewValidationError("user_type", "Please select if you are a User or an Artist.")
	}

	if !emailPattern.MatchString(input.Email) {
		return NewValidationError("email", "Please enter a valid email.")
	}

	if !validPassword(input.Password) {
		return NewValidationError(
			"password",
			"Password must be at least 6 characters long, with at least one uppercase letter, one lowercase letter, and one number.",
		)
	}

	if input.UserType == domain.UserTypeArtist {
		if !input.Category.Valid() {
			return NewValidationError("category", "Please choose an art category.")
		}
		if !input.Rating.Valid() {
			return NewValidationError("rating", "Rating must be between 1 and 5.")
		}
		for _, loc := range input.Locations {
			if !loc.Valid() {
				return NewValidationError("locations", "Please choose locations from the supported cities.")
			}
		}
	}

	if input.CurrentLocation != "" && !input.CurrentLocation.Valid() {
		return NewValidationError("current_location", "Please choose a supported city.")
	}

	return nil
}

// validPassword checks the strength rule: minimum length 6, at least one
// uppercase letter, one lowercase letter and one digit.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}
