package api

import (
	"github.com/kalamela/kalamela-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the registration endpoint.
// Required-field and format checks are the registration flow's contract,
// so the fields deliberately carry no validate tags; the service reports
// exactly one field-scoped error per attempt, in its documented order.
type RegisterRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	UserType        string   `json:"user_type"`
	CurrentLocation string   `json:"current_location,omitempty"`
	Category        string   `json:"category,omitempty"`
	Locations       []string `json:"locations,omitempty"`
	Rating          int      `json:"rating,omitempty"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	// Session is the established session state
	Session domain.Session `json:"session"`

	// Artist is the directory record created for artist accounts; nil
	// for plain users
	Artist *domain.Artist `json:"artist,omitempty"`

	// NextScreen is the navigation transition the core requested
	NextScreen string `json:"next_screen"`
}

// LogoutResponse defines the successful response for the logout endpoint.
type LogoutResponse struct {
	NextScreen string `json:"next_screen"`
}

// AddArtistRequest defines the payload for the add-artist endpoint.
// Name and category are required; the directory service reports the
// missing field.
type AddArtistRequest struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Rating    int      `json:"rating,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

// UpdateArtistRequest defines the payload for the replace-by-id endpoint.
// The full record is supplied; the stored record is replaced, never
// merged.
type UpdateArtistRequest struct {
	Name            string   `json:"name"                       validate:"required"`
	Category        string   `json:"category"                   validate:"required"`
	Rating          int      `json:"rating,omitempty"           validate:"gte=0,lte=5"`
	Locations       []string `json:"locations,omitempty"`
	Email           string   `json:"email,omitempty"`
	CurrentLocation string   `json:"current_location,omitempty"`
}

// ArtistListResponse defines the response for list and discovery queries.
type ArtistListResponse struct {
	Artists []domain.Artist `json:"artists"`
	Count   int             `json:"count"`
}

// toLocations converts raw location strings into domain values without
// filtering; the services decide whether unknown cities are an error.
func toLocations(raw []string) []domain.Location {
	if len(raw) == 0 {
		return nil
	}
	out := make([]domain.Location, len(raw))
	for i, s := range raw {
		out[i] = domain.Location(s)
	}
	return out
}
