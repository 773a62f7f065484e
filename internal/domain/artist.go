package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for artist records.
var (
	ErrEmptyArtistName = errors.New("artist name cannot be empty")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidLocation = errors.New("invalid location")
	ErrEmptyArtistID   = errors.New("artist ID cannot be empty")
)

// Artist represents a service-providing account listed in the directory.
// The ID is assigned by the directory store on insert and is immutable
// thereafter.
type Artist struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Category        Category   `json:"category"`
	Rating          Rating     `json:"rating,omitempty"`
	Locations       []Location `json:"locations"`
	Email           string     `json:"email,omitempty"`
	CurrentLocation Location   `json:"current_location,omitempty"`
}

// NewArtist creates an Artist from registration fields. The ID is left
// unset; the directory store assigns it on insert. Returns an error if
// validation fails.
func NewArtist(
	name string,
	category Category,
	rating Rating,
	locations []Location,
	email string,
	currentLocation Location,
) (*Artist, error) {
	artist := &Artist{
		Name:            name,
		Category:        category,
		Rating:          rating,
		Locations:       locations,
		Email:           email,
		CurrentLocation: currentLocation,
	}

	if err := artist.Validate(); err != nil {
		return nil, err
	}

	return artist, nil
}

// Validate checks if the Artist has valid data. The ID is not checked
// here because records are created without one; use ValidateStored for
// records that must already carry an ID.
func (a *Artist) Validate() error {
	if a.Name == "" {
		return ErrEmptyArtistName
	}

	if !a.Category.Valid() {
		return ErrInvalidCategory
	}

	if !a.Rating.Valid() {
		return ErrInvalidRating
	}

	for _, loc := range a.Locations {
		if !loc.Valid() {
			return ErrInvalidLocation
		}
	}

	// CurrentLocation is optional descriptive text carried from
	// registration; only validate it when present.
	if a.CurrentLocation != "" && !a.CurrentLocation.Valid() {
		return ErrInvalidLocation
	}

	return nil
}

// ValidateStored checks a record that is expected to already exist in the
// directory, which additionally requires a non-nil ID.
func (a *Artist) ValidateStored() error {
	if a.ID == uuid.Nil {
		return ErrEmptyArtistID
	}
	return a.Validate()
}

// HasLocation reports whether the artist serves the given location.
func (a *Artist) HasLocation(loc Location) bool {
	for _, l := range a.Locations {
		if l == loc {
			return true
		}
	}
	return false
}
