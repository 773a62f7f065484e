package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/store"
)

// AddArtistInput carries the fields of the discovery screen's add-artist
// form. Name and category are required; rating and locations are
// optional.
type AddArtistInput struct {
	Name      string
	Category  domain.Category
	Rating    domain.Rating
	Locations []domain.Location
}

// DirectoryService exposes the directory's mutation and read operations
// to the presentation boundary.
type DirectoryService struct {
	artists store.ArtistStore
	logger  *slog.Logger
}

// NewDirectoryService creates a DirectoryService over the given store.
func NewDirectoryService(artists store.ArtistStore, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		artists: artists,
		logger:  logger.With("component", "directory_service"),
	}
}

// AddArtist inserts a new record from the add-artist form. Returns a
// field-scoped validation error when name or category is missing, with no
// store mutation.
func (s *DirectoryService) AddArtist(ctx context.Context, input AddArtistInput) (*domain.Artist, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "Artist name is required.")
	}
	if input.Category == "" {
		return nil, NewValidationError("category", "Artist category is required.")
	}
	if !input.Category.Valid() {
		return nil, NewValidationError("category", "Please choose an art category.")
	}
	if !input.Rating.Valid() {
		return nil, NewValidationError("rating", "Rating must be between 1 and 5.")
	}
	for _, loc := range input.Locations {
		if !loc.Valid() {
			return nil, NewValidationError("locations", "Please choose locations from the supported cities.")
		}
	}

	artist, err := domain.NewArtist(input.Name, input.Category, input.Rating, input.Locations, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to build artist record: %w", err)
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to add artist: %w", err)
	}

	s.logger.Info("artist added to directory",
		"artist_id", artist.ID,
		"name", artist.Name,
		"category", artist.Category)

	return artist, nil
}

// UpdateArtist replaces the record with the given ID in full. An unknown
// ID is the store's defined no-op, so the call succeeds either way.
func (s *DirectoryService) UpdateArtist(ctx context.Context, artist *domain.Artist) error {
	if err := s.artists.Update(ctx, artist); err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	s.logger.Debug("artist update applied", "artist_id", artist.ID)

	return nil
}

// GetArtist retrieves a single record by ID.
// Returns store.ErrArtistNotFound when no such record exists.
func (s *DirectoryService) GetArtist(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artist: %w", err)
	}
	return artist, nil
}
