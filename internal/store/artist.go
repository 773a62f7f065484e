package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/kalamela/kalamela-api/internal/domain"
)

// ArtistStore defines the interface for the artist directory.
// Implementations own the authoritative mapping from artist ID to record
// and preserve insertion order.
type ArtistStore interface {
	// Create inserts a new artist record. The store is the ID authority:
	// if the record's ID is unset, a fresh unique ID is assigned and
	// written back to the record before insertion.
	// Returns validation errors from the domain Artist if data is invalid.
	Create(ctx context.Context, artist *domain.Artist) error

	// Update replaces the stored record whose ID matches the given one
	// with the full contents of the argument. It is a whole-record
	// replace, never a field merge. An unknown ID is a defined no-op:
	// Update returns nil, mutates nothing and never inserts.
	// Returns validation errors from the domain Artist if data is invalid.
	Update(ctx context.Context, artist *domain.Artist) error

	// GetByID retrieves an artist by their unique ID.
	// Returns ErrArtistNotFound if no such record exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error)

	// List returns every record in insertion order. The returned slice is
	// a copy; callers may modify it freely.
	List(ctx context.Context) ([]domain.Artist, error)
}
