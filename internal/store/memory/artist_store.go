package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/store"
)

// ArtistStore is the in-memory implementation of store.ArtistStore.
// Records are held in an ordered slice so List reflects insertion order,
// with an ID index for constant-time lookup. A mutex guards the state
// because the HTTP boundary may serve requests concurrently.
type ArtistStore struct {
	mu      sync.RWMutex
	artists []domain.Artist
	index   map[uuid.UUID]int
	logger  *slog.Logger
}

// Ensure ArtistStore satisfies the interface.
var _ store.ArtistStore = (*ArtistStore)(nil)

// NewArtistStore creates an empty in-memory artist store.
func NewArtistStore(logger *slog.Logger) *ArtistStore {
	return &ArtistStore{
		index:  make(map[uuid.UUID]int),
		logger: logger.With("component", "artist_store"),
	}
}

// Create inserts a new artist record, assigning a fresh unique ID when the
// record carries none. The store is the ID authority; a generated ID is
// written back to the caller's record, and a caller-supplied ID that is
// already taken is rejected.
func (s *ArtistStore) Create(ctx context.Context, artist *domain.Artist) error {
	if err := artist.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	} else if _, ok := s.index[artist.ID]; ok {
		return fmt.Errorf("%w: artist ID %s already exists", store.ErrInvalidEntity, artist.ID)
	}

	s.index[artist.ID] = len(s.artists)
	s.artists = append(s.artists, *artist)

	s.logger.Debug("artist created",
		"artist_id", artist.ID,
		"name", artist.Name,
		"category", artist.Category,
		"directory_size", len(s.artists))

	return nil
}

// Update replaces the stored record with the same ID in full. An unknown
// ID is a defined no-op: nothing is mutated and no error is returned.
func (s *ArtistStore) Update(ctx context.Context, artist *domain.Artist) error {
	if err := artist.ValidateStored(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[artist.ID]
	if !ok {
		s.logger.Debug("update for unknown artist ignored", "artist_id", artist.ID)
		return nil
	}

	s.artists[pos] = *artist

	s.logger.Debug("artist updated", "artist_id", artist.ID, "name", artist.Name)

	return nil
}

// GetByID retrieves an artist by their unique ID.
func (s *ArtistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, store.ErrArtistNotFound
	}

	artist := s.artists[pos]
	return &artist, nil
}

// List returns a copy of every record in insertion order.
func (s *ArtistStore) List(ctx context.Context) ([]domain.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Artist, len(s.artists))
	copy(out, s.artists)
	return out, nil
}
