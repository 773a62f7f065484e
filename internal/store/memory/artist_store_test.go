package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/store"
)

// discardLogger returns a logger whose output is thrown away, for tests
// that do not assert on log output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestArtist(name string, category domain.Category, rating domain.Rating, locations ...domain.Location) *domain.Artist {
	return &domain.Artist{
		Name:      name,
		Category:  category,
		Rating:    rating,
		Locations: locations,
	}
}

func TestArtistStoreCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	artist := newTestArtist("Anita", domain.CategoryPainting, 4, domain.LocationPune)
	require.NoError(t, s.Create(ctx, artist))

	// The store is the ID authority.
	assert.NotEqual(t, uuid.Nil, artist.ID, "Create should assign an ID")

	got, err := s.GetByID(ctx, artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anita", got.Name)
	assert.Equal(t, domain.CategoryPainting, got.Category)
}

func TestArtistStoreCreateRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	err := s.Create(ctx, newTestArtist("", domain.CategoryPainting, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyArtistName)

	artists, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, artists, "failed insert must not grow the directory")
}

func TestArtistStoreCreateRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	artist := newTestArtist("Anita", domain.CategoryPainting, 4, domain.LocationPune)
	require.NoError(t, s.Create(ctx, artist))

	dupe := newTestArtist("Raj", domain.CategorySinging, 2, domain.LocationMumbai)
	dupe.ID = artist.ID
	err := s.Create(ctx, dupe)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	// The original record stays intact and reachable.
	artists, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Anita", artists[0].Name)

	got, err := s.GetByID(ctx, artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anita", got.Name)
}

func TestArtistStoreListLengthMatchesInserts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	const n = 25
	for i := 0; i < n; i++ {
		artist := newTestArtist(fmt.Sprintf("artist-%d", i), domain.CategoryDancing, 3)
		require.NoError(t, s.Create(ctx, artist))
	}

	artists, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, artists, n)

	// Every assigned ID is unique and ordering is insertion order.
	seen := make(map[uuid.UUID]bool, n)
	for i, a := range artists {
		assert.False(t, seen[a.ID], "duplicate ID assigned")
		seen[a.ID] = true
		assert.Equal(t, fmt.Sprintf("artist-%d", i), a.Name)
	}
}

func TestArtistStoreUpdateReplacesWholeRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	first := newTestArtist("Anita", domain.CategoryPainting, 4, domain.LocationPune)
	second := newTestArtist("Raj", domain.CategorySinging, 2, domain.LocationMumbai)
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	replacement := &domain.Artist{
		ID:        first.ID,
		Name:      "Anita Deshpande",
		Category:  domain.CategoryPoetry,
		Rating:    5,
		Locations: []domain.Location{domain.LocationDelhi},
	}
	require.NoError(t, s.Update(ctx, replacement))

	artists, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 2, "update must not change the collection length")

	// The replacement is total: every field of the old record is gone.
	got := artists[0]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Anita Deshpande", got.Name)
	assert.Equal(t, domain.CategoryPoetry, got.Category)
	assert.Equal(t, domain.Rating(5), got.Rating)
	assert.Equal(t, []domain.Location{domain.LocationDelhi}, got.Locations)
	assert.Empty(t, got.Email, "stale fields must not survive a replace")

	// The other record is untouched.
	assert.Equal(t, "Raj", artists[1].Name)
}

func TestArtistStoreUpdateUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	artist := newTestArtist("Anita", domain.CategoryPainting, 4)
	require.NoError(t, s.Create(ctx, artist))

	before, err := s.List(ctx)
	require.NoError(t, err)

	stranger := &domain.Artist{
		ID:       uuid.New(),
		Name:     "Nobody",
		Category: domain.CategoryDancing,
	}
	require.NoError(t, s.Update(ctx, stranger), "unknown ID must not be an error")

	after, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "unknown update must leave the directory identical")
}

func TestArtistStoreGetByIDNotFound(t *testing.T) {
	t.Parallel()

	s := NewArtistStore(discardLogger())

	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrArtistNotFound)
}

func TestArtistStoreListReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewArtistStore(discardLogger())

	require.NoError(t, s.Create(ctx, newTestArtist("Anita", domain.CategoryPainting, 4)))

	artists, err := s.List(ctx)
	require.NoError(t, err)
	artists[0].Name = "Mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Anita", again[0].Name, "callers must not be able to mutate store state")
}
