package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/store/memory"
)

// seedDirectory inserts the given artists in order and returns the store.
func seedDirectory(t *testing.T, artists ...domain.Artist) *memory.ArtistStore {
	t.Helper()

	s := memory.NewArtistStore(testLogger())
	for i := range artists {
		require.NoError(t, s.Create(context.Background(), &artists[i]))
	}
	return s
}

func names(artists []domain.Artist) []string {
	out := make([]string, len(artists))
	for i, a := range artists {
		out[i] = a.Name
	}
	return out
}

func TestSearchFiltersByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "Anita", Category: domain.CategoryPainting, Rating: 4, Locations: []domain.Location{domain.LocationPune}},
		domain.Artist{Name: "Raj", Category: domain.CategorySinging, Rating: 2, Locations: []domain.Location{domain.LocationMumbai}},
	)
	svc := NewDiscoveryService(artists, testLogger())

	got, err := svc.Search(context.Background(), DiscoveryQuery{
		SearchText: "an",
		Sort:       SortDescending,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Anita"}, names(got))
}

func TestSearchFiltersByCategory(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "Anita", Category: domain.CategoryPainting, Rating: 4},
		domain.Artist{Name: "Raj", Category: domain.CategorySinging, Rating: 2},
		domain.Artist{Name: "Meera", Category: domain.CategoryDancing, Rating: 5},
	)
	svc := NewDiscoveryService(artists, testLogger())

	got, err := svc.Search(context.Background(), DiscoveryQuery{
		SearchText: "sing",
		Sort:       SortDescending,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Raj"}, names(got))
}

func TestSearchFiltersByLocation(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "Anita", Category: domain.CategoryPainting, Rating: 4, Locations: []domain.Location{domain.LocationPune}},
		domain.Artist{Name: "Raj", Category: domain.CategorySinging, Rating: 2, Locations: []domain.Location{domain.LocationMumbai}},
	)
	svc := NewDiscoveryService(artists, testLogger())

	got, err := svc.Search(context.Background(), DiscoveryQuery{
		Location: domain.LocationMumbai,
		Sort:     SortAscending,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Raj"}, names(got))
}

func TestSearchCombinesTextAndLocationFilters(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "Anita", Category: domain.CategoryPainting, Rating: 4, Locations: []domain.Location{domain.LocationPune}},
		domain.Artist{Name: "Anand", Category: domain.CategoryPoetry, Rating: 3, Locations: []domain.Location{domain.LocationDelhi}},
	)
	svc := NewDiscoveryService(artists, testLogger())

	// Both match "an" by name, only one serves Delhi.
	got, err := svc.Search(context.Background(), DiscoveryQuery{
		SearchText: "an",
		Location:   domain.LocationDelhi,
		Sort:       SortDescending,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Anand"}, names(got))
}

func TestSearchSortsByRating(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "four", Category: domain.CategoryPainting, Rating: 4},
		domain.Artist{Name: "two", Category: domain.CategoryPainting, Rating: 2},
		domain.Artist{Name: "five", Category: domain.CategoryPainting, Rating: 5},
	)
	svc := NewDiscoveryService(artists, testLogger())

	desc, err := svc.Search(context.Background(), DiscoveryQuery{Sort: SortDescending})
	require.NoError(t, err)
	assert.Equal(t, []string{"five", "four", "two"}, names(desc))

	asc, err := svc.Search(context.Background(), DiscoveryQuery{Sort: SortAscending})
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "four", "five"}, names(asc))
}

func TestSearchUnratedSortsLowestAndTiesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "rated-first", Category: domain.CategoryPainting, Rating: 3},
		domain.Artist{Name: "unrated", Category: domain.CategoryPainting},
		domain.Artist{Name: "rated-second", Category: domain.CategoryPainting, Rating: 3},
	)
	svc := NewDiscoveryService(artists, testLogger())

	asc, err := svc.Search(context.Background(), DiscoveryQuery{Sort: SortAscending})
	require.NoError(t, err)
	assert.Equal(t, []string{"unrated", "rated-first", "rated-second"}, names(asc))

	desc, err := svc.Search(context.Background(), DiscoveryQuery{Sort: SortDescending})
	require.NoError(t, err)
	assert.Equal(t, []string{"rated-first", "rated-second", "unrated"}, names(desc))
}

func TestSearchIsPure(t *testing.T) {
	t.Parallel()

	artists := seedDirectory(t,
		domain.Artist{Name: "Anita", Category: domain.CategoryPainting, Rating: 4},
		domain.Artist{Name: "Raj", Category: domain.CategorySinging, Rating: 2},
	)
	svc := NewDiscoveryService(artists, testLogger())

	ctx := context.Background()
	query := DiscoveryQuery{Sort: SortAscending}

	first, err := svc.Search(ctx, query)
	require.NoError(t, err)
	second, err := svc.Search(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated evaluation must be stable")

	// The derived view must not alias the store: directory order is
	// untouched by the sorted result.
	listed, err := artists.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anita", "Raj"}, names(listed))
}

func TestSearchEmptyDirectory(t *testing.T) {
	t.Parallel()

	svc := NewDiscoveryService(seedDirectory(t), testLogger())

	got, err := svc.Search(context.Background(), DiscoveryQuery{SearchText: "anything"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
