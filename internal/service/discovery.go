package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/store"
)

// SortOrder selects the direction of the rating sort.
type SortOrder string

// The two sort directions. The discovery screen defaults to descending.
const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// DiscoveryQuery carries the three independent inputs of the discovery
// view: free search text, an optional location filter and the sort
// direction.
type DiscoveryQuery struct {
	SearchText string
	Location   domain.Location
	Sort       SortOrder
}

// DiscoveryService derives the ordered artist list the user sees. It is
// read-only with respect to store state; every call recomputes a fresh
// result from the current directory contents.
type DiscoveryService struct {
	artists store.ArtistStore
	logger  *slog.Logger
}

// NewDiscoveryService creates a DiscoveryService over the given directory.
func NewDiscoveryService(artists store.ArtistStore, logger *slog.Logger) *DiscoveryService {
	return &DiscoveryService{
		artists: artists,
		logger:  logger.With("component", "discovery_service"),
	}
}

// Search filters and sorts the directory. A record is kept iff its name
// or category contains the search text (case-insensitive) and, when a
// location is selected, its locations include it. The result is ordered
// by rating in the requested direction; an unset rating sorts as the
// lowest value, and the sort is stable so ties keep insertion order.
func (s *DiscoveryService) Search(ctx context.Context, query DiscoveryQuery) ([]domain.Artist, error) {
	artists, err := s.artists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	needle := strings.ToLower(query.SearchText)

	filtered := make([]domain.Artist, 0, len(artists))
	for _, artist := range artists {
		if !matchesSearch(artist, needle) {
			continue
		}
		if query.Location != "" && !artist.HasLocation(query.Location) {
			continue
		}
		filtered = append(filtered, artist)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if query.Sort == SortAscending {
			return filtered[i].Rating < filtered[j].Rating
		}
		return filtered[i].Rating > filtered[j].Rating
	})

	s.logger.Debug("discovery query evaluated",
		"search", query.SearchText,
		"location", query.Location,
		"sort", query.Sort,
		"matched", len(filtered),
		"total", len(artists))

	return filtered, nil
}

// matchesSearch reports whether the artist's name or category contains
// the lowercased needle. An empty needle matches everything.
func matchesSearch(artist domain.Artist, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(artist.Name), needle) ||
		strings.Contains(strings.ToLower(string(artist.Category)), needle)
}
