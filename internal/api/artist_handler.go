package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kalamela/kalamela-api/internal/api/shared"
	"github.com/kalamela/kalamela-api/internal/domain"
	"github.com/kalamela/kalamela-api/internal/service"
)

// ArtistHandler handles directory and discovery API requests.
type ArtistHandler struct {
	directory *service.DirectoryService
	discovery *service.DiscoveryService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewArtistHandler creates a new ArtistHandler with the given dependencies.
func NewArtistHandler(
	directory *service.DirectoryService,
	discovery *service.DiscoveryService,
	logger *slog.Logger,
) *ArtistHandler {
	return &ArtistHandler{
		directory: directory,
		discovery: discovery,
		validator: validator.New(),
		logger:    logger.With("component", "artist_handler"),
	}
}

// ListArtists handles GET /artists: the discovery query over the three
// inputs search, location and sort. The result is re-derived from current
// directory state on every call; with no parameters it is the full
// directory ordered by rating descending.
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	location := domain.Location(params.Get("location"))
	if location != "" && !location.Valid() {
		shared.RespondWithFieldError(w, r, http.StatusBadRequest,
			"location", "Unknown location filter")
		return
	}

	// Anything other than an explicit "asc" sorts descending, the way
	// the discovery screen's toggle behaves.
	sortOrder := service.SortDescending
	if params.Get("sort") == string(service.SortAscending) {
		sortOrder = service.SortAscending
	}

	artists, err := h.discovery.Search(r.Context(), service.DiscoveryQuery{
		SearchText: params.Get("search"),
		Location:   location,
		Sort:       sortOrder,
	})
	if err != nil {
		h.logger.Error("discovery query failed", "error", err)
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArtistListResponse{
		Artists: artists,
		Count:   len(artists),
	})
}

// AddArtist handles POST /artists: the discovery screen's add-artist
// form. Name and category are required.
func (h *ArtistHandler) AddArtist(w http.ResponseWriter, r *http.Request) {
	var req AddArtistRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	artist, err := h.directory.AddArtist(r.Context(), service.AddArtistInput{
		Name:      req.Name,
		Category:  domain.Category(req.Category),
		Rating:    domain.Rating(req.Rating),
		Locations: toLocations(req.Locations),
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, artist)
}

// GetArtist handles GET /artists/{id}.
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithFieldError(w, r, http.StatusBadRequest, "id", "Invalid artist ID")
		return
	}

	artist, err := h.directory.GetArtist(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, artist)
}

// UpdateArtist handles PUT /artists/{id}: a whole-record replace. An
// unknown ID is the store's defined no-op, so the call succeeds either
// way; nothing is ever inserted by this endpoint.
func (h *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithFieldError(w, r, http.StatusBadRequest, "id", "Invalid artist ID")
		return
	}

	var req UpdateArtistRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	artist := &domain.Artist{
		ID:              id,
		Name:            req.Name,
		Category:        domain.Category(req.Category),
		Rating:          domain.Rating(req.Rating),
		Locations:       toLocations(req.Locations),
		Email:           req.Email,
		CurrentLocation: domain.Location(req.CurrentLocation),
	}

	if err := h.directory.UpdateArtist(r.Context(), artist); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, artist)
}
