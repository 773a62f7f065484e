package api

import (
	"errors"
	"net/http"

	"github.com/kalamela/kalamela-api/internal/api/shared"
	"github.com/kalamela/kalamela-api/internal/service"
	"github.com/kalamela/kalamela-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// RespondWithMappedError writes the response for an error coming out of a
// service call. Validation errors keep their field scope and
// human-readable message; everything else is sanitized.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		shared.RespondWithFieldError(w, r, status, vErr.Field, vErr.Message)
		return
	}

	message := "An unexpected error occurred"
	switch status {
	case http.StatusBadRequest:
		message = "Invalid request data"
	case http.StatusNotFound:
		message = "Artist not found"
	}

	shared.RespondWithError(w, r, status, message)
}
