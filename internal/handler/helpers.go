package handler

import (
	"errors"
	"net/http"

	"nextstep/internal/domain"
	"nextstep/internal/httputil"
)

// upstreamFailureMessage is the fixed generic text returned whenever the
// completion provider fails. The real failure reason never leaves the
// server logs.
const upstreamFailureMessage = "Failed to get response"

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUpstream):
		httputil.RespondError(w, http.StatusInternalServerError, upstreamFailureMessage)
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
