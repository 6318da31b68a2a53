package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gift-fulfillment/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response is already partially written; nothing useful to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// respondError maps a service error to an HTTP response. Domain errors carry
// their own status; anything else is reported as an opaque internal failure.
func respondError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var notFound *model.NotFoundError
	var invalidTransition *model.InvalidTransitionError
	var validation *model.ValidationError

	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, notFound.Error(), logger)
	case errors.As(err, &invalidTransition):
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidTransition, invalidTransition.Error(), logger)
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, validation.Error(), logger)
	default:
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}
