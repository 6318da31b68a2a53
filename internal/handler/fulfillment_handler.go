package handler

import (
	"encoding/json"
	"net/http"

	"gift-fulfillment/internal/model"
	"gift-fulfillment/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// FulfillmentHandler handles fulfillment-related HTTP requests.
type FulfillmentHandler struct {
	service service.FulfillmentService
	logger  zerolog.Logger
}

// NewFulfillmentHandler creates a new fulfillment handler.
func NewFulfillmentHandler(service service.FulfillmentService, logger zerolog.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{
		service: service,
		logger:  logger.With().Str("handler", "fulfillment").Logger(),
	}
}

// GetByID handles GET /api/fulfillments/{id} requests.
func (h *FulfillmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	fulfillment, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, fulfillment)
}

// UpdateStatus handles PATCH /api/fulfillments/{id}/status requests.
func (h *FulfillmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateFulfillmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, err, h.logger)
		return
	}

	fulfillment, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, fulfillment)
}
