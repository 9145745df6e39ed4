package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/velvetrope/events-site/internal/domain"
	"github.com/velvetrope/events-site/internal/http/response"
	"github.com/velvetrope/events-site/internal/service"
	"github.com/velvetrope/events-site/pkg/logger"
)

type RSVPHandler struct {
	rsvps service.RSVPService
}

func NewRSVPHandler(rsvps service.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvps: rsvps}
}

// Submit records a guest's response and returns the fresh tally.
func (h *RSVPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitRSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	counts, err := h.rsvps.Submit(r.Context(), &req)
	if err != nil {
		h.writeRSVPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.SubmitRSVPResponse{
		Success: true,
		Message: "RSVP submitted successfully",
		Counts:  counts,
	})
}

// List returns the attendee list and tally for one event.
func (h *RSVPHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required")
		return
	}

	rsvps, counts, err := h.rsvps.List(r.Context(), eventID)
	if err != nil {
		h.writeRSVPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.RSVPListResponse{
		Success: true,
		RSVPs:   rsvps,
		Counts:  counts,
	})
}

func (h *RSVPHandler) writeRSVPError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		response.WriteErrorWithDetails(w, http.StatusBadRequest, "Validation failed", response.CodeInvalidInput, ve.Fields)
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.ErrorContext(r.Context(), "RSVP storage unavailable", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Storage temporarily unavailable, please retry", response.CodeStorageError)
	default:
		logger.ErrorContext(r.Context(), "RSVP request failed", "error", err)
		response.InternalError(w, "Internal server error")
	}
}
