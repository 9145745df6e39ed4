package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velvetrope/events-site/internal/domain"
	"github.com/velvetrope/events-site/internal/http/response"
	"github.com/velvetrope/events-site/internal/service"
	"github.com/velvetrope/events-site/pkg/auth"
	"github.com/velvetrope/events-site/pkg/logger"
)

type AuthHandler struct {
	access service.AccessService
}

func NewAuthHandler(access service.AccessService) *AuthHandler {
	return &AuthHandler{access: access}
}

// Login exchanges a shared event password for a bearer token. The
// response carries the event's public attributes, never its hash.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	res, err := h.access.Login(r.Context(), &req)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			response.WriteErrorWithDetails(w, http.StatusBadRequest, "Invalid input", response.CodeInvalidInput, ve.Fields)
		case errors.Is(err, domain.ErrInvalidPassword):
			response.WriteError(w, http.StatusUnauthorized, "Invalid password", response.CodeInvalidCredentials)
		default:
			logger.ErrorContext(r.Context(), "Login failed", "error", err)
			response.WriteError(w, http.StatusInternalServerError, "Authentication service unavailable", response.CodeServiceUnavailable)
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Verify checks a bearer token and returns the event it unlocks.
// Expired and malformed tokens get distinct codes: one means
// re-login, the other a client bug.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		response.WriteError(w, http.StatusUnauthorized, "Access token required", response.CodeInvalidToken)
		return
	}

	event, err := h.access.Verify(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			response.WriteError(w, http.StatusUnauthorized, "Access token expired", response.CodeExpiredToken)
		case errors.Is(err, auth.ErrTokenInvalid):
			response.WriteError(w, http.StatusUnauthorized, "Invalid access token", response.CodeInvalidToken)
		default:
			logger.ErrorContext(r.Context(), "Token verification failed", "error", err)
			response.WriteError(w, http.StatusInternalServerError, "Verification failed", response.CodeInternalError)
		}
		return
	}

	writeJSON(w, http.StatusOK, domain.VerifyResponse{Valid: true, Event: event})
}
