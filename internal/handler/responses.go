package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/SlotMachine_Go/internal/domain"
	"github.com/osse101/SlotMachine_Go/internal/logger"
	"github.com/osse101/SlotMachine_Go/internal/slots"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Debug(LogMsgServiceError, "operation", opName, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// errors.Is walks wrapped errors, so callers may add context freely.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgSpinFailed
	case errors.Is(err, domain.ErrEmptyPlayerName):
		return http.StatusBadRequest, ErrMsgNameRequired
	case errors.Is(err, domain.ErrNoActivePlayer):
		return http.StatusBadRequest, ErrMsgNoActivePlayer
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrOutOfCoins):
		return http.StatusConflict, slots.MsgOutOfCoins
	case errors.Is(err, domain.ErrSpinInProgress):
		return http.StatusConflict, ErrMsgSpinInProgress
	case errors.Is(err, domain.ErrRestartNotAllowed):
		return http.StatusConflict, ErrMsgRestartNotNeeded
	case errors.Is(err, domain.ErrInvalidSource):
		return http.StatusBadRequest, ErrMsgInvalidSource
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable, ErrMsgLeaderboardUnavailable
	case errors.Is(err, domain.ErrLocalStoreFull):
		return http.StatusRequestEntityTooLarge, ErrMsgLocalStoreFull
	}
	return http.StatusInternalServerError, ErrMsgSpinFailed
}
