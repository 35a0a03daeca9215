package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
)

// listEnvelope is the shape every list endpoint returns.
type listEnvelope struct {
	Data any `json:"data"`
}

// messageResponse is the shape mutation endpoints return; on failure the
// message is displayed to the user verbatim.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeData(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	writeJSON(w, status, listEnvelope{Data: data}, logger)
}

func writeMessage(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	writeJSON(w, status, messageResponse{Message: message}, logger)
}

// writeError maps domain errors onto status codes. Unknown errors get a
// generic fallback so internals never leak into the UI.
func writeError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var v *domain.ValidationError
	switch {
	case errors.As(err, &v):
		writeMessage(w, http.StatusBadRequest, v.Message, logger)
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "record not found", logger)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials", logger)
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrDuplicateUsername):
		writeMessage(w, http.StatusConflict, err.Error(), logger)
	case errors.Is(err, domain.ErrInvalidTransition):
		writeMessage(w, http.StatusConflict, "status transition not allowed", logger)
	default:
		logger.Error("request failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Something went wrong. Please try again.", logger)
	}
}
