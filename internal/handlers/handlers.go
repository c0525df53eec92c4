package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"sentiment-gateway/internal/models"
	"sentiment-gateway/internal/services"
)

// messageService is what both handlers need from the AI layer. Satisfied
// by services.GeminiService and services.OfflineService.
type messageService interface {
	Classify(ctx context.Context, message string) (string, error)
	Chat(ctx context.Context, message string) (string, error)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.UpstreamUnavailableError:
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_UNAVAILABLE", "Failed to connect to the AI service", r))
	case *services.UpstreamRejectedError:
		writeJSON(w, e.StatusCode, errorResp("UPSTREAM_REJECTED", e.Error(), r))
	case *services.UpstreamMalformedError:
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_MALFORMED", e.Error(), r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
