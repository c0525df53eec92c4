package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"sentiment-gateway/internal/models"
)

type SentimentHandler struct {
	service messageService
}

func NewSentimentHandler(service messageService) *SentimentHandler {
	return &SentimentHandler{service: service}
}

func (h *SentimentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	sentiment, err := h.service.Classify(r.Context(), req.Message)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SentimentResponse{Sentiment: sentiment})
}
