package services

import (
	"context"
	"strings"

	"sentiment-gateway/internal/models"
)

const offlineChatReply = "I'm in offline mode right now, but we can chat more later!"

// happyKeywords drive the offline heuristic: any match classifies the
// message as happy, everything else is sad.
var happyKeywords = []string{
	"good", "great", "happy", "love", "awesome",
	"wonderful", "excellent", "amazing", "fantastic",
}

// OfflineService answers without touching the network. It is wired in
// when no provider credential is configured, so local development keeps
// working against the same HTTP surface.
type OfflineService struct{}

func NewOfflineService() *OfflineService {
	return &OfflineService{}
}

func (s *OfflineService) Classify(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, kw := range happyKeywords {
		if strings.Contains(lower, kw) {
			return models.SentimentHappy, nil
		}
	}
	return models.SentimentSad, nil
}

func (s *OfflineService) Chat(_ context.Context, _ string) (string, error) {
	return offlineChatReply, nil
}
