package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"sentiment-gateway/internal/models"
)

const sentimentPrompt = `You are a highly specialized sentiment analysis model. Your only function is to analyze the following text and classify its dominant emotion as either "happy" or "sad". Your response MUST be a single word, with no extra formatting, punctuation, or explanation. The only valid responses are the literal strings "happy" or "sad".`

const chatPrompt = `You are a friendly and supportive AI assistant. Keep your responses concise and encouraging.`

// Gemini generateContent wire format. Only the text path is used;
// everything else the provider sends is ignored.
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// GeminiService calls the generateContent REST endpoint. It holds no
// per-request state and is safe for concurrent use.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiService(apiKey, model, baseURL string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Classify sends the message with the sentiment instruction and folds the
// reply into one of the canonical labels. A reply that parses but is
// off-vocabulary falls back to "sad"; a structurally broken reply is an
// UpstreamMalformedError, never a label.
func (s *GeminiService) Classify(ctx context.Context, message string) (string, error) {
	raw, err := s.generate(ctx, sentimentPrompt, message)
	if err != nil {
		return "", err
	}

	sentiment := strings.ToLower(strings.TrimSpace(raw))
	if sentiment != models.SentimentHappy && sentiment != models.SentimentSad {
		log.Printf("WARNING: Gemini returned off-vocabulary sentiment %q, defaulting to sad", sentiment)
		sentiment = models.SentimentSad
	}
	return sentiment, nil
}

// Chat sends the message with the conversational instruction and returns
// the provider's text verbatim after trimming.
func (s *GeminiService) Chat(ctx context.Context, message string) (string, error) {
	raw, err := s.generate(ctx, chatPrompt, message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (s *GeminiService) generate(ctx context.Context, systemInstruction, message string) (string, error) {
	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: message}}},
		},
		SystemInstruction: &generateContent{
			Parts: []generatePart{{Text: systemInstruction}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode provider request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamUnavailableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Gemini API rejected request: status=%d body=%s", resp.StatusCode, respBody)
		return "", &UpstreamRejectedError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UpstreamMalformedError{Reason: "response body is not valid JSON"}
	}

	text := extractText(&parsed)
	if text == "" {
		return "", &UpstreamMalformedError{Reason: "no candidate text in response"}
	}
	return text, nil
}

func extractText(resp *generateResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}
