package models

// Canonical sentiment labels. The gateway never returns anything else.
const (
	SentimentHappy = "happy"
	SentimentSad   = "sad"
)

// SentimentRequest is the payload sent to the sentiment endpoint.
type SentimentRequest struct {
	Message string `json:"message"`
}

// SentimentResponse carries the classified label back to the frontend.
type SentimentResponse struct {
	Sentiment string `json:"sentiment"`
}
