package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sentiment-gateway/internal/handlers"
	"sentiment-gateway/internal/services"
)

func newTestRouter() http.Handler {
	svc := services.NewOfflineService()
	return New(
		handlers.NewSentimentHandler(svc),
		handlers.NewChatHandler(svc),
		"http://localhost:5173",
	)
}

func TestRouter_Liveness(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "running") {
		t.Errorf("Expected liveness text, got %q", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected plain text, got %q", ct)
	}
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("Unexpected health body: %q", rr.Body.String())
	}
}

func TestRouter_SentimentEndToEnd(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/sentiment",
		strings.NewReader(`{"message":"this is great"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"sentiment":"happy"`) {
		t.Errorf("Expected happy classification, got %q", rr.Body.String())
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}

func TestRouter_CORSHeaders(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/sentiment", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "http://localhost:5173" {
		t.Errorf("Expected configured origin, got %q", origin)
	}
}

func TestRouter_ClassifyAlwaysCanonical(t *testing.T) {
	// Whatever the message, the label is one of the two canonical values.
	r := newTestRouter()
	messages := []string{"this is great", "this is bad", "neutral text", "!!"}

	for _, msg := range messages {
		req := httptest.NewRequest(http.MethodPost, "/api/sentiment",
			strings.NewReader(`{"message":"`+msg+`"}`)).WithContext(context.Background())
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		body := rr.Body.String()
		if !strings.Contains(body, `"sentiment":"happy"`) && !strings.Contains(body, `"sentiment":"sad"`) {
			t.Errorf("Message %q produced non-canonical result: %s", msg, body)
		}
	}
}
