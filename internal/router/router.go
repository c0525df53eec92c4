package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"sentiment-gateway/internal/handlers"
	"sentiment-gateway/internal/middleware"
)

func New(
	sentimentHandler *handlers.SentimentHandler,
	chatHandler *handlers.ChatHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Liveness check for humans poking the root URL
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("✅ Sentiment Gateway is running. Use POST /api/sentiment and POST /api/chat."))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sentiment", sentimentHandler.Analyze)
		r.Post("/chat", chatHandler.Ask)
	})

	return r
}
