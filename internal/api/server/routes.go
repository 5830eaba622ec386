package server

import (
	"net/http"

	"github.com/bz888/sentiment/internal/api/server/handlers"
)

func registerRoutes(mux *http.ServeMux, handler *handlers.Handler) {
	mux.HandleFunc("/sentimentAnalyzer", handler.SentimentHandler)
	mux.HandleFunc("/", handler.IndexHandler)
}

// NewRouter returns the server's routes wrapped in the request-id middleware.
func NewRouter(handler *handlers.Handler) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, handler)
	return handlers.WithRequestID(mux)
}
