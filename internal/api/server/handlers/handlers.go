package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/bz888/sentiment/internal/api/server/client"
	"github.com/bz888/sentiment/internal/logger"
)

const (
	MissingTextReply = "Please enter some text to analyze."
	InvalidTextReply = "Invalid input! Try again."
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type Handler struct {
	classifier client.Classifier
}

func NewHandler(classifier client.Classifier) *Handler {
	return &Handler{classifier: classifier}
}

// SentimentHandler answers GET /sentimentAnalyzer with a plain-text verdict.
func (h *Handler) SentimentHandler(w http.ResponseWriter, r *http.Request) {
	localLogger := logger.NewLogger("SentimentHandler")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	text := r.URL.Query().Get("textToAnalyze")
	if strings.TrimSpace(text) == "" {
		localLogger.Warn("Request without text", RequestID(r))
		fmt.Fprint(w, MissingTextReply)
		return
	}

	sentiment, err := h.classifier.Classify(r.Context(), text)
	if err != nil {
		localLogger.Error("Classifier failed:", err, RequestID(r))
		http.Error(w, "Failed to analyze text: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if !sentiment.Valid() {
		localLogger.Info("Classifier rejected input", RequestID(r))
		fmt.Fprint(w, InvalidTextReply)
		return
	}

	name, ok := sentiment.Name()
	if !ok {
		localLogger.Error("Unexpected sentiment label:", sentiment.Label, RequestID(r))
		http.Error(w, "Failed to analyze text: unexpected label "+sentiment.Label, http.StatusInternalServerError)
		return
	}

	localLogger.Info("Classified as", sentiment.Label, sentiment.Score, RequestID(r))
	fmt.Fprintf(w, "The given text has been identified as %s with a score of %s.", name, formatScore(sentiment.Score))
}

type indexData struct {
	Title string
}

func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, indexData{Title: "Sentiment Analyzer"}); err != nil {
		logger.NewLogger("IndexHandler").Error("Render error:", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
	}
}

// formatScore prints the shortest representation that round-trips, in
// exponent form below 1e-4 and from 1e16 up, and otherwise with a decimal
// point even on whole numbers (1 prints as 1.0).
func formatScore(score float64) string {
	exp := strconv.FormatFloat(score, 'e', -1, 64)
	if i := strings.LastIndexByte(exp, 'e'); i >= 0 {
		if e, err := strconv.Atoi(exp[i+1:]); err == nil && score != 0 && (e < -4 || e >= 16) {
			return exp
		}
	}

	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// RequestID returns the id assigned by the server middleware, if any.
func RequestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return "[" + id + "]"
	}
	return ""
}
