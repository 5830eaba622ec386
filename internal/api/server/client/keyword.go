package client

import (
	"context"
	"math"
	"strings"

	"github.com/bz888/sentiment/internal/logger"
)

var (
	commonWords = []string{
		"i", "you", "the", "a", "to", "is", "it", "that", "this",
		"and", "or", "but", "in", "on", "at", "for", "with",
	}
	positiveWords = []string{
		"love", "great", "excellent", "amazing", "good", "wonderful",
		"fantastic", "best", "perfect", "happy", "enjoy",
	}
	negativeWords = []string{
		"hate", "terrible", "awful", "bad", "worst", "horrible",
		"poor", "disappointing", "angry", "sad",
	}
)

// KeywordClassifier is an offline heuristic used when the remote service is
// unreachable.
type KeywordClassifier struct {
	log *logger.Logger
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{log: logger.NewLogger("keyword fallback")}
}

func (k *KeywordClassifier) Classify(_ context.Context, text string) (Sentiment, error) {
	lower := strings.ToLower(text)

	hasCommon := false
	for _, word := range strings.Fields(lower) {
		if contains(commonWords, word) {
			hasCommon = true
			break
		}
	}

	// Keywords match as substrings, so "badly" counts for "bad".
	pos := countSubstrings(lower, positiveWords)
	neg := countSubstrings(lower, negativeWords)

	switch {
	case !hasCommon && pos == 0 && neg == 0:
		k.log.Warn("Invalid or gibberish text detected")
		return Sentiment{}, nil
	case pos > neg:
		k.log.Info("Keyword analysis: POSITIVE")
		return Sentiment{Label: LabelPositive, Score: keywordScore(pos)}, nil
	case neg > pos:
		k.log.Info("Keyword analysis: NEGATIVE")
		return Sentiment{Label: LabelNegative, Score: keywordScore(neg)}, nil
	default:
		k.log.Info("Keyword analysis: NEUTRAL")
		return Sentiment{Label: LabelNeutral, Score: 0.75}, nil
	}
}

func keywordScore(hits int) float64 {
	return 0.85 + math.Min(float64(hits)*0.05, 0.14)
}

func countSubstrings(s string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			n++
		}
	}
	return n
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
