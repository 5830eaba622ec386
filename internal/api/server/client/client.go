package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	LabelPositive = "SENT_POSITIVE"
	LabelNegative = "SENT_NEGATIVE"
	LabelNeutral  = "SENT_NEUTRAL"
)

// Sentiment is a classifier verdict. A zero Label means the classifier
// rejected the text.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (s Sentiment) Valid() bool {
	return s.Label != ""
}

// Name returns the second "_"-separated part of the label, e.g. POSITIVE
// for SENT_POSITIVE. ok is false for labels without one.
func (s Sentiment) Name() (name string, ok bool) {
	parts := strings.Split(s.Label, "_")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// Classifier assigns a sentiment to a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Sentiment, error)
}

// Client holds what every HTTP-backed classifier needs.
type Client struct {
	http       *http.Client
	predictURL *url.URL
}

// ClientConfig holds the configuration for the client
type ClientConfig struct {
	URL     string
	Timeout time.Duration
}

// NewClient creates a client posting to the configured prediction URL
func NewClient(config ClientConfig) (*Client, error) {
	predictURL, err := url.Parse(config.URL)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:       &http.Client{Timeout: config.Timeout},
		predictURL: predictURL,
	}, nil
}

func (c *Client) GetPredictURL() string {
	return c.predictURL.String()
}
