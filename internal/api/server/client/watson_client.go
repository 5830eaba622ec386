package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bz888/sentiment/internal/logger"
)

const (
	modelIDHeader = "grpc-metadata-mm-model-id"
	watsonTimeout = 5 * time.Second
)

// WatsonClient classifies text with the Watson NLP BERT sentiment service.
// When the service cannot be reached it answers with the keyword fallback.
type WatsonClient struct {
	Client
	modelID  string
	fallback Classifier
	log      *logger.Logger
}

type WatsonConfig struct {
	URL     string
	ModelID string
	Timeout time.Duration
}

func NewWatsonClient(config WatsonConfig, fallback Classifier) (*WatsonClient, error) {
	if config.Timeout == 0 {
		config.Timeout = watsonTimeout
	}
	base, err := NewClient(ClientConfig{URL: config.URL, Timeout: config.Timeout})
	if err != nil {
		return nil, err
	}
	return &WatsonClient{
		Client:   *base,
		modelID:  config.ModelID,
		fallback: fallback,
		log:      logger.NewLogger("watson"),
	}, nil
}

type WatsonRequest struct {
	RawDocument WatsonDocument `json:"raw_document"`
}

type WatsonDocument struct {
	Text string `json:"text"`
}

type WatsonResponse struct {
	DocumentSentiment WatsonSentiment `json:"documentSentiment"`
}

type WatsonSentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *WatsonClient) Classify(ctx context.Context, text string) (Sentiment, error) {
	bts, err := json.Marshal(WatsonRequest{RawDocument: WatsonDocument{Text: text}})
	if err != nil {
		return Sentiment{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetPredictURL(), bytes.NewBuffer(bts))
	if err != nil {
		c.log.Error("Failed to create watson request:", err)
		return Sentiment{}, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(modelIDHeader, c.modelID)

	resp, err := c.http.Do(req)
	if err != nil {
		if c.fallback == nil {
			c.log.Error("Watson unreachable and no fallback configured:", err)
			return Sentiment{}, nil
		}
		c.log.Warn("Watson unreachable, using fallback classifier:", err)
		return c.fallback.Classify(ctx, text)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Watson rejected input:", resp.Status)
		return Sentiment{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Failed to read watson response:", err)
		return Sentiment{}, nil
	}

	var response WatsonResponse
	if err := json.Unmarshal(body, &response); err != nil {
		c.log.Error("Failed to decode watson response:", err)
		c.log.Error("Raw response data:", string(body))
		return Sentiment{}, nil
	}

	return Sentiment{
		Label: response.DocumentSentiment.Label,
		Score: response.DocumentSentiment.Score,
	}, nil
}
