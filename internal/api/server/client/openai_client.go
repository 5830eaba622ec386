package client

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bz888/sentiment/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

const openAIPrompt = "Classify the sentiment of the text below. Reply with exactly one line " +
	"of the form `LABEL SCORE` where LABEL is POSITIVE, NEGATIVE or NEUTRAL and SCORE " +
	"is your confidence between 0 and 1. Reply `INVALID 0` if the text is not " +
	"meaningful language.\n\nText: %s"

var openAIReply = regexp.MustCompile(`(?i)\b(POSITIVE|NEGATIVE|NEUTRAL)\b\s+([01](?:\.\d+)?)`)

// OpenAIClassifier asks a chat model for a sentiment label.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty means api.openai.com.
	BaseURL string
}

func NewOpenAIClassifier(config OpenAIConfig) *OpenAIClassifier {
	cfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}
	model := config.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    logger.NewLogger("openai"),
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (Sentiment, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(openAIPrompt, text),
			},
		},
		Temperature: 0,
	})
	if err != nil {
		c.log.Error("ChatCompletion error:", err)
		return Sentiment{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		c.log.Warn("ChatCompletion returned no choices")
		return Sentiment{}, nil
	}

	return parseOpenAIReply(resp.Choices[0].Message.Content), nil
}

func parseOpenAIReply(content string) Sentiment {
	m := openAIReply.FindStringSubmatch(content)
	if m == nil {
		return Sentiment{}
	}
	score, err := strconv.ParseFloat(m[2], 64)
	if err != nil || score > 1 {
		return Sentiment{}
	}
	return Sentiment{Label: "SENT_" + strings.ToUpper(m[1]), Score: score}
}
