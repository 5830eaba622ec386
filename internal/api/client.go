package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bz888/sentiment/internal/logger"
)

const (
	AnalyzePath = "/sentimentAnalyzer"
	TextParam   = "textToAnalyze"
)

var ErrEmptyText = errors.New("no text to analyze")

// Client talks to the sentiment server on behalf of the UI.
type Client struct {
	base *url.URL
	http *http.Client
	log  *logger.Logger
}

func NewClient(baseURL string) *Client {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		base = &url.URL{Scheme: "http", Host: baseURL}
	}
	return &Client{
		base: base,
		http: &http.Client{},
		log:  logger.NewLogger("api client"),
	}
}

// AnalyzeURL returns the request URL for text. The parameter is encoded the
// way a browser's encodeURIComponent does it, so spaces become %20.
func (c *Client) AnalyzeURL(text string) string {
	u := c.base.ResolveReference(&url.URL{Path: AnalyzePath})
	u.RawQuery = TextParam + "=" + EncodeComponent(text)
	return u.String()
}

// Analyze sends text to the server and returns the reply body whatever the
// status code; only transport failures are errors.
func (c *Client) Analyze(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.AnalyzeURL(text), nil)
	if err != nil {
		c.log.Error("Failed to create analyze request:", err)
		return "", err
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Failed to perform analyze request:", err)
		return "", err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Error("Failed to close response body:", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Sentiment server replied", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read analyze response: %w", err)
	}
	return string(body), nil
}

// EncodeComponent percent-encodes s for use as a single query value.
func EncodeComponent(s string) string {
	// QueryEscape writes a literal '+' as %2B, so every remaining '+' is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
