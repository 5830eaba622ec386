package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComponentRoundTrips(t *testing.T) {
	inputs := []string{
		"I am so happy",
		"a+b=c & d",
		"50% off?!",
		"naïve café ☕",
		"line\nbreak",
	}
	for _, in := range inputs {
		enc := EncodeComponent(in)
		assert.NotContains(t, enc, "+", "input %q", in)
		assert.NotContains(t, enc, " ", "input %q", in)

		dec, err := url.QueryUnescape(enc)
		require.NoError(t, err)
		assert.Equal(t, in, dec)
	}
}

func TestAnalyzeURL(t *testing.T) {
	c := NewClient("http://localhost:5000")
	assert.Equal(t, "http://localhost:5000/sentimentAnalyzer?textToAnalyze=I%20am%20so%20happy", c.AnalyzeURL("I am so happy"))

	c = NewClient("localhost:5000")
	assert.Equal(t, "http://localhost:5000/sentimentAnalyzer?textToAnalyze=x", c.AnalyzeURL("x"))
}

func TestAnalyzeReturnsBodyForAnyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a+b", r.URL.Query().Get(TextParam))
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL).Analyze(context.Background(), "a+b")
	require.NoError(t, err)
	assert.Equal(t, "upstream exploded\n", body)
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	_, err := NewClient("http://localhost:5000").Analyze(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestAnalyzeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewClient(base).Analyze(context.Background(), "hello")
	assert.Error(t, err)
}
