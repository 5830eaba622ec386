// Package trigger runs a single sentiment analysis from user input to
// rendered result. The UI widgets and the remote classifier are injected so
// the flow can be driven without a terminal or a network.
package trigger

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bz888/sentiment/internal/logger"
)

const (
	MissingInputMessage = "⚠ Please enter some text before running the analysis."
	LoadingMessage      = "Analyzing…"
)

// View is the part of the UI the trigger reads from and writes to.
type View interface {
	// InputText returns the current, untrimmed content of the input field.
	InputText() string
	// SetResult tags the result container with state and shows text in it.
	SetResult(state ResultState, text string)
	SetControlEnabled(enabled bool)
}

// Analyzer sends text to the remote classifier and returns its raw reply.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}

type Trigger struct {
	view     View
	analyzer Analyzer
	log      *logger.Logger

	// latest is the token of the most recent dispatch. Settlements carrying
	// an older token are dropped.
	latest   atomic.Uint64
	inFlight sync.WaitGroup
}

func New(view View, analyzer Analyzer) *Trigger {
	return &Trigger{
		view:     view,
		analyzer: analyzer,
		log:      logger.NewLogger("trigger"),
	}
}

// Analyze reads the input and, when it is not blank, dispatches one request.
// It returns before the request settles.
func (t *Trigger) Analyze(ctx context.Context) {
	text := strings.TrimSpace(t.view.InputText())
	if text == "" {
		t.log.Warn("empty input, request not sent")
		t.view.SetResult(Error, MissingInputMessage)
		return
	}

	token := t.latest.Add(1)

	t.view.SetControlEnabled(false)
	t.view.SetResult(Loading, LoadingMessage)

	t.inFlight.Add(1)
	go func() {
		defer t.inFlight.Done()

		body, err := t.analyzer.Analyze(ctx, text)
		if token != t.latest.Load() {
			t.log.Infof("discarding stale response for request %d", token)
			return
		}

		t.view.SetControlEnabled(true)
		if err != nil {
			t.log.Error("analysis request failed:", err)
			t.view.SetResult(Error, NetworkErrorMessage(err))
			return
		}

		state := Classify(body)
		t.log.Infof("request %d classified as %s", token, state)
		t.view.SetResult(state, Render(state, body))
	}()
}

// Wait blocks until every dispatched request has settled.
func (t *Trigger) Wait() {
	t.inFlight.Wait()
}
