package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bz888/sentiment/internal/api"
	"github.com/bz888/sentiment/internal/trigger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screenState struct {
	text     string
	disabled bool
}

type testScreen struct {
	app    *tview.Application
	screen tcell.SimulationScreen
	input  *tview.TextArea
	result *tview.TextView
	button *tview.Button
}

// startScreen runs a real application on a simulated terminal with the same
// wiring Run uses, and stops it when the test ends.
func startScreen(t *testing.T, analyzer trigger.Analyzer, text string) *testScreen {
	t.Helper()

	s := &testScreen{
		app:    tview.NewApplication(),
		screen: tcell.NewSimulationScreen("UTF-8"),
		input:  tview.NewTextArea(),
		result: tview.NewTextView(),
		button: tview.NewButton("Analyze"),
	}
	s.app.SetScreen(s.screen)
	s.input.SetText(text, true)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	bound := make(chan *view, 1)
	go func() {
		bound <- bind(ctx, s.app, s.input, s.result, s.button, analyzer)
	}()
	var v *view
	select {
	case v = <-bound:
	case <-time.After(2 * time.Second):
		t.Fatal("binding the view blocked before the event loop started")
	}

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(s.input, 0, 1, true).
		AddItem(s.button, 1, 0, false).
		AddItem(s.result, 0, 1, false)

	done := make(chan error, 1)
	go func() {
		done <- s.app.SetRoot(root, true).SetFocus(s.input).Run()
	}()
	t.Cleanup(func() {
		v.stopSpinner()
		s.app.Stop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("application did not stop")
		}
	})

	_, ok := s.read()
	require.True(t, ok, "event loop did not start")
	return s
}

// read samples the widgets on the event loop. ok is false when the loop
// does not run the read within a second.
func (s *testScreen) read() (screenState, bool) {
	got := make(chan screenState, 1)
	go s.app.QueueUpdate(func() {
		got <- screenState{text: s.result.GetText(false), disabled: s.button.IsDisabled()}
	})
	select {
	case st := <-got:
		return st, true
	case <-time.After(time.Second):
		return screenState{}, false
	}
}

func (s *testScreen) waitFor(t *testing.T, want screenState) {
	t.Helper()
	assert.Eventually(t, func() bool {
		st, ok := s.read()
		return ok && st == want
	}, 5*time.Second, 20*time.Millisecond, "result box never showed %q", want.text)
}

func sentimentServer(t *testing.T, reply string, queries *atomic.Value) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries.Store(r.URL.RawQuery)
		w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCtrlEnterRendersPositiveResult(t *testing.T) {
	var query atomic.Value
	srv := sentimentServer(t, "Positive sentiment", &query)
	s := startScreen(t, api.NewClient(srv.URL), "I am so happy")

	s.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModCtrl)

	s.waitFor(t, screenState{text: "✅ Positive sentiment", disabled: false})
	assert.Equal(t, "textToAnalyze=I%20am%20so%20happy", query.Load())
}

func TestButtonRendersNegativeResult(t *testing.T) {
	var query atomic.Value
	srv := sentimentServer(t, "identified as NEGATIVE", &query)
	s := startScreen(t, api.NewClient(srv.URL), "rainy monday")

	s.screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	s.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	s.waitFor(t, screenState{text: "❌ identified as NEGATIVE", disabled: false})
	assert.Equal(t, "textToAnalyze=rainy%20monday", query.Load())
}

func TestBlankInputKeepsEventLoopResponsive(t *testing.T) {
	var query atomic.Value
	srv := sentimentServer(t, "unused", &query)
	s := startScreen(t, api.NewClient(srv.URL), "   ")

	s.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModCtrl)

	s.waitFor(t, screenState{text: trigger.MissingInputMessage, disabled: false})
	assert.Nil(t, query.Load())
}

func TestIdleStateIsPaintedBeforeRun(t *testing.T) {
	s := startScreen(t, api.NewClient("http://localhost:1"), "")

	st, ok := s.read()
	require.True(t, ok)
	assert.Equal(t, screenState{text: "", disabled: false}, st)
}
