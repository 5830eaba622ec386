package ui

import (
	"sync"
	"time"

	"github.com/bz888/sentiment/internal/trigger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const spinnerInterval = 100 * time.Millisecond

var stateColors = map[trigger.ResultState]tcell.Color{
	trigger.Idle:     tcell.ColorWhite,
	trigger.Loading:  tcell.ColorDodgerBlue,
	trigger.Positive: tcell.ColorGreen,
	trigger.Negative: tcell.ColorRed,
	trigger.Neutral:  tcell.ColorGray,
	trigger.Error:    tcell.ColorOrange,
}

// updater runs f on the UI goroutine and redraws. *tview.Application
// satisfies it through QueueUpdateDraw, which waits for the event loop to
// run f.
type updater interface {
	QueueUpdateDraw(f func()) *tview.Application
}

// view adapts the tview widgets to trigger.View. Its trigger.View methods
// wait on the event loop and must not be called from it.
type view struct {
	app    updater
	result *tview.TextView
	button *tview.Button

	spinEvery time.Duration

	mu          sync.Mutex
	input       string
	stopLoading chan struct{}
}

func newView(app updater, result *tview.TextView, button *tview.Button) *view {
	return &view{app: app, result: result, button: button, spinEvery: spinnerInterval}
}

// setInput records the text the next analysis reads. The input widget is
// read on the event loop, so InputText itself never touches it.
func (v *view) setInput(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.input = text
}

func (v *view) InputText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.input
}

func (v *view) SetResult(state trigger.ResultState, text string) {
	v.stopSpinner()
	v.app.QueueUpdateDraw(func() {
		v.paint(state, text)
	})
	if state == trigger.Loading {
		v.startSpinner(text)
	}
}

func (v *view) SetControlEnabled(enabled bool) {
	v.app.QueueUpdateDraw(func() {
		v.button.SetDisabled(!enabled)
	})
}

// paint writes state into the result box. It runs on the event loop, or
// before the loop has started.
func (v *view) paint(state trigger.ResultState, text string) {
	color := stateColors[state]
	v.result.SetBorderColor(color)
	v.result.SetTitleColor(color)
	v.result.SetTitle(" Result: " + state.String() + " ")
	if state == trigger.Loading {
		text = string(spinnerFrames[0]) + " " + text
	}
	v.result.SetText(text)
}

func (v *view) startSpinner(text string) {
	stop := make(chan struct{})
	v.mu.Lock()
	v.stopLoading = stop
	v.mu.Unlock()

	interval := v.spinEvery

	// Frames are dropped on the UI goroutine once the spinner is replaced,
	// so a late tick never overwrites the final result.
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for frame := 1; ; frame++ {
			select {
			case <-stop:
				return
			case <-ticker.C:
				f := frame
				v.app.QueueUpdateDraw(func() {
					if !v.spinning(stop) {
						return
					}
					v.result.SetText(string(spinnerFrames[f%len(spinnerFrames)]) + " " + text)
				})
			}
		}
	}()
}

func (v *view) spinning(stop chan struct{}) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stopLoading == stop
}

func (v *view) stopSpinner() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.stopLoading != nil {
		close(v.stopLoading)
		v.stopLoading = nil
	}
}
