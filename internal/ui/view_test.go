package ui

import (
	"testing"
	"time"

	"github.com/bz888/sentiment/internal/trigger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

// inlineApp runs queued updates on the calling goroutine, standing in for
// an event loop that is already running.
type inlineApp struct{}

func (inlineApp) QueueUpdateDraw(f func()) *tview.Application {
	f()
	return nil
}

func newTestView() *view {
	v := newView(inlineApp{}, tview.NewTextView(), tview.NewButton("Analyze"))
	v.spinEvery = time.Hour
	return v
}

func TestViewReadsCapturedInput(t *testing.T) {
	v := newTestView()
	v.setInput("  hello there ")

	assert.Equal(t, "  hello there ", v.InputText())
}

func TestViewRendersResultText(t *testing.T) {
	v := newTestView()

	v.SetResult(trigger.Positive, "✅ [bracketed] text")

	assert.Equal(t, "✅ [bracketed] text", v.result.GetText(false))
}

func TestViewSpinnerIsReplacedByResult(t *testing.T) {
	v := newTestView()

	v.SetResult(trigger.Loading, trigger.LoadingMessage)
	assert.Equal(t, "⠋ "+trigger.LoadingMessage, v.result.GetText(false))
	assert.NotNil(t, v.stopLoading)

	v.SetResult(trigger.Error, "⚠ boom")
	assert.Equal(t, "⚠ boom", v.result.GetText(false))
	assert.Nil(t, v.stopLoading)
}

func TestViewTogglesControl(t *testing.T) {
	v := newTestView()

	v.SetControlEnabled(false)
	assert.True(t, v.button.IsDisabled())

	v.SetControlEnabled(true)
	assert.False(t, v.button.IsDisabled())
}

func TestIsCtrlEnter(t *testing.T) {
	assert.True(t, isCtrlEnter(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModCtrl)))
	assert.True(t, isCtrlEnter(tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl)))
	assert.False(t, isCtrlEnter(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.False(t, isCtrlEnter(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)))
}
