package ui

import (
	"context"
	"errors"

	"github.com/bz888/sentiment/internal/api"
	"github.com/bz888/sentiment/internal/config"
	"github.com/bz888/sentiment/internal/logger"
	"github.com/bz888/sentiment/internal/trigger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var app *tview.Application

var (
	debugConsole *tview.TextView
	textArea     *tview.TextArea
	resultBox    *tview.TextView
	analyzeBtn   *tview.Button
	localLogger  *logger.Logger
)

func Init() {
	app = tview.NewApplication()
	app.EnablePaste(true)
	app.EnableMouse(true)

	debugConsole = initDebugConsole()

	textArea = initTextInput()
	resultBox = initResultBox()
	analyzeBtn = tview.NewButton("Analyze")
}

func initTextInput() *tview.TextArea {
	textArea := tview.NewTextArea().
		SetPlaceholder("Type some text, then press Ctrl+Enter or click Analyze")
	textArea.SetTitle("Text to analyze").SetBorder(true)
	return textArea
}

func initResultBox() *tview.TextView {
	box := tview.NewTextView().
		SetDynamicColors(false).
		SetWordWrap(true)
	box.SetBorder(true)
	return box
}

func initDebugConsole() *tview.TextView {
	console := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	console.SetTitle("Debugger").SetBorder(true)
	console.ScrollToEnd()
	return console
}

const pendingPresses = 16

// Run builds the layout and blocks until the application exits.
func Run(ctx context.Context, serverURL string) error {
	localLogger = logger.NewLogger("views")

	view := bind(ctx, app, textArea, resultBox, analyzeBtn, api.NewClient(serverURL))

	controls := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(analyzeBtn, 13, 0, false)

	subFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(textArea, 0, 2, true).
		AddItem(controls, 1, 0, false).
		AddItem(resultBox, 0, 1, false)
	mainFlex := tview.NewFlex().
		AddItem(subFlex, 0, 2, true)

	if config.Dev {
		mainFlex.AddItem(debugConsole, 0, 1, false)
	}

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	localLogger.Info("UI started, sending requests to", serverURL)
	err := app.SetRoot(mainFlex, true).SetFocus(textArea).Run()
	view.stopSpinner()
	return err
}

// bind wires the input, button and result box to a trigger. Key and click
// handlers only capture the input text; analyses run on a worker goroutine
// because the view waits on the event loop.
func bind(ctx context.Context, app *tview.Application, input *tview.TextArea, result *tview.TextView, button *tview.Button, analyzer trigger.Analyzer) *view {
	v := newView(app, result, button)
	v.paint(trigger.Idle, "")
	trig := trigger.New(v, analyzer)

	presses := make(chan string, pendingPresses)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case text := <-presses:
				v.setInput(text)
				trig.Analyze(ctx)
			}
		}
	}()

	analyze := func() {
		select {
		case presses <- input.GetText():
		default:
			logger.NewLogger("views").Warn("Too many pending analyses, ignoring trigger")
		}
	}

	button.SetSelectedFunc(analyze)
	button.SetExitFunc(func(key tcell.Key) {
		app.SetFocus(input)
	})

	input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case isCtrlEnter(event):
			analyze()
			return nil
		case event.Key() == tcell.KeyTab:
			app.SetFocus(button)
			return nil
		}
		return event
	})
	return v
}

// isCtrlEnter reports Enter pressed with Ctrl held. Terminals that cannot
// report the modifier send Ctrl+J (line feed) for the same chord.
func isCtrlEnter(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter && event.Modifiers()&tcell.ModCtrl != 0 {
		return true
	}
	return event.Key() == tcell.KeyCtrlJ
}

func GetDebugConsole() (*tview.TextView, error) {
	if debugConsole == nil {
		return nil, errors.New("debug console not initialized")
	}
	return debugConsole, nil
}
