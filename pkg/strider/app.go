package strider

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const tickInterval = 500 * time.Millisecond

// appUI wires the Navigator to a tview application: an error banner on
// top of the three listing columns. All mutation of the Navigator happens
// on the tview event loop goroutine.
type appUI struct {
	app  *tview.Application
	nav  *Navigator
	root *tview.Flex

	errorView *tview.TextView
	parent    *listingPanel
	current   *listingPanel
	previewer *previewerPanel
}

// SetupApp builds the panes, installs the key handler and renders the
// initial state. It returns the UI so tests can inspect the primitives.
func SetupApp(app *tview.Application, nav *Navigator) *appUI {
	ui := &appUI{
		app:       app,
		nav:       nav,
		errorView: tview.NewTextView(),
		parent:    newListingPanel(false),
		current:   newListingPanel(true),
		previewer: newPreviewerPanel(),
	}
	ui.errorView.SetTextColor(Style.ErrorTextColor)

	columns := tview.NewFlex()
	columns.AddItem(ui.parent, 0, 1, false)
	columns.AddItem(ui.current, 0, 1, false)
	columns.AddItem(ui.previewer, 0, 2, false)

	ui.root = tview.NewFlex()
	ui.root.SetDirection(tview.FlexRow)
	ui.root.AddItem(ui.errorView, 0, 0, false)
	ui.root.AddItem(columns, 0, 1, false)

	app.SetInputCapture(ui.inputCapture)
	app.SetRoot(ui.root, true)
	ui.render(nav.Snapshot())
	return ui
}

// Run starts the background ticker and runs the tview event loop until
// the user quits.
func Run(app *tview.Application, nav *Navigator) error {
	ui := SetupApp(app, nav)

	ticker := time.NewTicker(tickInterval)
	done := make(chan struct{})
	defer close(done)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				app.QueueUpdateDraw(func() {
					nav.Handle(context.Background(), TickEvent())
					ui.render(nav.Snapshot())
				})
			}
		}
	}()

	return app.Run()
}

func (ui *appUI) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	key := keyForEvent(event)
	if key == KeyNone {
		return event
	}
	ui.nav.Handle(context.Background(), KeyEvent(key))
	if ui.nav.Done() {
		ui.app.Stop()
		return nil
	}
	ui.render(ui.nav.Snapshot())
	return nil
}

func keyForEvent(event *tcell.EventKey) Key {
	switch event.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyAscend
	case tcell.KeyRight, tcell.KeyEnter:
		return KeyDescend
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			return KeyUp
		case 'j':
			return KeyDown
		case 'h':
			return KeyAscend
		case 'l':
			return KeyDescend
		case 'q':
			return KeyQuit
		}
	}
	return KeyNone
}

func (ui *appUI) render(s Snapshot) {
	if s.LastError == "" {
		ui.errorView.SetText("")
		ui.root.ResizeItem(ui.errorView, 0, 0)
	} else {
		ui.errorView.SetText(s.LastError)
		ui.root.ResizeItem(ui.errorView, 1, 0)
	}

	if s.HasParent {
		ui.parent.setEntries(s.ParentDir, s.ParentEntries, -1)
	} else {
		ui.parent.Clear()
		ui.parent.SetTitle(" " + s.RootTitle + " ")
	}
	ui.current.setEntries(s.CurrentDir, s.CurrentEntries, s.SelectedIndex)
	ui.previewer.show(s.PreviewTitle, s.Preview)
}
