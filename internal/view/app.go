// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagekit

package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/pagekit/pagekit/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashErr represents an error message.
	FlashErr
)

// Flash handles flash messages in the application.
type Flash struct {
	*tview.TextView
	app    *App
	cancel context.CancelFunc
	mx     sync.RWMutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)
	return f
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...interface{}) {
	f.setMessage(FlashInfo, fmt.Sprintf(format, args...))
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		f.setMessage(FlashErr, err.Error())
	}
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	f.TextView.Clear()
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.Clear()
	if msg == "" {
		return
	}

	f.SetTextColor(flashColor(level))
	fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), tview.Escape(msg))

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(FlashDelay):
		if f.app == nil {
			return
		}
		f.app.QueueUpdateDraw(func() {
			f.TextView.Clear()
		})
	}
}

func flashColor(level FlashLevel) tcell.Color {
	if level == FlashErr {
		return tcell.ColorRed
	}
	return tcell.ColorGreen
}

func flashPrefix(level FlashLevel) string {
	if level == FlashErr {
		return "[ERROR]"
	}
	return "[INFO]"
}

// App hosts a page table view.
type App struct {
	*tview.Application
	table *ui.SelectTable
	menu  *ui.Menu
	flash *Flash
	model model.TableModel
}

// NewApp creates a new application instance around a table model.
func NewApp(m model.TableModel, highlight, baseline string) *App {
	app := &App{
		Application: tview.NewApplication(),
		table:       ui.NewSelectTable(highlight, baseline),
		menu:        ui.NewMenu(),
		model:       m,
	}
	app.flash = NewFlash(app)
	app.Application.SetInputCapture(app.keyboard)

	return app
}

// Init builds the application layout.
func (a *App) Init(enableMouse bool) {
	a.table.Init()
	a.table.Actions().Add(ui.KeyQ, ui.NewKeyAction("Quit", a.quitCmd, true))
	a.table.SetModel(a.model)
	a.model.AddListener(a)
	a.menu.HydrateMenu(a.table.Hints())

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.menu, 4, 0, false).
		AddItem(a.table, 0, 1, true).
		AddItem(a.flash, 1, 0, false)

	a.SetRoot(layout, true)
	a.EnableMouse(enableMouse)
	a.SetFocus(a.table)
}

// Run starts the application and blocks until the user quits.
func (a *App) Run() error {
	defer a.model.RemoveListener(a)
	return a.Application.Run()
}

// Stop stops the application.
func (a *App) Stop() {
	a.Application.Stop()
}

// TableDataChanged implements model.TableListener.
func (a *App) TableDataChanged(data *model1.TableData, sel model.Selection, st model.SortState) {
	if col, dir, ok := st.Column(); ok {
		name := fmt.Sprintf("%d", col+1)
		if h := data.Header(); col < len(h) {
			name = h[col].Name
		}
		a.flash.Infof("%d marked, sorted by %s %s", sel.Len(), name, dir)
	}
}

// TableSortFailed implements model.TableListener.
func (a *App) TableSortFailed(err error) {
	a.flash.Err(err)
}

func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() == tcell.KeyEsc || evt.Key() == tcell.KeyCtrlC {
		a.Stop()
		return nil
	}
	return evt
}

func (a *App) quitCmd(*tcell.EventKey) *tcell.EventKey {
	a.Stop()
	return nil
}
