package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// windowMover reads and changes the position of the top-level window
type windowMover interface {
	Origin() (Point, bool)
	MoveTo(origin Point) error
}

// TitleBar replaces the native title bar: it shows the title, closes the
// window and moves it while dragged.
type TitleBar struct {
	widget.BaseWidget
	title   string
	mover   windowMover
	onClose func()
	drag    DragState

	bgRect   *canvas.Rectangle
	titleObj *canvas.Text
	closeBtn *widget.Button

	warnedOrigin bool
}

// NewTitleBar creates a title bar
func NewTitleBar(title string, mover windowMover, onClose func()) *TitleBar {
	t := &TitleBar{
		title:   title,
		mover:   mover,
		onClose: onClose,
	}
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements fyne.Widget
func (t *TitleBar) CreateRenderer() fyne.WidgetRenderer {
	t.bgRect = canvas.NewRectangle(theme.ButtonColor())
	t.titleObj = canvas.NewText(t.title, theme.ForegroundColor())
	t.titleObj.TextStyle = fyne.TextStyle{Bold: true}

	t.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if t.onClose != nil {
			t.onClose()
		}
	})
	t.closeBtn.Importance = widget.LowImportance

	row := container.NewBorder(nil, nil, container.NewPadded(t.titleObj), t.closeBtn)
	return &titleBarRenderer{
		bar:     t,
		content: container.NewStack(t.bgRect, row),
	}
}

// MouseDown records the grab offset
func (t *TitleBar) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	t.drag.Press(t.toPixels(e.Position))
}

// MouseUp ends the drag
func (t *TitleBar) MouseUp(*desktop.MouseEvent) {
	t.drag.Release()
}

// Dragged moves the window so the grab point follows the pointer
func (t *TitleBar) Dragged(e *fyne.DragEvent) {
	pointer := t.toPixels(e.Position)
	if !t.drag.Active() {
		t.drag.Press(pointer)
		return
	}
	if t.mover == nil {
		return
	}

	origin, ok := t.mover.Origin()
	if !ok {
		if !t.warnedOrigin {
			slog.Debug("window position unknown, dragging disabled")
			t.warnedOrigin = true
		}
		return
	}
	next, ok := t.drag.Motion(origin, pointer)
	if !ok {
		return
	}
	if err := t.mover.MoveTo(next); err != nil {
		slog.Debug("move window", "error", err)
	}
}

// DragEnd ends the drag
func (t *TitleBar) DragEnd() {
	t.drag.Release()
}

func (t *TitleBar) toPixels(pos fyne.Position) Point {
	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(t); c != nil {
			scale = c.Scale()
		}
	}
	return Point{X: int(pos.X * scale), Y: int(pos.Y * scale)}
}

type titleBarRenderer struct {
	bar     *TitleBar
	content *fyne.Container
}

func (r *titleBarRenderer) MinSize() fyne.Size {
	return r.content.MinSize()
}

func (r *titleBarRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *titleBarRenderer) Refresh() {
	r.bar.bgRect.FillColor = theme.ButtonColor()
	r.bar.titleObj.Text = r.bar.title
	r.bar.titleObj.Color = theme.ForegroundColor()
	r.bar.bgRect.Refresh()
	r.bar.titleObj.Refresh()
}

func (r *titleBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *titleBarRenderer) Destroy() {}
