package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// formEntry is an entry that selects its whole text when it gains focus and
// draws an error outline while its field is flagged empty. The outline does
// not depend on whether the user has touched the entry yet.
type formEntry struct {
	widget.Entry

	showError bool
}

func newFormEntry(password bool) *formEntry {
	e := &formEntry{}
	e.Password = password
	e.ExtendBaseWidget(e)
	return e
}

// FocusGained selects all text so that retyping replaces it
func (e *formEntry) FocusGained() {
	e.Entry.FocusGained()
	e.TypedShortcut(&fyne.ShortcutSelectAll{})
}

// SetError turns the error outline on or off. Must run on the fyne goroutine.
func (e *formEntry) SetError(show bool) {
	e.showError = show
	e.Refresh()
}

// CreateRenderer wraps the entry renderer with the error outline
func (e *formEntry) CreateRenderer() fyne.WidgetRenderer {
	outline := canvas.NewRectangle(color.Transparent)
	outline.Hide()
	r := &formEntryRenderer{
		WidgetRenderer: e.Entry.CreateRenderer(),
		entry:          e,
		outline:        outline,
	}
	r.updateOutline()
	return r
}

type formEntryRenderer struct {
	fyne.WidgetRenderer

	entry   *formEntry
	outline *canvas.Rectangle
}

func (r *formEntryRenderer) Layout(size fyne.Size) {
	r.WidgetRenderer.Layout(size)
	r.outline.Move(fyne.NewPos(0, 0))
	r.outline.Resize(size)
}

// Objects returns the entry objects with the outline on top. The entry
// renderer may grow its list later, so it is copied on every call.
func (r *formEntryRenderer) Objects() []fyne.CanvasObject {
	inner := r.WidgetRenderer.Objects()
	objects := make([]fyne.CanvasObject, 0, len(inner)+1)
	objects = append(objects, inner...)
	return append(objects, r.outline)
}

func (r *formEntryRenderer) Refresh() {
	r.WidgetRenderer.Refresh()
	r.updateOutline()
}

func (r *formEntryRenderer) updateOutline() {
	if !r.entry.showError || r.entry.Disabled() {
		r.outline.Hide()
		return
	}

	th := r.entry.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	r.outline.StrokeColor = th.Color(theme.ColorNameError, v)
	r.outline.StrokeWidth = th.Size(theme.SizeNameInputBorder)
	r.outline.CornerRadius = th.Size(theme.SizeNameInputRadius)
	r.outline.Show()
	r.outline.Refresh()
}
