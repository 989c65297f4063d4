package ui

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/login-demo/internal/model"
)

// Snackbar shows one short notification at a time at the bottom of a window.
// A new notification pre-empts the visible one.
type Snackbar struct {
	canvas fyne.Canvas

	mu       sync.Mutex
	duration time.Duration
	current  *snack
	shown    *snack
	closed   bool

	popup     *widget.PopUp
	label     *widget.Label
	actionBtn *widget.Button
}

// snack is one displayed request. It resolves exactly once.
type snack struct {
	req  model.NotificationRequest
	done chan model.NotificationResult
	once sync.Once
}

func newSnack(req model.NotificationRequest) *snack {
	return &snack{req: req, done: make(chan model.NotificationResult, 1)}
}

func (s *snack) resolve(result model.NotificationResult) {
	s.once.Do(func() { s.done <- result })
}

// NewSnackbar creates a snackbar drawing on canvas
func NewSnackbar(canvas fyne.Canvas, duration time.Duration) *Snackbar {
	sb := &Snackbar{
		canvas:   canvas,
		duration: clampSnackbarDuration(duration),
	}

	sb.label = widget.NewLabel("")
	sb.label.Truncation = fyne.TextTruncateEllipsis
	sb.actionBtn = widget.NewButton("", sb.onActionTapped)
	sb.actionBtn.Importance = widget.HighImportance
	sb.actionBtn.Hide()

	content := container.NewBorder(nil, nil, nil, sb.actionBtn, sb.label)
	sb.popup = widget.NewPopUp(content, canvas)
	sb.popup.Hide()

	return sb
}

func clampSnackbarDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return SnackbarAutoHide
	}
	if d < SnackbarMinLength {
		return SnackbarMinLength
	}
	return d
}

// SetDuration changes how long future notifications stay visible
func (sb *Snackbar) SetDuration(d time.Duration) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.duration = clampSnackbarDuration(d)
}

// ShowNotification displays req and blocks until it times out, is pre-empted,
// ctx is done, or the user taps the action. In the last case req.OnAction is
// invoked once before returning, unless the snackbar was closed meanwhile.
func (sb *Snackbar) ShowNotification(ctx context.Context, req model.NotificationRequest) model.NotificationResult {
	current := newSnack(req)

	sb.mu.Lock()
	if sb.closed {
		sb.mu.Unlock()
		return model.NotificationDismissed
	}
	previous := sb.current
	sb.current = current
	duration := sb.duration
	sb.mu.Unlock()

	if previous != nil {
		previous.resolve(model.NotificationDismissed)
	}

	fyne.DoAndWait(func() { sb.renderIfCurrent(current) })

	timer := time.NewTimer(duration)
	defer timer.Stop()

	var result model.NotificationResult
	select {
	case result = <-current.done:
	case <-timer.C:
		current.resolve(model.NotificationDismissed)
		result = <-current.done
	case <-ctx.Done():
		current.resolve(model.NotificationDismissed)
		result = <-current.done
	}

	sb.mu.Lock()
	visible := sb.current == current
	if visible {
		sb.current = nil
		sb.shown = nil
	}
	closed := sb.closed
	sb.mu.Unlock()

	if visible {
		fyne.Do(sb.popup.Hide)
	}

	if result == model.NotificationActionPerformed && !closed && req.OnAction != nil {
		req.OnAction()
	}
	return result
}

// Visible reports whether a notification is currently on screen
func (sb *Snackbar) Visible() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.current != nil && sb.shown == sb.current
}

// Close dismisses the pending notification and turns its action into a no-op.
// Later calls to ShowNotification return immediately.
func (sb *Snackbar) Close() {
	sb.mu.Lock()
	sb.closed = true
	current := sb.current
	sb.current = nil
	sb.shown = nil
	sb.mu.Unlock()

	if current != nil {
		current.resolve(model.NotificationDismissed)
	}
	fyne.Do(sb.popup.Hide)
}

func (sb *Snackbar) onActionTapped() {
	sb.mu.Lock()
	current := sb.current
	sb.mu.Unlock()

	if current == nil {
		return
	}
	log.Printf("Snackbar action %q triggered", current.req.ActionLabel)
	current.resolve(model.NotificationActionPerformed)
}

// renderIfCurrent draws s unless it was pre-empted or the snackbar was closed
// after ShowNotification released the lock. It reports whether s is shown.
func (sb *Snackbar) renderIfCurrent(s *snack) bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.closed || sb.current != s {
		return false
	}
	sb.render(s.req)
	sb.shown = s
	return true
}

// render updates the popup content and places it at the bottom center
func (sb *Snackbar) render(req model.NotificationRequest) {
	sb.label.SetText(req.Message)
	if req.HasAction() {
		sb.actionBtn.SetText(req.ActionLabel)
		sb.actionBtn.Show()
	} else {
		sb.actionBtn.Hide()
	}

	canvasSize := sb.canvas.Size()
	width := SnackbarWidth
	if canvasSize.Width > 0 && canvasSize.Width-2*SnackbarMargin < width {
		width = canvasSize.Width - 2*SnackbarMargin
	}
	size := fyne.NewSize(width, SnackbarHeight)
	pos := fyne.NewPos((canvasSize.Width-size.Width)/2, canvasSize.Height-size.Height-SnackbarMargin)

	sb.popup.Resize(size)
	sb.popup.ShowAtPosition(pos)
}
