package ui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/login-demo/internal/model"
)

func newTestSnackbar(t *testing.T, duration time.Duration) *Snackbar {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	w.Resize(fyne.NewSize(700, 400))
	return NewSnackbar(w.Canvas(), duration)
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func showAsync(ctx context.Context, sb *Snackbar, req model.NotificationRequest) <-chan model.NotificationResult {
	done := make(chan model.NotificationResult, 1)
	go func() { done <- sb.ShowNotification(ctx, req) }()
	return done
}

func TestSnackbar_TimesOut(t *testing.T) {
	sb := newTestSnackbar(t, SnackbarMinLength)

	start := time.Now()
	result := sb.ShowNotification(context.Background(), model.NotificationRequest{Message: "Login succeeded!"})

	if result != model.NotificationDismissed {
		t.Errorf("ShowNotification() = %s, expected %s", result, model.NotificationDismissed)
	}
	if elapsed := time.Since(start); elapsed < SnackbarMinLength {
		t.Errorf("Notification resolved after %v, expected at least %v", elapsed, SnackbarMinLength)
	}
	if sb.Visible() {
		t.Error("Snackbar should be hidden after timeout")
	}
}

func TestSnackbar_ActionFiresOnce(t *testing.T) {
	sb := newTestSnackbar(t, 5*time.Second)

	var calls int32
	req := model.NotificationRequest{
		Message:     "Username is empty!",
		ActionLabel: "Correct",
		OnAction:    func() { atomic.AddInt32(&calls, 1) },
	}
	done := showAsync(context.Background(), sb, req)
	waitFor(t, sb.Visible)

	if sb.actionBtn.Hidden {
		t.Error("Action button should be visible for a request with an action")
	}
	if sb.actionBtn.Text != "Correct" {
		t.Errorf("Action button text = %q, expected Correct", sb.actionBtn.Text)
	}

	test.Tap(sb.actionBtn)
	result := <-done

	if result != model.NotificationActionPerformed {
		t.Errorf("ShowNotification() = %s, expected %s", result, model.NotificationActionPerformed)
	}

	// A late tap has nothing to resolve
	sb.onActionTapped()
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("OnAction called %d times, expected 1", got)
	}
}

func TestSnackbar_NoActionHidesButton(t *testing.T) {
	sb := newTestSnackbar(t, 5*time.Second)

	done := showAsync(context.Background(), sb, model.NotificationRequest{Message: "Username or password is incorrect!"})
	waitFor(t, sb.Visible)

	if !sb.actionBtn.Hidden {
		t.Error("Action button should be hidden for a request without an action")
	}
	if sb.label.Text != "Username or password is incorrect!" {
		t.Errorf("Label text = %q", sb.label.Text)
	}

	sb.Close()
	<-done
}

func TestSnackbar_PreemptsPrevious(t *testing.T) {
	sb := newTestSnackbar(t, 5*time.Second)

	var calls int32
	first := showAsync(context.Background(), sb, model.NotificationRequest{
		Message:     "Username is empty!",
		ActionLabel: "Correct",
		OnAction:    func() { atomic.AddInt32(&calls, 1) },
	})
	waitFor(t, sb.Visible)

	second := showAsync(context.Background(), sb, model.NotificationRequest{Message: "Login succeeded!"})

	select {
	case result := <-first:
		if result != model.NotificationDismissed {
			t.Errorf("Pre-empted notification = %s, expected %s", result, model.NotificationDismissed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("First notification was not pre-empted")
	}

	waitFor(t, func() bool { return sb.label.Text == "Login succeeded!" })
	sb.Close()
	<-second

	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("Pre-empted action called %d times, expected 0", got)
	}
}

func TestSnackbar_ContextCancel(t *testing.T) {
	sb := newTestSnackbar(t, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := showAsync(ctx, sb, model.NotificationRequest{Message: "Password is empty!"})
	waitFor(t, sb.Visible)
	cancel()

	if result := <-done; result != model.NotificationDismissed {
		t.Errorf("Cancelled notification = %s, expected %s", result, model.NotificationDismissed)
	}
}

func TestSnackbar_CloseMakesActionNoop(t *testing.T) {
	sb := newTestSnackbar(t, 5*time.Second)

	var calls int32
	done := showAsync(context.Background(), sb, model.NotificationRequest{
		Message:     "Password is empty!",
		ActionLabel: "Correct",
		OnAction:    func() { atomic.AddInt32(&calls, 1) },
	})
	waitFor(t, sb.Visible)

	sb.Close()
	sb.onActionTapped()

	if result := <-done; result != model.NotificationDismissed {
		t.Errorf("Closed notification = %s, expected %s", result, model.NotificationDismissed)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("OnAction called %d times after Close, expected 0", got)
	}

	// Closed snackbar returns immediately
	if result := sb.ShowNotification(context.Background(), model.NotificationRequest{Message: "x"}); result != model.NotificationDismissed {
		t.Errorf("ShowNotification() after Close = %s, expected %s", result, model.NotificationDismissed)
	}
}

func TestClampSnackbarDuration(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected time.Duration
	}{
		{0, SnackbarAutoHide},
		{-time.Second, SnackbarAutoHide},
		{time.Millisecond, SnackbarMinLength},
		{2 * time.Second, 2 * time.Second},
	}

	for _, test := range tests {
		if got := clampSnackbarDuration(test.in); got != test.expected {
			t.Errorf("clampSnackbarDuration(%v) = %v, expected %v", test.in, got, test.expected)
		}
	}
}

func TestSnackbar_RenderSkippedWhenNotCurrent(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(sb *Snackbar, s *snack)
	}{
		{
			name: "closed before render",
			prepare: func(sb *Snackbar, s *snack) {
				sb.mu.Lock()
				sb.current = s
				sb.mu.Unlock()
				sb.Close()
			},
		},
		{
			name: "pre-empted before render",
			prepare: func(sb *Snackbar, s *snack) {
				sb.mu.Lock()
				sb.current = newSnack(model.NotificationRequest{Message: "Login succeeded!"})
				sb.mu.Unlock()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := newTestSnackbar(t, 5*time.Second)
			s := newSnack(model.NotificationRequest{Message: "Password is empty!"})
			tt.prepare(sb, s)

			if sb.renderIfCurrent(s) {
				t.Error("renderIfCurrent() = true, expected false")
			}
			if sb.popup.Visible() {
				t.Error("Popup should stay hidden")
			}
			if sb.label.Text == "Password is empty!" {
				t.Error("Stale notification should not be drawn")
			}
		})
	}
}
