package login

import (
	"context"

	"github.com/ytget/login-demo/internal/model"
)

// NotificationSink displays transient notifications.
type NotificationSink interface {
	// ShowNotification displays the request and blocks until it is resolved.
	// If the user triggers the action, the sink invokes req.OnAction exactly once.
	ShowNotification(ctx context.Context, req model.NotificationRequest) model.NotificationResult
}

// FocusController moves keyboard focus between form fields.
type FocusController interface {
	RequestFocus(field model.Field)
	ClearFocus()
}

// FieldStateSink receives the empty-field error flag of each field.
type FieldStateSink interface {
	SetFieldEmpty(field model.Field, empty bool)
}

// Hooks is the callback surface the workflow requires from its host.
// Nil hooks are skipped.
type Hooks struct {
	OnUsernameEmptyChanged func(empty bool)
	RequestUsernameFocus   func()
	OnPasswordEmptyChanged func(empty bool)
	RequestPasswordFocus   func()
	OnLoginSuccess         func()
	ShowNotification       func(ctx context.Context, req model.NotificationRequest) model.NotificationResult
}

// NewHooks builds Hooks from the host collaborators. onSuccess runs after the
// focus has been cleared and is expected to reset the field values.
func NewHooks(fields FieldStateSink, focus FocusController, sink NotificationSink, onSuccess func()) Hooks {
	return Hooks{
		OnUsernameEmptyChanged: func(empty bool) { fields.SetFieldEmpty(model.FieldUsername, empty) },
		RequestUsernameFocus:   func() { focus.RequestFocus(model.FieldUsername) },
		OnPasswordEmptyChanged: func(empty bool) { fields.SetFieldEmpty(model.FieldPassword, empty) },
		RequestPasswordFocus:   func() { focus.RequestFocus(model.FieldPassword) },
		OnLoginSuccess: func() {
			focus.ClearFocus()
			if onSuccess != nil {
				onSuccess()
			}
		},
		ShowNotification: sink.ShowNotification,
	}
}
