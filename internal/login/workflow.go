package login

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ytget/login-demo/internal/auth"
	"github.com/ytget/login-demo/internal/model"
)

// Workflow sequences validation, authentication and user feedback for one
// login form. Each Submit call is independent; the only state kept between
// calls is configuration.
type Workflow struct {
	authenticator auth.Authenticator
	hooks         Hooks

	mu        sync.RWMutex
	messages  Messages
	onAttempt func(*model.LoginAttempt) // callback for UI updates
	now       func() time.Time
}

// NewWorkflow creates a workflow that checks credentials with authenticator
// and reports to the host through hooks. A nil authenticator falls back to
// the demo one.
func NewWorkflow(authenticator auth.Authenticator, hooks Hooks) *Workflow {
	if authenticator == nil {
		authenticator = auth.NewDemoAuthenticator()
	}
	return &Workflow{
		authenticator: authenticator,
		hooks:         hooks,
		messages:      DefaultMessages(),
		now:           time.Now,
	}
}

// SetMessages replaces the notification texts. Blank entries keep the defaults.
func (w *Workflow) SetMessages(messages Messages) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = messages.withDefaults()
}

// Messages returns the notification texts in use
func (w *Workflow) Messages() Messages {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.messages
}

// SetAttemptCallback sets the function called after every Submit
func (w *Workflow) SetAttemptCallback(callback func(*model.LoginAttempt)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onAttempt = callback
}

// Submit runs the login workflow for one pair of field values and returns the
// finished attempt. It stops at the first failing step and emits exactly one
// notification, blocking until the sink resolves it.
func (w *Workflow) Submit(ctx context.Context, username, password string) *model.LoginAttempt {
	messages := w.Messages()
	attempt := model.NewLoginAttempt(username, w.now())

	req := w.evaluate(attempt, username, password, messages)

	log.Printf("Login attempt %s ended in state %s", attempt.ID, attempt.State)

	attempt.Notification = w.notify(ctx, req)
	attempt.FinishedAt = w.now()

	w.mu.RLock()
	onAttempt := w.onAttempt
	w.mu.RUnlock()
	if onAttempt != nil {
		onAttempt(attempt)
	}

	return attempt
}

// SubmitCredentials is Submit for a credentials pair
func (w *Workflow) SubmitCredentials(ctx context.Context, creds model.Credentials) *model.LoginAttempt {
	return w.Submit(ctx, creds.Username, creds.Password)
}

// evaluate runs the checks in order, fires the flag, focus and success hooks,
// and leaves attempt in its terminal state. It returns the notification to show.
func (w *Workflow) evaluate(attempt *model.LoginAttempt, username, password string, messages Messages) model.NotificationRequest {
	attempt.State = model.LoginStateValidatingUsername
	if !auth.Validate(username) {
		w.setUsernameEmpty(true)
		attempt.State = model.LoginStateEmptyUsername
		return model.NotificationRequest{
			Message:     messages.UsernameEmpty,
			ActionLabel: messages.CorrectAction,
			OnAction:    w.requestUsernameFocus,
		}
	}
	w.setUsernameEmpty(false)

	attempt.State = model.LoginStateValidatingPassword
	if !auth.Validate(password) {
		w.setPasswordEmpty(true)
		attempt.State = model.LoginStateEmptyPassword
		return model.NotificationRequest{
			Message:     messages.PasswordEmpty,
			ActionLabel: messages.CorrectAction,
			OnAction:    w.requestPasswordFocus,
		}
	}
	w.setPasswordEmpty(false)

	attempt.State = model.LoginStateAuthenticating
	if auth.Authenticate(w.authenticator, username, password) != model.AuthSuccess {
		w.requestUsernameFocus()
		attempt.State = model.LoginStateAuthFailed
		return model.NotificationRequest{Message: messages.InvalidCredentials}
	}

	if w.hooks.OnLoginSuccess != nil {
		w.hooks.OnLoginSuccess()
	}
	attempt.State = model.LoginStateAuthSucceeded
	return model.NotificationRequest{Message: messages.LoginSucceeded}
}

func (w *Workflow) notify(ctx context.Context, req model.NotificationRequest) model.NotificationResult {
	if w.hooks.ShowNotification == nil {
		log.Printf("No notification sink configured, dropping message: %s", req.Message)
		return model.NotificationDismissed
	}
	return w.hooks.ShowNotification(ctx, req)
}

func (w *Workflow) setUsernameEmpty(empty bool) {
	if w.hooks.OnUsernameEmptyChanged != nil {
		w.hooks.OnUsernameEmptyChanged(empty)
	}
}

func (w *Workflow) setPasswordEmpty(empty bool) {
	if w.hooks.OnPasswordEmptyChanged != nil {
		w.hooks.OnPasswordEmptyChanged(empty)
	}
}

func (w *Workflow) requestUsernameFocus() {
	if w.hooks.RequestUsernameFocus != nil {
		w.hooks.RequestUsernameFocus()
	}
}

func (w *Workflow) requestPasswordFocus() {
	if w.hooks.RequestPasswordFocus != nil {
		w.hooks.RequestPasswordFocus()
	}
}
