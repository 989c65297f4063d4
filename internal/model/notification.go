package model

import "strings"

// NotificationRequest describes one transient message shown to the user,
// optionally with a single follow-up action.
type NotificationRequest struct {
	Message     string
	ActionLabel string // empty when there is no action
	OnAction    func() // invoked at most once, only if the user triggers the action
}

// HasAction reports whether the request carries a usable action
func (nr NotificationRequest) HasAction() bool {
	return strings.TrimSpace(nr.ActionLabel) != "" && nr.OnAction != nil
}

// NotificationResult tells how a displayed notification was resolved
type NotificationResult string

const (
	// NotificationDismissed means the notification timed out, was pre-empted or cancelled
	NotificationDismissed NotificationResult = "Dismissed"

	// NotificationActionPerformed means the user triggered the action
	NotificationActionPerformed NotificationResult = "ActionPerformed"
)

// String returns the string representation of NotificationResult
func (r NotificationResult) String() string {
	return string(r)
}
