package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginAttempt records the outcome of one submit call
type LoginAttempt struct {
	ID           string
	Username     string
	State        LoginState
	Notification NotificationResult
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewLoginAttempt creates an attempt in the Start state
func NewLoginAttempt(username string, now time.Time) *LoginAttempt {
	return &LoginAttempt{
		ID:        uuid.New().String(),
		Username:  username,
		State:     LoginStateStart,
		StartedAt: now,
	}
}

// Succeeded returns true if the attempt ended with valid credentials
func (a *LoginAttempt) Succeeded() bool {
	return a.State == LoginStateAuthSucceeded
}

// Duration returns how long the submit call took, including the time the
// notification stayed on screen. Zero while the attempt is unfinished.
func (a *LoginAttempt) Duration() time.Duration {
	if a.FinishedAt.IsZero() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}
