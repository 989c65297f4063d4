package auth

import "github.com/ytget/login-demo/internal/model"

// Demo credentials accepted by the login form
const (
	DemoUsername = "prova"
	DemoPassword = "prova"
)

// Authenticator checks a username/password pair.
type Authenticator interface {
	CheckCredentials(username, password string) bool
}

// FixedAuthenticator accepts exactly one username/password pair.
// Comparison is case-sensitive and values are not trimmed.
type FixedAuthenticator struct {
	Username string
	Password string
}

// NewDemoAuthenticator returns the authenticator used by the demo form
func NewDemoAuthenticator() *FixedAuthenticator {
	return &FixedAuthenticator{Username: DemoUsername, Password: DemoPassword}
}

// CheckCredentials implements Authenticator
func (a *FixedAuthenticator) CheckCredentials(username, password string) bool {
	return username == a.Username && password == a.Password
}

// CheckCredentials checks the pair against the demo credentials
func CheckCredentials(username, password string) bool {
	return NewDemoAuthenticator().CheckCredentials(username, password)
}

// Authenticate maps the authenticator answer to an AuthOutcome
func Authenticate(a Authenticator, username, password string) model.AuthOutcome {
	if a.CheckCredentials(username, password) {
		return model.AuthSuccess
	}
	return model.AuthInvalidCredentials
}
