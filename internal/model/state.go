package model

// LoginState is a step of a single submit call
type LoginState string

const (
	// LoginStateStart is the state before any check ran
	LoginStateStart LoginState = "Start"

	// LoginStateValidatingUsername means the username is being validated
	LoginStateValidatingUsername LoginState = "ValidatingUsername"

	// LoginStateEmptyUsername means the username was blank
	LoginStateEmptyUsername LoginState = "EmptyUsername"

	// LoginStateValidatingPassword means the password is being validated
	LoginStateValidatingPassword LoginState = "ValidatingPassword"

	// LoginStateEmptyPassword means the password was blank
	LoginStateEmptyPassword LoginState = "EmptyPassword"

	// LoginStateAuthenticating means the credentials are being checked
	LoginStateAuthenticating LoginState = "Authenticating"

	// LoginStateAuthFailed means the credentials did not match
	LoginStateAuthFailed LoginState = "AuthFailed"

	// LoginStateAuthSucceeded means the credentials matched
	LoginStateAuthSucceeded LoginState = "AuthSucceeded"
)

// String returns the string representation of LoginState
func (ls LoginState) String() string {
	return string(ls)
}

// IsTerminal returns true if the submit call ends in this state
func (ls LoginState) IsTerminal() bool {
	switch ls {
	case LoginStateEmptyUsername, LoginStateEmptyPassword, LoginStateAuthFailed, LoginStateAuthSucceeded:
		return true
	}
	return false
}

// IsFailure returns true for the user-correctable terminal states
func (ls LoginState) IsFailure() bool {
	return ls == LoginStateEmptyUsername || ls == LoginStateEmptyPassword || ls == LoginStateAuthFailed
}
