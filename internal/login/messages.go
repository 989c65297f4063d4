package login

// Messages holds the user-facing texts produced by the workflow
type Messages struct {
	UsernameEmpty      string
	PasswordEmpty      string
	InvalidCredentials string
	LoginSucceeded     string
	CorrectAction      string
}

// DefaultMessages returns the English texts
func DefaultMessages() Messages {
	return Messages{
		UsernameEmpty:      "Username is empty!",
		PasswordEmpty:      "Password is empty!",
		InvalidCredentials: "Username or password is incorrect!",
		LoginSucceeded:     "Login succeeded!",
		CorrectAction:      "Correct",
	}
}

// withDefaults fills blank entries from DefaultMessages
func (m Messages) withDefaults() Messages {
	def := DefaultMessages()
	if m.UsernameEmpty == "" {
		m.UsernameEmpty = def.UsernameEmpty
	}
	if m.PasswordEmpty == "" {
		m.PasswordEmpty = def.PasswordEmpty
	}
	if m.InvalidCredentials == "" {
		m.InvalidCredentials = def.InvalidCredentials
	}
	if m.LoginSucceeded == "" {
		m.LoginSucceeded = def.LoginSucceeded
	}
	if m.CorrectAction == "" {
		m.CorrectAction = def.CorrectAction
	}
	return m
}
