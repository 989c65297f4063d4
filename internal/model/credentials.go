package model

// Credentials is the username/password pair read from the form on submit.
// It is never stored.
type Credentials struct {
	Username string
	Password string
}

// Field identifies an input field of the login form
type Field int

const (
	FieldUsername Field = iota
	FieldPassword
)

// String returns the field name
func (f Field) String() string {
	switch f {
	case FieldUsername:
		return "username"
	case FieldPassword:
		return "password"
	default:
		return "unknown"
	}
}

// ValidationOutcome is the result of validating a single field value
type ValidationOutcome string

const (
	ValidationValid ValidationOutcome = "Valid"
	ValidationEmpty ValidationOutcome = "Empty"
)

// String returns the string representation of ValidationOutcome
func (vo ValidationOutcome) String() string {
	return string(vo)
}

// AuthOutcome is the result of checking a credentials pair
type AuthOutcome string

const (
	AuthSuccess            AuthOutcome = "Success"
	AuthInvalidCredentials AuthOutcome = "InvalidCredentials"
)

// String returns the string representation of AuthOutcome
func (ao AuthOutcome) String() string {
	return string(ao)
}
