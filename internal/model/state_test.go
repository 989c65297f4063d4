package model

import "testing"

func TestLoginState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    LoginState
		expected bool
	}{
		{LoginStateStart, false},
		{LoginStateValidatingUsername, false},
		{LoginStateEmptyUsername, true},
		{LoginStateValidatingPassword, false},
		{LoginStateEmptyPassword, true},
		{LoginStateAuthenticating, false},
		{LoginStateAuthFailed, true},
		{LoginStateAuthSucceeded, true},
	}

	for _, test := range tests {
		result := test.state.IsTerminal()
		if result != test.expected {
			t.Errorf("LoginState(%s).IsTerminal() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLoginState_IsFailure(t *testing.T) {
	tests := []struct {
		state    LoginState
		expected bool
	}{
		{LoginStateStart, false},
		{LoginStateEmptyUsername, true},
		{LoginStateEmptyPassword, true},
		{LoginStateAuthenticating, false},
		{LoginStateAuthFailed, true},
		{LoginStateAuthSucceeded, false},
	}

	for _, test := range tests {
		result := test.state.IsFailure()
		if result != test.expected {
			t.Errorf("LoginState(%s).IsFailure() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestField_String(t *testing.T) {
	if FieldUsername.String() != "username" {
		t.Errorf("FieldUsername.String() = %s, expected username", FieldUsername.String())
	}
	if FieldPassword.String() != "password" {
		t.Errorf("FieldPassword.String() = %s, expected password", FieldPassword.String())
	}
	if Field(42).String() != "unknown" {
		t.Errorf("Field(42).String() = %s, expected unknown", Field(42).String())
	}
}
