package auth

import (
	"testing"

	"github.com/ytget/login-demo/internal/model"
)

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		username string
		password string
		expected bool
	}{
		{"prova", "prova", true},
		{"Prova", "prova", false},
		{"prova", "Prova", false},
		{"PROVA", "PROVA", false},
		{"prova ", "prova", false},
		{"prova", "prova ", false},
		{" prova", "prova", false},
		{"prova", "wrong", false},
		{"", "", false},
		{"admin", "prova", false},
	}

	for _, test := range tests {
		result := CheckCredentials(test.username, test.password)
		if result != test.expected {
			t.Errorf("CheckCredentials(%q, %q) = %v, expected %v", test.username, test.password, result, test.expected)
		}
	}
}

func TestFixedAuthenticator(t *testing.T) {
	a := &FixedAuthenticator{Username: "alice", Password: "s3cret"}

	if !a.CheckCredentials("alice", "s3cret") {
		t.Error("Expected configured pair to be accepted")
	}
	if a.CheckCredentials("prova", "prova") {
		t.Error("Expected demo pair to be rejected by a custom authenticator")
	}
}

func TestAuthenticate(t *testing.T) {
	a := NewDemoAuthenticator()

	if outcome := Authenticate(a, "prova", "prova"); outcome != model.AuthSuccess {
		t.Errorf("Authenticate(prova, prova) = %s, expected %s", outcome, model.AuthSuccess)
	}
	if outcome := Authenticate(a, "prova", "wrong"); outcome != model.AuthInvalidCredentials {
		t.Errorf("Authenticate(prova, wrong) = %s, expected %s", outcome, model.AuthInvalidCredentials)
	}
}
