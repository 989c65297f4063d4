package auth

import (
	"strings"

	"github.com/ytget/login-demo/internal/model"
)

// Validate returns false if the trimmed value is empty
func Validate(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidateField returns the validation outcome for a field value
func ValidateField(value string) model.ValidationOutcome {
	if !Validate(value) {
		return model.ValidationEmpty
	}
	return model.ValidationValid
}
