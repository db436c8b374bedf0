// File: internal/identity/errors_test.go
package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapProviderError(t *testing.T) {
	tests := []struct {
		code     string
		wantCode string
	}{
		{"EMAIL_EXISTS", "CONFLICT"},
		{"INVALID_EMAIL", "INVALID_INPUT"},
		{"WEAK_PASSWORD", "INVALID_INPUT"},
		{"EMAIL_NOT_FOUND", "UNAUTHORIZED"},
		{"INVALID_PASSWORD", "UNAUTHORIZED"},
		{"INVALID_LOGIN_CREDENTIALS", "UNAUTHORIZED"},
		{"USER_DISABLED", "FORBIDDEN"},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", "PROVIDER_DENIED"},
		{"SOMETHING_NEW", "PROVIDER_DENIED"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := MapProviderError(tt.code)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestMapProviderError_TrailingQualifier(t *testing.T) {
	// Some codes arrive with explanatory text after the code itself.
	got := MapProviderError("WEAK_PASSWORD : Password should be at least 6 characters")
	assert.Equal(t, "INVALID_INPUT", got.Code)
}
