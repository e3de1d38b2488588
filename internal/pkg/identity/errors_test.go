// internal/pkg/identity/errors_test.go
package identity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownCodes(t *testing.T) {
	tests := []struct {
		code        string
		wantKind    Kind
		wantMessage string
	}{
		{CodeInvalidCredentials, KindInvalidCredentials, "Invalid email or password. Please try again."},
		{CodeUserNotFound, KindUserNotFound, "No account found with this email."},
		{CodeTooManyAttempts, KindRateLimited, "Too many login attempts. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Classify(NewProviderError(tt.code, "provider detail"))
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestClassifyUnknownCodeFallsBackToProviderMessage(t *testing.T) {
	got := Classify(NewProviderError("session_expired", "Session has expired"))
	assert.Equal(t, KindUnclassified, got.Kind)
	assert.Equal(t, "Session has expired", got.Message)
}

func TestClassifyUnknownCodeWithoutMessageUsesGenericText(t *testing.T) {
	got := Classify(NewProviderError("totally_new_code", ""))
	assert.Equal(t, KindUnclassified, got.Kind)
	assert.Equal(t, "An error occurred. Please try again.", got.Message)
}

func TestClassifyWrappedProviderError(t *testing.T) {
	wrapped := fmt.Errorf("sign-in failed: %w", NewProviderError(CodeUserNotFound, ""))
	got := Classify(wrapped)
	assert.Equal(t, KindUserNotFound, got.Kind)
}

func TestClassifyForeignErrorIsUnclassified(t *testing.T) {
	got := Classify(fmt.Errorf("connection refused"))
	assert.Equal(t, KindUnclassified, got.Kind)
	assert.Equal(t, "An error occurred. Please try again.", got.Message)
}

func TestCodeExtractsProviderCode(t *testing.T) {
	assert.Equal(t, CodeUserAlreadyExists, Code(NewProviderError(CodeUserAlreadyExists, "")))

	wrapped := fmt.Errorf("registration failed: %w", NewProviderError(CodeWeakPassword, ""))
	assert.Equal(t, CodeWeakPassword, Code(wrapped))
}

func TestCodeForeignErrorIsNotInvalidCredentials(t *testing.T) {
	// A database outage during sign-up must not surface as a credential
	// failure with mismatched wording.
	got := Code(fmt.Errorf("pq: connection refused"))
	assert.Equal(t, CodeUnclassified, got)
	assert.NotEqual(t, CodeInvalidCredentials, got)

	assert.Equal(t, CodeUnclassified, Code(nil))
}
