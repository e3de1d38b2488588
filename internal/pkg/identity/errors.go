// internal/pkg/identity/errors.go
package identity

import "errors"

// Kind is the closed set of identity provider failure categories. Every
// error crossing the provider boundary is classified into exactly one kind
// before it reaches a user-facing surface.
type Kind string

const (
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUserNotFound       Kind = "user_not_found"
	KindRateLimited        Kind = "rate_limited"
	KindUnclassified       Kind = "unclassified"
)

// Provider error codes as reported by the identity backend.
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeUserNotFound       = "user_not_found"
	CodeTooManyAttempts    = "too_many_attempts"
	CodeUserAlreadyExists  = "user_already_exists"
	CodeWeakPassword       = "weak_password"
	CodeUnclassified       = "unclassified"
)

// ProviderError is the raw error shape surfaced by the identity provider.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// NewProviderError creates a coded provider error
func NewProviderError(code, message string) *ProviderError {
	return &ProviderError{Code: code, Message: message}
}

// Classified is a provider error mapped to its kind and display message
type Classified struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

const fallbackMessage = "An error occurred. Please try again."

// Code extracts the provider error code, or CodeUnclassified when the error
// did not originate from the identity provider. Infrastructure failures must
// never masquerade as credential failures.
func Code(err error) string {
	var pe *ProviderError
	if err == nil || !errors.As(err, &pe) {
		return CodeUnclassified
	}
	return pe.Code
}

// Classify maps an identity provider error to its user-facing classification.
// Unknown codes fall through to Unclassified, carrying the provider message
// when one exists and a generic message otherwise. A nil error classifies as
// Unclassified with the generic message; callers should not pass nil.
func Classify(err error) Classified {
	var pe *ProviderError
	if err == nil || !errors.As(err, &pe) {
		return Classified{Kind: KindUnclassified, Message: fallbackMessage}
	}

	switch pe.Code {
	case CodeInvalidCredentials:
		return Classified{
			Kind:    KindInvalidCredentials,
			Message: "Invalid email or password. Please try again.",
		}
	case CodeUserNotFound:
		return Classified{
			Kind:    KindUserNotFound,
			Message: "No account found with this email.",
		}
	case CodeTooManyAttempts:
		return Classified{
			Kind:    KindRateLimited,
			Message: "Too many login attempts. Please try again later.",
		}
	default:
		message := pe.Message
		if message == "" {
			message = fallbackMessage
		}
		return Classified{Kind: KindUnclassified, Message: message}
	}
}
