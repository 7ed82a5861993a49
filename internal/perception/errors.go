package perception

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"cognos/internal/logging"
)

var errAPIKeyMissing = errors.New("API key not configured")

// FailureKind classifies a provider failure into one of the buckets the
// surface layer knows how to phrase.
type FailureKind int

const (
	FailureUnexpected FailureKind = iota
	FailureInvalidCredential
	FailureRateLimited
	FailureSafetyBlocked
	FailureNetwork
)

// ProviderError wraps a raw provider failure with its classification and a
// stable user-facing message.
type ProviderError struct {
	Kind     FailureKind
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case FailureInvalidCredential:
		return fmt.Sprintf("Your %s API key is not valid. Please check it in the Personalization settings.", e.Provider)
	case FailureRateLimited:
		return "Too many requests have been sent in a short period. Please wait a moment and try again."
	case FailureSafetyBlocked:
		return "The request was blocked due to safety settings or other API restrictions."
	case FailureNetwork:
		return "A network error occurred. Please check your internet connection and try again."
	default:
		return fmt.Sprintf("An unexpected error occurred with %s: %v", e.Provider, e.Err)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Classify maps a raw provider error onto the failure taxonomy. The match
// is substring-based because provider SDK errors carry no stable codes.
func Classify(err error, callContext, provider string) *ProviderError {
	logging.PerceptionError("[%s] %s failed: %v", provider, callContext, err)

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	kind := FailureUnexpected
	msg := err.Error()
	lower := strings.ToLower(msg)

	var netErr net.Error
	var urlErr *url.Error
	switch {
	case strings.Contains(msg, "API key not valid"),
		strings.Contains(msg, "incorrect API key"),
		strings.Contains(msg, "API_KEY_INVALID"):
		kind = FailureInvalidCredential
	case errors.As(err, &netErr), errors.As(err, &urlErr),
		strings.Contains(lower, "network error"):
		kind = FailureNetwork
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(lower, "rate limit"):
		kind = FailureRateLimited
	case strings.Contains(lower, "blocked"):
		kind = FailureSafetyBlocked
	}

	return &ProviderError{Kind: kind, Provider: provider, Err: err}
}

// UnsupportedModelError is returned by declared provider stubs. Its message
// is shown to the user verbatim.
type UnsupportedModelError struct {
	Provider string
	ModelID  string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("Calling %s models like %s is not supported in this environment. Please use a Google model.", e.Provider, e.ModelID)
}
