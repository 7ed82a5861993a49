package perception

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestClassifyCredential(t *testing.T) {
	err := errors.New("API request failed with status 400: API key not valid. Please pass a valid API key.")
	pe := Classify(err, "generateContent", "Google")
	if pe.Kind != FailureInvalidCredential {
		t.Errorf("expected FailureInvalidCredential, got %v", pe.Kind)
	}
	if !strings.Contains(pe.Error(), "Google API key is not valid") {
		t.Errorf("unexpected message: %s", pe.Error())
	}
}

func TestClassifyRateLimited(t *testing.T) {
	for _, msg := range []string{
		"rate limit exceeded (429)",
		"API error: RESOURCE_EXHAUSTED",
	} {
		pe := Classify(errors.New(msg), "generateContent", "Google")
		if pe.Kind != FailureRateLimited {
			t.Errorf("%q: expected FailureRateLimited, got %v", msg, pe.Kind)
		}
	}
}

func TestClassifySafetyBlocked(t *testing.T) {
	pe := Classify(errors.New("The prompt was blocked by safety filters"), "generateContent", "Google")
	if pe.Kind != FailureSafetyBlocked {
		t.Errorf("expected FailureSafetyBlocked, got %v", pe.Kind)
	}
}

func TestClassifyNetwork(t *testing.T) {
	wrapped := &url.Error{Op: "Post", URL: "https://example.com", Err: errors.New("connection refused")}
	pe := Classify(wrapped, "generateContent", "Google")
	if pe.Kind != FailureNetwork {
		t.Errorf("expected FailureNetwork, got %v", pe.Kind)
	}
	if pe.Error() != "A network error occurred. Please check your internet connection and try again." {
		t.Errorf("unexpected message: %s", pe.Error())
	}
}

func TestClassifyUnexpected(t *testing.T) {
	pe := Classify(errors.New("something odd happened"), "generateContent", "Google")
	if pe.Kind != FailureUnexpected {
		t.Errorf("expected FailureUnexpected, got %v", pe.Kind)
	}
	if !strings.Contains(pe.Error(), "something odd happened") {
		t.Errorf("unexpected message should carry provider text: %s", pe.Error())
	}
}

func TestClassifyPreservesProviderError(t *testing.T) {
	orig := &ProviderError{Kind: FailureInvalidCredential, Provider: "Google", Err: errAPIKeyMissing}
	pe := Classify(orig, "Image Generation", "Google")
	if pe != orig {
		t.Error("already-classified errors must pass through unchanged")
	}
}

func TestUnsupportedModelError(t *testing.T) {
	err := &UnsupportedModelError{Provider: "OpenAI", ModelID: "gpt-4o"}
	want := "Calling OpenAI models like gpt-4o is not supported in this environment. Please use a Google model."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
