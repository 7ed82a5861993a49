package perception

import (
	"context"
	"strings"
	"testing"

	"cognos/internal/types"
)

func TestStubAdaptersDeclineDeterministically(t *testing.T) {
	tests := []struct {
		adapter ProviderAdapter
		kind    types.ProviderKind
		want    string
	}{
		{NewOpenAIAdapter("gpt-4o"), types.ProviderOpenAI, "Calling OpenAI models like gpt-4o"},
		{NewAnthropicAdapter("claude-sonnet-4-5"), types.ProviderAnthropic, "Calling Anthropic models like claude-sonnet-4-5"},
	}

	for _, tt := range tests {
		if tt.adapter.Kind() != tt.kind {
			t.Errorf("unexpected kind: %s", tt.adapter.Kind())
		}
		if tt.adapter.SupportsTools() || tt.adapter.SupportsGrounding() || tt.adapter.SupportsJSONMode() {
			t.Error("stubs declare no capabilities")
		}
		_, err := tt.adapter.Send(context.Background(), Request{})
		if err == nil {
			t.Fatal("stub Send must return an error")
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("got %q, want substring %q", err.Error(), tt.want)
		}
		if !strings.Contains(err.Error(), "Please use a Google model.") {
			t.Errorf("message must point at the supported provider: %q", err.Error())
		}
	}
}

func TestFactorySelectsAdapter(t *testing.T) {
	a, err := NewAdapter(types.ProviderIdentity{Kind: types.ProviderGoogle, ModelID: "gemini-2.5-pro"}, "k")
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	gem, ok := a.(*GeminiAdapter)
	if !ok {
		t.Fatalf("expected GeminiAdapter, got %T", a)
	}
	if gem.GetModel() != "gemini-2.5-pro" {
		t.Errorf("model override not applied: %s", gem.GetModel())
	}

	if _, err := NewAdapter(types.ProviderIdentity{Kind: types.ProviderOpenAI}, ""); err != nil {
		t.Errorf("openai stub must construct: %v", err)
	}
	if _, err := NewAdapter(types.ProviderIdentity{Kind: "mystery"}, ""); err == nil {
		t.Error("unknown provider kinds must fail construction")
	}
}
