package perception

import (
	"context"

	"cognos/internal/logging"
	"cognos/internal/types"
)

// OpenAIAdapter is a declared stub. The adapter exists so model selection,
// credential checks, and instruction composition work end to end, but
// every call reports that the provider is unavailable here.
type OpenAIAdapter struct {
	modelID string
}

// NewOpenAIAdapter creates the OpenAI stub for the given model id.
func NewOpenAIAdapter(modelID string) *OpenAIAdapter {
	return &OpenAIAdapter{modelID: modelID}
}

func (a *OpenAIAdapter) Kind() types.ProviderKind { return types.ProviderOpenAI }
func (a *OpenAIAdapter) SupportsTools() bool      { return false }
func (a *OpenAIAdapter) SupportsGrounding() bool  { return false }
func (a *OpenAIAdapter) SupportsJSONMode() bool   { return false }

func (a *OpenAIAdapter) Send(ctx context.Context, req Request) (*Reply, error) {
	logging.PerceptionWarn("OpenAI call is a placeholder and not implemented")
	return nil, &UnsupportedModelError{Provider: "OpenAI", ModelID: a.modelID}
}

// AnthropicAdapter is a declared stub, same contract as OpenAIAdapter.
type AnthropicAdapter struct {
	modelID string
}

// NewAnthropicAdapter creates the Anthropic stub for the given model id.
func NewAnthropicAdapter(modelID string) *AnthropicAdapter {
	return &AnthropicAdapter{modelID: modelID}
}

func (a *AnthropicAdapter) Kind() types.ProviderKind { return types.ProviderAnthropic }
func (a *AnthropicAdapter) SupportsTools() bool      { return false }
func (a *AnthropicAdapter) SupportsGrounding() bool  { return false }
func (a *AnthropicAdapter) SupportsJSONMode() bool   { return false }

func (a *AnthropicAdapter) Send(ctx context.Context, req Request) (*Reply, error) {
	logging.PerceptionWarn("Anthropic call is a placeholder and not implemented")
	return nil, &UnsupportedModelError{Provider: "Anthropic", ModelID: a.modelID}
}
