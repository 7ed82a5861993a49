package perception

import (
	"fmt"

	"cognos/internal/logging"
	"cognos/internal/types"
)

// NewAdapter builds the adapter for a provider identity. apiKey is the
// credential the caller resolved for this provider; the factory does not
// enforce its presence, that is the dispatcher's precondition.
func NewAdapter(identity types.ProviderIdentity, apiKey string) (ProviderAdapter, error) {
	switch identity.Kind {
	case types.ProviderGoogle:
		config := DefaultGeminiConfig(apiKey)
		if identity.ModelID != "" {
			config.Model = identity.ModelID
		}
		logging.PerceptionDebug("Creating Gemini adapter: model=%s", config.Model)
		return NewGeminiAdapterWithConfig(config), nil
	case types.ProviderOpenAI:
		return NewOpenAIAdapter(identity.ModelID), nil
	case types.ProviderAnthropic:
		return NewAnthropicAdapter(identity.ModelID), nil
	default:
		return nil, fmt.Errorf("unknown provider kind: %q", identity.Kind)
	}
}
