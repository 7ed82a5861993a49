// Package schema is the tool-schema registry: it exposes the capability
// registry's provider-neutral descriptors and derives the three provider
// encodings from that single source of truth, so every provider sees a
// semantically identical tool surface. Pure data transformation; no error
// paths.
package schema

import (
	"cognos/internal/tools"
	"cognos/internal/types"
)

// Descriptor is the provider-neutral description of one tool.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Describe lists descriptors for every tool in the registry, sorted by name.
func Describe(r *tools.Registry) []Descriptor {
	list := r.List()
	out := make([]Descriptor, len(list))
	for i, t := range list {
		out[i] = Descriptor{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Schema.AsMap(),
		}
	}
	return out
}

// GeminiFunctionDeclaration is one function entry in the Gemini tools array.
type GeminiFunctionDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// GeminiTool is the Gemini tools wrapper; all declarations share one entry.
type GeminiTool struct {
	FunctionDeclarations []GeminiFunctionDeclaration `json:"functionDeclarations"`
}

// ForGemini derives the Gemini function-calling encoding.
func ForGemini(descs []Descriptor) []GeminiTool {
	if len(descs) == 0 {
		return nil
	}
	decls := make([]GeminiFunctionDeclaration, len(descs))
	for i, d := range descs {
		decls[i] = GeminiFunctionDeclaration{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		}
	}
	return []GeminiTool{{FunctionDeclarations: decls}}
}

// OpenAIFunction is the function body of an OpenAI tool entry.
type OpenAIFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// OpenAITool is one entry in the OpenAI tools array.
type OpenAITool struct {
	Type     string         `json:"type"`
	Function OpenAIFunction `json:"function"`
}

// ForOpenAI derives the OpenAI function-calling encoding.
func ForOpenAI(descs []Descriptor) []OpenAITool {
	out := make([]OpenAITool, len(descs))
	for i, d := range descs {
		out[i] = OpenAITool{
			Type: "function",
			Function: OpenAIFunction{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters,
			},
		}
	}
	return out
}

// AnthropicTool is one entry in the Anthropic tools array.
type AnthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema"`
}

// ForAnthropic derives the Anthropic tool encoding.
func ForAnthropic(descs []Descriptor) []AnthropicTool {
	out := make([]AnthropicTool, len(descs))
	for i, d := range descs {
		out[i] = AnthropicTool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.Parameters,
		}
	}
	return out
}

// ForProvider returns the encoding for the given provider kind. Total over
// the three supported kinds; unknown kinds fall back to the neutral
// descriptors.
func ForProvider(kind types.ProviderKind, descs []Descriptor) any {
	switch kind {
	case types.ProviderGoogle:
		return ForGemini(descs)
	case types.ProviderOpenAI:
		return ForOpenAI(descs)
	case types.ProviderAnthropic:
		return ForAnthropic(descs)
	default:
		return descs
	}
}
