// Package perception is the provider boundary: it translates neutral
// conversation state into provider wire formats, invokes the model, and
// returns neutral replies. Capability differences between providers are
// declared on the adapter so the dispatcher can route around them instead
// of probing.
package perception

import (
	"context"

	"cognos/internal/schema"
	"cognos/internal/types"
)

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Request is one provider call. Exactly one of Tools / Grounded /
// JSONOutput is typically set; the adapter rejects combinations it cannot
// express on the wire.
type Request struct {
	History     []types.ConversationTurn
	Instruction string
	Tools       []schema.Descriptor
	Grounded    bool
	JSONOutput  bool
}

// Reply is the neutral result of one provider call.
type Reply struct {
	Text     string
	Sources  []types.Source
	ToolCall *ToolCall
}

// ProviderAdapter is implemented once per provider. Capability methods are
// static declarations, not runtime probes; the dispatcher consults them
// before choosing a call shape.
type ProviderAdapter interface {
	Kind() types.ProviderKind
	Send(ctx context.Context, req Request) (*Reply, error)
	SupportsTools() bool
	SupportsGrounding() bool
	SupportsJSONMode() bool
}

// ImageGenerator is implemented by adapters that can render images. A nil
// artifact with a nil error means the provider returned no image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*types.Artifact, error)
}
