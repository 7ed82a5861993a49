// Package agent contains the dispatcher, the sole public entry point of the
// subsystem. One Dispatch call composes the instruction, routes to the
// provider adapter through the mode-specific call shape, and normalizes
// whatever comes back. The dispatcher holds no per-conversation state;
// concurrent calls for different conversations are safe.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cognos/internal/logging"
	"cognos/internal/parse"
	"cognos/internal/perception"
	"cognos/internal/prompt"
	"cognos/internal/schema"
	"cognos/internal/store"
	"cognos/internal/tools"
	"cognos/internal/types"
)

// ErrInvalidMode is the only error Dispatch returns; everything else is
// carried inside the result's ErrorText.
var ErrInvalidMode = errors.New("invalid behavior mode")

// ImageTriggerPrefix routes creative-mode requests to the image path when
// the latest user turn starts with it (case-insensitive).
const ImageTriggerPrefix = "generate an image of"

// AdapterFactory builds the adapter for a provider identity and credential.
// Injectable so tests can substitute a mock.
type AdapterFactory func(identity types.ProviderIdentity, credential string) (perception.ProviderAdapter, error)

// Config wires the dispatcher's collaborators.
type Config struct {
	// Registry of callable tools; nil disables tool schemas.
	Registry *tools.Registry
	// Profiles is the injected persistence port used to resolve the
	// personalization profile when the caller passes nil.
	Profiles *store.Profiles
	// GoogleCredential is the default provider's API key.
	GoogleCredential string
	// NewAdapter defaults to perception.NewAdapter.
	NewAdapter AdapterFactory
}

// Dispatcher orchestrates one agent turn.
type Dispatcher struct {
	registry   *tools.Registry
	profiles   *store.Profiles
	googleCred string
	newAdapter AdapterFactory
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(cfg Config) *Dispatcher {
	factory := cfg.NewAdapter
	if factory == nil {
		factory = perception.NewAdapter
	}
	return &Dispatcher{
		registry:   cfg.Registry,
		profiles:   cfg.Profiles,
		googleCred: cfg.GoogleCredential,
		newAdapter: factory,
	}
}

// Dispatch runs one agent turn. It returns an error only for programmer
// mistakes (invalid mode, unknown provider kind); every operational failure
// resolves to a result carrying ErrorText.
func (d *Dispatcher) Dispatch(ctx context.Context, history []types.ConversationTurn, mode types.BehaviorMode, profile *types.PersonalizationProfile, provider types.ProviderIdentity, styleToken string) (*types.AgentResult, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	if profile == nil && d.profiles != nil {
		loaded, err := d.profiles.Load()
		if err != nil {
			logging.AgentWarn("Failed to load personalization profile: %v", err)
		} else {
			profile = loaded
		}
	}

	instruction := prompt.Compose(mode, profile, provider.Kind, styleToken)

	credential := profile.CredentialFor(provider.Kind)
	if provider.Kind == types.ProviderGoogle && credential == "" {
		credential = d.googleCred
	}
	// Non-default providers require a user-supplied key; fail before any
	// network attempt.
	if provider.Kind != types.ProviderGoogle && credential == "" {
		logging.AgentWarn("Missing %s credential; refusing dispatch", provider.Kind)
		return &types.AgentResult{ErrorText: missingCredentialText(provider.Kind)}, nil
	}

	adapter, err := d.newAdapter(provider, credential)
	if err != nil {
		return nil, err
	}

	logging.Agent("Dispatch: mode=%s provider=%s model=%s turns=%d",
		mode, provider.Kind, provider.ModelID, len(history))

	switch mode {
	case types.ModeCreative:
		return d.dispatchCreative(ctx, adapter, history, instruction), nil
	case types.ModeDeepResearch, types.ModeLegendaryResearch:
		return d.dispatchResearch(ctx, adapter, history, instruction, mode), nil
	default:
		return d.dispatchStandard(ctx, adapter, history, instruction, mode), nil
	}
}

func missingCredentialText(kind types.ProviderKind) string {
	name := string(kind)
	switch kind {
	case types.ProviderOpenAI:
		name = "OpenAI"
	case types.ProviderAnthropic:
		name = "Anthropic"
	}
	return name + " API key is missing. Please add it in the Personalization settings."
}

// dispatchCreative routes image-generation prompts to the dedicated image
// path and everything else through JSON-output generation.
func (d *Dispatcher) dispatchCreative(ctx context.Context, adapter perception.ProviderAdapter, history []types.ConversationTurn, instruction string) *types.AgentResult {
	if promptText, ok := imagePrompt(history); ok {
		if gen, canGenerate := adapter.(perception.ImageGenerator); canGenerate {
			return d.dispatchImage(ctx, gen, promptText)
		}
		logging.AgentDebug("Adapter %s cannot generate images; using text path", adapter.Kind())
	}

	reply, err := adapter.Send(ctx, perception.Request{
		History:     history,
		Instruction: instruction,
		JSONOutput:  adapter.SupportsJSONMode(),
	})
	if err != nil {
		return &types.AgentResult{ErrorText: err.Error()}
	}
	return parse.Parse(types.ModeCreative, reply.Text, reply.Sources)
}

// imagePrompt extracts the image prompt from the latest user turn, if the
// trigger phrase matches.
func imagePrompt(history []types.ConversationTurn) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		turn := &history[i]
		if turn.Role != types.RoleUser {
			continue
		}
		if strings.HasPrefix(strings.ToLower(turn.Text), ImageTriggerPrefix) {
			return strings.TrimSpace(turn.Text[len(ImageTriggerPrefix):]), true
		}
		return "", false
	}
	return "", false
}

func (d *Dispatcher) dispatchImage(ctx context.Context, gen perception.ImageGenerator, promptText string) *types.AgentResult {
	artifact, err := gen.GenerateImage(ctx, promptText)
	if err != nil {
		return &types.AgentResult{ErrorText: err.Error()}
	}
	if artifact == nil {
		return &types.AgentResult{Text: "Sorry, I was unable to generate an image."}
	}
	return &types.AgentResult{
		Text:     fmt.Sprintf("I have generated an image based on your prompt: %q", promptText),
		Artifact: artifact,
	}
}

func (d *Dispatcher) dispatchResearch(ctx context.Context, adapter perception.ProviderAdapter, history []types.ConversationTurn, instruction string, mode types.BehaviorMode) *types.AgentResult {
	reply, err := adapter.Send(ctx, perception.Request{
		History:     history,
		Instruction: instruction,
		Grounded:    adapter.SupportsGrounding(),
	})
	if err != nil {
		return &types.AgentResult{ErrorText: err.Error()}
	}
	return parse.Parse(mode, reply.Text, reply.Sources)
}

// dispatchStandard sends with tool schemas attached. A requested tool call
// is executed through the registry; the search-fallback sentinel (and an
// empty reply) re-dispatches through the grounded path.
func (d *Dispatcher) dispatchStandard(ctx context.Context, adapter perception.ProviderAdapter, history []types.ConversationTurn, instruction string, mode types.BehaviorMode) *types.AgentResult {
	req := perception.Request{History: history, Instruction: instruction}
	if d.registry != nil && adapter.SupportsTools() {
		req.Tools = schema.Describe(d.registry)
	}

	reply, err := adapter.Send(ctx, req)
	if err != nil {
		return &types.AgentResult{ErrorText: err.Error()}
	}

	if reply.ToolCall != nil {
		return d.executeToolCall(ctx, reply)
	}

	if parse.IsSearchFallback(reply.Text) || reply.Text == "" {
		logging.AgentDebug("No direct answer; re-dispatching through grounded search")
		return d.dispatchGrounded(ctx, adapter, history, instruction, mode)
	}
	return parse.Parse(mode, reply.Text, reply.Sources)
}

func (d *Dispatcher) executeToolCall(ctx context.Context, reply *perception.Reply) *types.AgentResult {
	call := reply.ToolCall
	if d.registry == nil {
		return &types.AgentResult{ErrorText: fmt.Sprintf("The model requested tool %q but no tools are available.", call.Name)}
	}
	outcome, err := d.registry.Execute(ctx, call.Name, call.Args)
	if err != nil {
		logging.AgentError("Tool execution failed: %v", err)
		return &types.AgentResult{ErrorText: fmt.Sprintf("The %s tool failed to run. Please try again.", call.Name)}
	}
	return &types.AgentResult{Text: reply.Text, ToolOutcome: outcome}
}

func (d *Dispatcher) dispatchGrounded(ctx context.Context, adapter perception.ProviderAdapter, history []types.ConversationTurn, instruction string, mode types.BehaviorMode) *types.AgentResult {
	if !adapter.SupportsGrounding() {
		return &types.AgentResult{ErrorText: "I could not find an answer for that request."}
	}
	reply, err := adapter.Send(ctx, perception.Request{
		History:     history,
		Instruction: instruction,
		Grounded:    true,
	})
	if err != nil {
		return &types.AgentResult{ErrorText: err.Error()}
	}
	text := reply.Text
	if text == "" {
		text = "I found some information, but I'm having trouble formulating a response."
	}
	return parse.Parse(mode, text, reply.Sources)
}
