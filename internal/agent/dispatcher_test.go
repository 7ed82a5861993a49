package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognos/internal/parse"
	"cognos/internal/perception"
	"cognos/internal/store"
	"cognos/internal/tools"
	"cognos/internal/types"
)

// mockAdapter records every Send and replays scripted replies.
type mockAdapter struct {
	kind      types.ProviderKind
	replies   []*perception.Reply
	err       error
	requests  []perception.Request
	imageErr  error
	generated *types.Artifact
	imageReqs []string
}

func (m *mockAdapter) Kind() types.ProviderKind { return m.kind }
func (m *mockAdapter) SupportsTools() bool      { return true }
func (m *mockAdapter) SupportsGrounding() bool  { return true }
func (m *mockAdapter) SupportsJSONMode() bool   { return true }

func (m *mockAdapter) Send(ctx context.Context, req perception.Request) (*perception.Reply, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	reply := m.replies[0]
	if len(m.replies) > 1 {
		m.replies = m.replies[1:]
	}
	return reply, nil
}

func (m *mockAdapter) GenerateImage(ctx context.Context, prompt string) (*types.Artifact, error) {
	m.imageReqs = append(m.imageReqs, prompt)
	return m.generated, m.imageErr
}

func newTestDispatcher(adapter *mockAdapter, registry *tools.Registry) *Dispatcher {
	return NewDispatcher(Config{
		Registry:         registry,
		Profiles:         store.NewProfiles(store.NewMemoryStore()),
		GoogleCredential: "test-key",
		NewAdapter: func(identity types.ProviderIdentity, credential string) (perception.ProviderAdapter, error) {
			return adapter, nil
		},
	})
}

func userTurn(text string) []types.ConversationTurn {
	return []types.ConversationTurn{{Role: types.RoleUser, Text: text}}
}

func googleIdentity() types.ProviderIdentity {
	return types.ProviderIdentity{Kind: types.ProviderGoogle, ModelID: "gemini-2.5-flash"}
}

func TestDispatchInvalidMode(t *testing.T) {
	d := newTestDispatcher(&mockAdapter{}, nil)
	_, err := d.Dispatch(context.Background(), nil, "turbo", nil, googleIdentity(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestDispatchMissingCredentialMakesNoCalls(t *testing.T) {
	adapter := &mockAdapter{kind: types.ProviderOpenAI}
	d := newTestDispatcher(adapter, nil)

	identity := types.ProviderIdentity{Kind: types.ProviderOpenAI, ModelID: "gpt-4o"}
	result, err := d.Dispatch(context.Background(), userTurn("hi"), types.ModeStandard, &types.PersonalizationProfile{}, identity, "")
	require.NoError(t, err)
	assert.True(t, result.IsError())
	assert.Contains(t, result.ErrorText, "OpenAI API key is missing")
	assert.Empty(t, adapter.requests, "no adapter call may happen without a credential")
}

func TestDispatchStandardPlainReply(t *testing.T) {
	adapter := &mockAdapter{
		kind:    types.ProviderGoogle,
		replies: []*perception.Reply{{Text: "Hello there."}},
	}
	d := newTestDispatcher(adapter, tools.NewDefaultRegistry())

	result, err := d.Dispatch(context.Background(), userTurn("hi"), types.ModeStandard, nil, googleIdentity(), "")
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", result.Text)
	require.Len(t, adapter.requests, 1)
	assert.NotEmpty(t, adapter.requests[0].Tools, "standard mode attaches tool schemas")
	assert.False(t, adapter.requests[0].Grounded)
}

func TestDispatchStandardSearchFallback(t *testing.T) {
	adapter := &mockAdapter{
		kind: types.ProviderGoogle,
		replies: []*perception.Reply{
			{Text: parse.SearchFallbackSentinel},
			{Text: "Grounded answer.", Sources: []types.Source{{URI: "https://s.example", Title: "S"}}},
		},
	}
	d := newTestDispatcher(adapter, tools.NewDefaultRegistry())

	result, err := d.Dispatch(context.Background(), userTurn("what happened today"), types.ModeStandard, nil, googleIdentity(), "")
	require.NoError(t, err)
	require.Len(t, adapter.requests, 2)
	assert.False(t, adapter.requests[0].Grounded)
	assert.True(t, adapter.requests[1].Grounded)
	assert.Empty(t, adapter.requests[1].Tools)
	assert.Equal(t, "Grounded answer.", result.Text)
	require.Len(t, result.Sources, 1)
}

func TestDispatchStandardToolCall(t *testing.T) {
	adapter := &mockAdapter{
		kind: types.ProviderGoogle,
		replies: []*perception.Reply{{
			ToolCall: &perception.ToolCall{
				Name: "find_hotels",
				Args: map[string]any{"location": "Lisbon"},
			},
		}},
	}
	d := newTestDispatcher(adapter, tools.NewDefaultRegistry())

	result, err := d.Dispatch(context.Background(), userTurn("find hotels in Lisbon"), types.ModeStandard, nil, googleIdentity(), "")
	require.NoError(t, err)
	require.NotNil(t, result.ToolOutcome)
	assert.Equal(t, "find_hotels", result.ToolOutcome.Name)
	assert.Len(t, adapter.requests, 1, "a tool call does not trigger search fallback")
}

func TestDispatchCreativeImageTrigger(t *testing.T) {
	adapter := &mockAdapter{
		kind: types.ProviderGoogle,
		generated: &types.Artifact{
			Kind:  types.ArtifactImage,
			Title: "Image: a red bicycle",
			Image: &types.ImagePayload{Base64: "aGk="},
		},
	}
	d := newTestDispatcher(adapter, nil)

	result, err := d.Dispatch(context.Background(), userTurn("Generate an image of a red bicycle"), types.ModeCreative, nil, googleIdentity(), "")
	require.NoError(t, err)
	assert.Empty(t, adapter.requests, "image trigger must bypass the text path")
	require.Len(t, adapter.imageReqs, 1)
	assert.Equal(t, "a red bicycle", adapter.imageReqs[0])
	require.NotNil(t, result.Artifact)
	assert.Equal(t, types.ArtifactImage, result.Artifact.Kind)
	assert.Contains(t, result.Artifact.Title, "a red bicycle")
	assert.Contains(t, result.Text, `"a red bicycle"`)
}

func TestDispatchCreativeJSONPath(t *testing.T) {
	adapter := &mockAdapter{
		kind: types.ProviderGoogle,
		replies: []*perception.Reply{{
			Text: `{"type": "slides", "title": "Deck", "data": {"slides": [{"title": "One", "content": ["a"]}]}}`,
		}},
	}
	d := newTestDispatcher(adapter, nil)

	result, err := d.Dispatch(context.Background(), userTurn("make a deck about bees"), types.ModeCreative, nil, googleIdentity(), "")
	require.NoError(t, err)
	require.Len(t, adapter.requests, 1)
	assert.True(t, adapter.requests[0].JSONOutput)
	assert.Empty(t, adapter.imageReqs)
	require.NotNil(t, result.Artifact)
	assert.Equal(t, types.ArtifactSlides, result.Artifact.Kind)
}

func TestDispatchResearchGrounded(t *testing.T) {
	adapter := &mockAdapter{
		kind: types.ProviderGoogle,
		replies: []*perception.Reply{{
			Text: "```json\n{\"researchLog\": [\"step\"], \"report\": \"Findings.\"}\n```",
		}},
	}
	d := newTestDispatcher(adapter, nil)

	result, err := d.Dispatch(context.Background(), userTurn("research bees"), types.ModeDeepResearch, nil, googleIdentity(), "")
	require.NoError(t, err)
	require.Len(t, adapter.requests, 1)
	assert.True(t, adapter.requests[0].Grounded)
	assert.Equal(t, "Findings.", result.Text)
	assert.Equal(t, []string{"step"}, result.ResearchLog)
}

func TestDispatchAdapterErrorBecomesErrorText(t *testing.T) {
	adapter := &mockAdapter{
		kind: types.ProviderGoogle,
		err:  errors.New("API request failed with status 500: boom"),
	}
	d := newTestDispatcher(adapter, nil)

	result, err := d.Dispatch(context.Background(), userTurn("hi"), types.ModeStandard, nil, googleIdentity(), "")
	require.NoError(t, err, "operational failures never surface as errors")
	assert.True(t, result.IsError())
	assert.Contains(t, result.ErrorText, "boom")
	assert.Len(t, adapter.requests, 1, "the dispatcher never retries")
}

func TestDispatchCopilotUsesStandardPath(t *testing.T) {
	adapter := &mockAdapter{
		kind:    types.ProviderGoogle,
		replies: []*perception.Reply{{Text: "Click the File menu."}},
	}
	d := newTestDispatcher(adapter, tools.NewDefaultRegistry())

	result, err := d.Dispatch(context.Background(), userTurn("help me with this screen"), types.ModeLiveCoPilot, nil, googleIdentity(), "")
	require.NoError(t, err)
	assert.Equal(t, "Click the File menu.", result.Text)
	require.Len(t, adapter.requests, 1)
	assert.NotEmpty(t, adapter.requests[0].Tools)
}
