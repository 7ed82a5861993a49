package perception

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cognos/internal/schema"
	"cognos/internal/types"
)

func testAdapter(baseURL string) *GeminiAdapter {
	cfg := DefaultGeminiConfig("test-key")
	cfg.BaseURL = baseURL
	cfg.Timeout = 5 * time.Second
	return NewGeminiAdapterWithConfig(cfg)
}

func TestGeminiCapabilities(t *testing.T) {
	a := NewGeminiAdapter("k")
	if a.Kind() != types.ProviderGoogle {
		t.Errorf("unexpected kind: %s", a.Kind())
	}
	if !a.SupportsTools() || !a.SupportsGrounding() || !a.SupportsJSONMode() {
		t.Error("Gemini supports all three call shapes")
	}
}

func TestGeminiSendMissingKey(t *testing.T) {
	a := NewGeminiAdapter("")
	_, err := a.Send(context.Background(), Request{})
	pe, ok := err.(*ProviderError)
	if !ok {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if pe.Kind != FailureInvalidCredential {
		t.Errorf("expected FailureInvalidCredential, got %v", pe.Kind)
	}
}

func TestGeminiSendRejectsGroundedTools(t *testing.T) {
	a := NewGeminiAdapter("k")
	_, err := a.Send(context.Background(), Request{
		Grounded: true,
		Tools:    []schema.Descriptor{{Name: "x", Description: "y"}},
	})
	if err == nil {
		t.Fatal("expected error for grounding combined with tools")
	}
}

func TestGeminiSendRoundTrip(t *testing.T) {
	var captured GeminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(GeminiResponse{
			Candidates: []GeminiCandidate{{
				Content: GeminiContent{Role: "model", Parts: []GeminiPart{{Text: "hello"}}},
				GroundingMetadata: &GeminiGroundingMetadata{
					GroundingChunks: []GeminiGroundingChunk{
						{Web: &GeminiWebSource{URI: "https://a.example", Title: "A"}},
						{Web: &GeminiWebSource{URI: "https://b.example"}},
						{Web: nil},
					},
				},
			}},
		})
	}))
	defer server.Close()

	a := testAdapter(server.URL)
	reply, err := a.Send(context.Background(), Request{
		History: []types.ConversationTurn{
			{Role: types.RoleUser, Text: "hi", Attachment: &types.Attachment{
				Data: []byte{1, 2, 3}, MimeType: "image/png", Name: "shot.png",
			}},
			{Role: types.RoleModel, Text: "hello back"},
		},
		Instruction: "be brief",
		Grounded:    true,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if reply.Text != "hello" {
		t.Errorf("unexpected text: %q", reply.Text)
	}
	if len(reply.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(reply.Sources))
	}
	if reply.Sources[1].Title != "https://b.example" {
		t.Errorf("missing title must fall back to the URI, got %q", reply.Sources[1].Title)
	}

	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "be brief" {
		t.Error("system instruction not sent")
	}
	if len(captured.Tools) != 1 || captured.Tools[0].GoogleSearch == nil {
		t.Error("grounded call must carry the googleSearch tool")
	}
	if len(captured.Contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(captured.Contents))
	}
	if captured.Contents[0].Role != "user" || captured.Contents[1].Role != "model" {
		t.Error("role mapping is wrong")
	}
	if captured.Contents[0].Parts[1].InlineData == nil {
		t.Error("attachment must be sent as inline data")
	}
}

func TestGeminiSendFunctionCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GeminiResponse{
			Candidates: []GeminiCandidate{{
				Content: GeminiContent{Role: "model", Parts: []GeminiPart{{
					FunctionCall: &GeminiFunctionCall{
						Name: "find_hotels",
						Args: map[string]any{"location": "Lisbon"},
					},
				}}},
			}},
		})
	}))
	defer server.Close()

	a := testAdapter(server.URL)
	reply, err := a.Send(context.Background(), Request{
		History: []types.ConversationTurn{{Role: types.RoleUser, Text: "hotels in Lisbon"}},
		Tools:   []schema.Descriptor{{Name: "find_hotels", Description: "Finds hotels."}},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if reply.ToolCall == nil || reply.ToolCall.Name != "find_hotels" {
		t.Fatalf("expected a find_hotels tool call, got %+v", reply.ToolCall)
	}
	if reply.ToolCall.Args["location"] != "Lisbon" {
		t.Errorf("unexpected args: %v", reply.ToolCall.Args)
	}
}

func TestGeminiSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	a := testAdapter(server.URL)
	_, err := a.Send(context.Background(), Request{
		History: []types.ConversationTurn{{Role: types.RoleUser, Text: "hi"}},
	})
	pe, ok := err.(*ProviderError)
	if !ok {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
	if pe.Kind != FailureInvalidCredential {
		t.Errorf("expected FailureInvalidCredential, got %v", pe.Kind)
	}
}

func TestTurnToContentDropsEmptyTurns(t *testing.T) {
	if c := turnToContent(&types.ConversationTurn{Role: types.RoleModel, ErrorText: "failed"}); c != nil {
		t.Error("error-only turns must be dropped")
	}

	c := turnToContent(&types.ConversationTurn{
		Role:        types.RoleTool,
		ToolOutcome: &types.ToolOutcome{Name: "find_jobs", Data: []any{}},
	})
	if c == nil || c.Parts[0].FunctionResponse == nil {
		t.Fatal("tool outcomes must map to function responses")
	}
	if c.Role != "user" {
		t.Errorf("tool turns are sent with the user role, got %q", c.Role)
	}
}
