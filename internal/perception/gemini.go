package perception

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"cognos/internal/logging"
	"cognos/internal/schema"
	"cognos/internal/types"
)

const geminiProviderName = "Google"

// GeminiConfig holds Gemini adapter settings.
type GeminiConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	ImageModel      string
	Timeout         time.Duration
	MaxOutputTokens int
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:     apiKey,
		BaseURL:    "https://generativelanguage.googleapis.com/v1beta",
		Model:      "gemini-2.5-flash",
		ImageModel: "imagen-3.0-generate-002",
		Timeout:    2 * time.Minute,
	}
}

// GeminiAdapter implements ProviderAdapter for the Gemini API.
type GeminiAdapter struct {
	apiKey          string
	baseURL         string
	model           string
	imageModel      string
	maxOutputTokens int
	httpClient      *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

// NewGeminiAdapter creates a Gemini adapter with default settings.
func NewGeminiAdapter(apiKey string) *GeminiAdapter {
	return NewGeminiAdapterWithConfig(DefaultGeminiConfig(apiKey))
}

// NewGeminiAdapterWithConfig creates a Gemini adapter with custom config.
func NewGeminiAdapterWithConfig(config GeminiConfig) *GeminiAdapter {
	defaults := DefaultGeminiConfig(config.APIKey)
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = defaults.Model
	}
	imageModel := strings.TrimSpace(config.ImageModel)
	if imageModel == "" {
		imageModel = defaults.ImageModel
	}
	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = defaults.BaseURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaults.Timeout
	}

	return &GeminiAdapter{
		apiKey:          config.APIKey,
		baseURL:         baseURL,
		model:           model,
		imageModel:      imageModel,
		maxOutputTokens: config.MaxOutputTokens,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

func (a *GeminiAdapter) Kind() types.ProviderKind { return types.ProviderGoogle }
func (a *GeminiAdapter) SupportsTools() bool      { return true }
func (a *GeminiAdapter) SupportsGrounding() bool  { return true }
func (a *GeminiAdapter) SupportsJSONMode() bool   { return true }

// SetModel overrides the text model at runtime.
func (a *GeminiAdapter) SetModel(model string) {
	if m := strings.TrimSpace(model); m != "" {
		a.model = m
	}
}

// GetModel returns the active text model.
func (a *GeminiAdapter) GetModel() string { return a.model }

// Send performs one generateContent call and translates the response into
// a neutral Reply.
func (a *GeminiAdapter) Send(ctx context.Context, req Request) (*Reply, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.httpClient.Timeout)
		defer cancel()
	}

	if a.apiKey == "" {
		return nil, &ProviderError{Kind: FailureInvalidCredential, Provider: geminiProviderName,
			Err: errAPIKeyMissing}
	}
	if req.Grounded && len(req.Tools) > 0 {
		// The API rejects function declarations combined with built-in search.
		return nil, fmt.Errorf("gemini: grounding and function declarations cannot be combined")
	}

	logging.PerceptionDebug("[Gemini] Send: model=%s turns=%d tools=%d grounded=%v json=%v",
		a.model, len(req.History), len(req.Tools), req.Grounded, req.JSONOutput)

	a.throttle()

	body := a.buildRequest(req)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)

	resp, err := a.post(ctx, url, body)
	if err != nil {
		return nil, Classify(err, "generateContent", geminiProviderName)
	}
	return translateResponse(resp), nil
}

// throttle enforces a minimum interval between requests.
func (a *GeminiAdapter) throttle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if elapsed := time.Since(a.lastRequest); elapsed < 100*time.Millisecond {
		time.Sleep(100*time.Millisecond - elapsed)
	}
	a.lastRequest = time.Now()
}

func (a *GeminiAdapter) buildRequest(req Request) *GeminiRequest {
	contents := make([]GeminiContent, 0, len(req.History))
	for i := range req.History {
		if c := turnToContent(&req.History[i]); c != nil {
			contents = append(contents, *c)
		}
	}

	body := &GeminiRequest{Contents: contents}
	if req.Instruction != "" {
		body.SystemInstruction = &GeminiContent{Parts: []GeminiPart{{Text: req.Instruction}}}
	}

	switch {
	case req.Grounded:
		body.Tools = []GeminiRequestTool{{GoogleSearch: &GeminiGoogleSearch{}}}
	case len(req.Tools) > 0:
		for _, t := range schema.ForGemini(req.Tools) {
			body.Tools = append(body.Tools, GeminiRequestTool{FunctionDeclarations: t.FunctionDeclarations})
		}
	}

	if req.JSONOutput || a.maxOutputTokens > 0 {
		cfg := &GeminiGenerationConfig{MaxOutputTokens: a.maxOutputTokens}
		if req.JSONOutput {
			cfg.ResponseMimeType = "application/json"
		}
		body.GenerationConfig = cfg
	}
	return body
}

// turnToContent maps one conversation turn onto a wire content entry.
// Turns with nothing to send (pure error placeholders) are dropped.
func turnToContent(turn *types.ConversationTurn) *GeminiContent {
	var parts []GeminiPart
	if turn.Text != "" {
		parts = append(parts, GeminiPart{Text: turn.Text})
	}
	if f := turn.Attachment; f != nil && len(f.Data) > 0 {
		parts = append(parts, GeminiPart{InlineData: &GeminiBlob{
			MimeType: f.MimeType,
			Data:     base64.StdEncoding.EncodeToString(f.Data),
		}})
	}
	if to := turn.ToolOutcome; to != nil {
		parts = append(parts, GeminiPart{FunctionResponse: &GeminiFunctionResponse{
			Name:     to.Name,
			Response: map[string]any{"result": to.Data},
		}})
	}
	if len(parts) == 0 {
		return nil
	}

	role := "user"
	if turn.Role == types.RoleModel {
		role = "model"
	}
	return &GeminiContent{Role: role, Parts: parts}
}

// post sends the request with retries on rate limits and transient network
// failures. Backoff doubles per attempt.
func (a *GeminiAdapter) post(ctx context.Context, url string, body *GeminiRequest) (*GeminiResponse, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	maxRetries := 3
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(1<<uint(i-1)) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := a.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		}

		var geminiResp GeminiResponse
		if err := json.Unmarshal(respBody, &geminiResp); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		if geminiResp.Error != nil {
			return nil, fmt.Errorf("API error: %s", geminiResp.Error.Message)
		}
		return &geminiResp, nil
	}
	return nil, lastErr
}

// translateResponse extracts text, the first function call, and grounding
// citations from the first candidate.
func translateResponse(resp *GeminiResponse) *Reply {
	reply := &Reply{}
	if len(resp.Candidates) == 0 {
		return reply
	}
	cand := resp.Candidates[0]

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
		if part.FunctionCall != nil && reply.ToolCall == nil {
			reply.ToolCall = &ToolCall{Name: part.FunctionCall.Name, Args: part.FunctionCall.Args}
		}
	}
	reply.Text = sb.String()

	if gm := cand.GroundingMetadata; gm != nil {
		for _, chunk := range gm.GroundingChunks {
			web := chunk.Web
			if web == nil || web.URI == "" {
				continue
			}
			title := web.Title
			if title == "" {
				title = web.URI
			}
			reply.Sources = append(reply.Sources, types.Source{URI: web.URI, Title: title})
		}
	}
	return reply
}
