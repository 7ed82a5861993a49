package perception

import "cognos/internal/schema"

// Wire types for the Gemini generateContent REST API.

type GeminiRequest struct {
	Contents          []GeminiContent         `json:"contents"`
	SystemInstruction *GeminiContent          `json:"systemInstruction,omitempty"`
	Tools             []GeminiRequestTool     `json:"tools,omitempty"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text             string                  `json:"text,omitempty"`
	InlineData       *GeminiBlob             `json:"inlineData,omitempty"`
	FunctionCall     *GeminiFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *GeminiFunctionResponse `json:"functionResponse,omitempty"`
}

type GeminiBlob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GeminiFunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type GeminiFunctionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// GeminiRequestTool is one entry of the request tools array. Function
// declarations and built-in search are mutually exclusive on the API side.
type GeminiRequestTool struct {
	FunctionDeclarations []schema.GeminiFunctionDeclaration `json:"functionDeclarations,omitempty"`
	GoogleSearch         *GeminiGoogleSearch                `json:"googleSearch,omitempty"`
}

type GeminiGoogleSearch struct{}

type GeminiGenerationConfig struct {
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
	Error      *GeminiAPIError   `json:"error,omitempty"`
}

type GeminiCandidate struct {
	Content           GeminiContent            `json:"content"`
	FinishReason      string                   `json:"finishReason,omitempty"`
	GroundingMetadata *GeminiGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type GeminiGroundingMetadata struct {
	GroundingChunks []GeminiGroundingChunk `json:"groundingChunks,omitempty"`
}

type GeminiGroundingChunk struct {
	Web *GeminiWebSource `json:"web,omitempty"`
}

type GeminiWebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type GeminiAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
