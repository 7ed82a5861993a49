package perception

import (
	"context"
	"encoding/base64"

	"google.golang.org/genai"

	"cognos/internal/logging"
	"cognos/internal/types"
)

// GenerateImage renders one image for the prompt via the Imagen model and
// wraps it as an image artifact. Returns (nil, nil) when the provider sends
// no image back.
func (a *GeminiAdapter) GenerateImage(ctx context.Context, prompt string) (*types.Artifact, error) {
	if a.apiKey == "" {
		return nil, &ProviderError{Kind: FailureInvalidCredential, Provider: geminiProviderName,
			Err: errAPIKeyMissing}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: a.apiKey})
	if err != nil {
		return nil, Classify(err, "Image Generation", geminiProviderName)
	}

	logging.Perception("[Gemini] Generating image: model=%s prompt_len=%d", a.imageModel, len(prompt))

	result, err := client.Models.GenerateImages(ctx, a.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, Classify(err, "Image Generation", geminiProviderName)
	}

	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		logging.PerceptionWarn("[Gemini] Image generation returned no images")
		return nil, nil
	}

	encoded := base64.StdEncoding.EncodeToString(result.GeneratedImages[0].Image.ImageBytes)
	return &types.Artifact{
		Kind:  types.ArtifactImage,
		Title: "Image: " + prompt,
		Image: &types.ImagePayload{Base64: encoded},
	}, nil
}
