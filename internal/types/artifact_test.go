package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArtifactKnownKind(t *testing.T) {
	data := json.RawMessage(`{"problem": "2x=4", "answer": "x=2", "steps": [{"explanation": "divide", "formula": "x = 4/2"}]}`)
	a := DecodeArtifact(ArtifactMathSolution, "Algebra", data)

	require.NotNil(t, a.MathSolution)
	assert.Equal(t, "x=2", a.MathSolution.Answer)
	require.Len(t, a.MathSolution.Steps, 1)
	assert.Equal(t, data, a.Raw, "raw payload is always retained")
}

func TestDecodeArtifactUnknownKind(t *testing.T) {
	data := json.RawMessage(`{"frames": ["0101", "1010"]}`)
	a := DecodeArtifact("binary_animation", "Blinkenlights", data)

	assert.Equal(t, ArtifactKind("binary_animation"), a.Kind)
	assert.Equal(t, data, a.Raw)
	assert.Nil(t, a.MathSolution)
	assert.Nil(t, a.Webpage)
}

func TestDecodeArtifactMalformedPayload(t *testing.T) {
	// A payload that is valid JSON but not the expected shape keeps Raw only.
	a := DecodeArtifact(ArtifactSlides, "Deck", json.RawMessage(`["not", "an", "object"]`))
	assert.Nil(t, a.Slides)
	assert.NotEmpty(t, a.Raw)
}

func TestDecodeArtifactEmptyData(t *testing.T) {
	a := DecodeArtifact(ArtifactImage, "Image: a cat", nil)
	assert.Nil(t, a.Image)
	assert.Equal(t, "Image: a cat", a.Title)
}

func TestBehaviorModeValid(t *testing.T) {
	for _, m := range []BehaviorMode{ModeStandard, ModeCreative, ModeDeepResearch, ModeLegendaryResearch, ModeLiveCoPilot} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, BehaviorMode("turbo").Valid())
	assert.True(t, ModeDeepResearch.IsResearch())
	assert.True(t, ModeLegendaryResearch.IsResearch())
	assert.False(t, ModeCreative.IsResearch())
}

func TestProfileHasContent(t *testing.T) {
	var nilProfile *PersonalizationProfile
	assert.False(t, nilProfile.HasContent())
	assert.False(t, (&PersonalizationProfile{}).HasContent())
	assert.False(t, (&PersonalizationProfile{CustomFields: []CustomField{{Key: "a"}}}).HasContent())
	assert.True(t, (&PersonalizationProfile{Name: "Ada"}).HasContent())
	assert.True(t, (&PersonalizationProfile{CustomFields: []CustomField{{Key: "a", Value: "b"}}}).HasContent())
}

func TestProfileCredentialFor(t *testing.T) {
	var nilProfile *PersonalizationProfile
	assert.Empty(t, nilProfile.CredentialFor(ProviderOpenAI))

	p := &PersonalizationProfile{APIKeys: map[ProviderKind]string{ProviderOpenAI: "sk-1"}}
	assert.Equal(t, "sk-1", p.CredentialFor(ProviderOpenAI))
	assert.Empty(t, p.CredentialFor(ProviderAnthropic))
}
