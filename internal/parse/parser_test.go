package parse

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognos/internal/types"
)

const mathFence = "```json\n" + `{
  "type": "math_solution",
  "title": "Solving the Quadratic",
  "data": {
    "problem": "x^2 - 4 = 0",
    "answer": "x = \\pm 2",
    "steps": [
      {"explanation": "Factor", "formula": "(x-2)(x+2) = 0"}
    ]
  }
}` + "\n```"

func TestIsSearchFallback(t *testing.T) {
	assert.True(t, IsSearchFallback("FALLBACK_TO_SEARCH"))
	assert.True(t, IsSearchFallback("  FALLBACK_TO_SEARCH\n"))
	assert.False(t, IsSearchFallback("FALLBACK_TO_SEARCHX"))
	assert.False(t, IsSearchFallback("I would suggest FALLBACK_TO_SEARCH here"))
	assert.False(t, IsSearchFallback(""))
}

func TestParseStandardMathSolution(t *testing.T) {
	text := "Sure, here is the solution:\n" + mathFence + "\nHope that helps!"

	result := Parse(types.ModeStandard, text, nil)
	require.NotNil(t, result.Artifact)
	assert.Equal(t, MathSolvedText, result.Text)
	assert.Equal(t, types.ArtifactMathSolution, result.Artifact.Kind)
	assert.Equal(t, "Solving the Quadratic", result.Artifact.Title)

	want := &types.MathSolutionPayload{
		Problem: "x^2 - 4 = 0",
		Answer:  `x = \pm 2`,
		Steps:   []types.MathStep{{Explanation: "Factor", Formula: "(x-2)(x+2) = 0"}},
	}
	if diff := cmp.Diff(want, result.Artifact.MathSolution); diff != "" {
		t.Errorf("math payload mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStandardPlainText(t *testing.T) {
	sources := []types.Source{
		{URI: "https://a.example", Title: "First"},
		{URI: "https://a.example", Title: "Second"},
		{URI: "https://b.example", Title: "Other"},
	}
	result := Parse(types.ModeStandard, "The answer is 42.", sources)
	assert.Equal(t, "The answer is 42.", result.Text)
	assert.Nil(t, result.Artifact)
	require.Len(t, result.Sources, 2)
	assert.Equal(t, "First", result.Sources[0].Title)
}

func TestParseStandardNonMathFence(t *testing.T) {
	text := "```json\n{\"type\": \"slides\", \"title\": \"Deck\", \"data\": {\"slides\": []}}\n```"
	result := Parse(types.ModeStandard, text, nil)
	assert.Nil(t, result.Artifact)
	assert.Equal(t, text, result.Text)
}

func TestParseCreative(t *testing.T) {
	t.Run("fenced artifact", func(t *testing.T) {
		text := "```json\n{\"type\": \"webpage\", \"title\": \"Landing\", \"data\": {\"html\": \"<h1>Hi</h1>\", \"css\": \"h1{}\", \"js\": \"\"}}\n```"
		result := Parse(types.ModeCreative, text, nil)
		require.NotNil(t, result.Artifact)
		assert.False(t, result.IsError())
		assert.Equal(t, "I have created the following content: Landing", result.Text)
		assert.Equal(t, types.ArtifactWebpage, result.Artifact.Kind)
		require.NotNil(t, result.Artifact.Webpage)
		assert.Equal(t, "<h1>Hi</h1>", result.Artifact.Webpage.HTML)
	})

	t.Run("bare JSON from json-output calls", func(t *testing.T) {
		result := Parse(types.ModeCreative, `{"type": "visualization", "title": "Graph", "data": {"svg": "<svg/>"}}`, nil)
		require.NotNil(t, result.Artifact)
		assert.Equal(t, types.ArtifactDiagram, result.Artifact.Kind)
	})

	t.Run("malformed payload is a format error", func(t *testing.T) {
		result := Parse(types.ModeCreative, "```json\n{not valid\n```", nil)
		assert.Equal(t, InvalidCreativeText, result.ErrorText)
		assert.Nil(t, result.Artifact)
	})

	t.Run("no payload at all", func(t *testing.T) {
		result := Parse(types.ModeCreative, "I'd rather chat than create.", nil)
		assert.Equal(t, InvalidCreativeText, result.ErrorText)
	})
}

func TestParseResearch(t *testing.T) {
	report := "```json\n" + `{
  "researchLog": ["Formulating initial query", "Synthesizing sources"],
  "report": "## Findings\nEverything checks out.",
  "creativeOutput": {"type": "math_solution", "title": "Detailed Mathematical Solution", "data": {"problem": "1+1", "answer": "2", "steps": []}}
}` + "\n```"

	t.Run("structured report", func(t *testing.T) {
		result := Parse(types.ModeDeepResearch, report, []types.Source{{URI: "https://x.example", Title: "X"}})
		assert.Equal(t, "## Findings\nEverything checks out.", result.Text)
		assert.Equal(t, []string{"Formulating initial query", "Synthesizing sources"}, result.ResearchLog)
		require.NotNil(t, result.Artifact)
		assert.Equal(t, types.ArtifactMathSolution, result.Artifact.Kind)
		require.Len(t, result.Sources, 1)
	})

	t.Run("missing fence degrades", func(t *testing.T) {
		result := Parse(types.ModeLegendaryResearch, "Raw unstructured findings.", nil)
		assert.Equal(t, "Raw unstructured findings.", result.Text)
		assert.Equal(t, []string{DegradedResearchNote}, result.ResearchLog)
		assert.False(t, result.IsError())
	})

	t.Run("broken fence is a format error", func(t *testing.T) {
		result := Parse(types.ModeDeepResearch, "```json\n{broken\n```", nil)
		assert.Equal(t, InvalidResearchText, result.ErrorText)
	})

	t.Run("parse output is already normalized", func(t *testing.T) {
		result := Parse(types.ModeDeepResearch, report, nil)
		again := Parse(types.ModeDeepResearch, result.Text, nil)
		assert.Equal(t, result.Text, again.Text)
		assert.Equal(t, []string{DegradedResearchNote}, again.ResearchLog)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("full report shape", func(t *testing.T) {
		text := "```json\n{\"report\": \"Done.\", \"researchLog\": [\"step one\"]}\n```"
		cleaned, log, artifact := Normalize(text)
		assert.Equal(t, "Done.", cleaned)
		assert.Equal(t, []string{"step one"}, log)
		assert.Nil(t, artifact)
	})

	t.Run("log-only shape strips the block", func(t *testing.T) {
		text := "Summary first.\n```json\n{\"researchLog\": [\"step one\"]}\n```"
		cleaned, log, artifact := Normalize(text)
		assert.Equal(t, "Summary first.", cleaned)
		assert.Equal(t, []string{"step one"}, log)
		assert.Nil(t, artifact)
	})

	t.Run("artifact shape strips the block", func(t *testing.T) {
		text := "Here:\n```json\n{\"type\": \"playbook\", \"title\": \"Plan\", \"data\": {\"sections\": []}}\n```"
		cleaned, _, artifact := Normalize(text)
		assert.Equal(t, "Here:", cleaned)
		require.NotNil(t, artifact)
		assert.Equal(t, types.ArtifactPlaybook, artifact.Kind)
	})

	t.Run("idempotent", func(t *testing.T) {
		text := "Prose.\n```json\n{\"researchLog\": [\"a\"]}\n```"
		once, _, _ := Normalize(text)
		twice, log, artifact := Normalize(once)
		assert.Equal(t, once, twice)
		assert.Nil(t, log)
		assert.Nil(t, artifact)
	})

	t.Run("unknown shape untouched", func(t *testing.T) {
		text := "```json\n{\"something\": \"else\"}\n```"
		cleaned, log, artifact := Normalize(text)
		assert.Equal(t, text, cleaned)
		assert.Nil(t, log)
		assert.Nil(t, artifact)
	})
}

func TestDedupSources(t *testing.T) {
	sources := []types.Source{
		{URI: "https://a.example", Title: "First"},
		{URI: "https://b.example", Title: "B"},
		{URI: "https://a.example", Title: "Duplicate"},
		{URI: "", Title: "No URI"},
	}
	got := DedupSources(sources)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "https://b.example", got[1].URI)

	assert.Nil(t, DedupSources(nil))
}

func TestMathDataRoundTrip(t *testing.T) {
	// The artifact's raw payload must deep-equal the embedded JSON block.
	result := Parse(types.ModeStandard, mathFence, nil)
	require.NotNil(t, result.Artifact)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal(result.Artifact.Raw, &got))
	var outer map[string]json.RawMessage
	payload, _, ok := ExtractFence(mathFence)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(payload), &outer))
	require.NoError(t, json.Unmarshal(outer["data"], &want))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("raw data mismatch (-want +got):\n%s", diff)
	}
}
