package parse

import (
	"encoding/json"
	"strings"

	"cognos/internal/logging"
	"cognos/internal/types"
)

// SearchFallbackSentinel is the exact string the model is instructed to
// emit when no tool applies and a grounded retry should be made instead.
const SearchFallbackSentinel = "FALLBACK_TO_SEARCH"

// IsSearchFallback reports whether raw model text is the search-fallback
// sentinel. All sentinel detection goes through here.
func IsSearchFallback(text string) bool {
	return strings.TrimSpace(text) == SearchFallbackSentinel
}

// User-facing texts attached to parsed results. These are stable strings
// the UI layer may match on.
const (
	MathSolvedText       = "I have solved the mathematical problem."
	InvalidCreativeText  = "The AI returned an invalid creative format. Please try rephrasing your request."
	InvalidResearchText  = "The AI returned an invalid research report format."
	DegradedResearchNote = "Conducted research but failed to generate structured report."
	emptyResearchText    = "I conducted deep research but could not formulate a report."
	defaultReportText    = "The research report is ready."
)

// envelope is the superset of all structured payload shapes the model
// emits. Which fields are meaningful depends on the mode.
type envelope struct {
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Data           json.RawMessage `json:"data"`
	ResearchLog    []string        `json:"researchLog"`
	Report         string          `json:"report"`
	CreativeOutput *struct {
		Type  string          `json:"type"`
		Title string          `json:"title"`
		Data  json.RawMessage `json:"data"`
	} `json:"creativeOutput"`
}

func (e *envelope) artifact() *types.Artifact {
	return types.DecodeArtifact(types.ArtifactKind(e.Type), e.Title, e.Data)
}

// Parse normalizes raw model text per the active mode. It never returns an
// error: malformed payloads produce a result carrying either degraded text
// or a user-facing ErrorText.
func Parse(mode types.BehaviorMode, text string, sources []types.Source) *types.AgentResult {
	switch mode {
	case types.ModeCreative:
		return parseCreative(text)
	case types.ModeDeepResearch, types.ModeLegendaryResearch:
		return parseResearch(text, sources)
	default:
		return parseStandard(text, sources)
	}
}

// parseStandard passes text through, except when the model answered a math
// query with a fenced math-solution payload.
func parseStandard(text string, sources []types.Source) *types.AgentResult {
	if payload, _, ok := ExtractFence(text); ok {
		var env envelope
		if err := json.Unmarshal([]byte(payload), &env); err == nil && env.Type == string(types.ArtifactMathSolution) {
			return &types.AgentResult{
				Text:     MathSolvedText,
				Artifact: env.artifact(),
				Sources:  DedupSources(sources),
			}
		}
		logging.ParseDebug("Fenced block in standard reply is not a math solution; passing text through")
	}
	return &types.AgentResult{Text: text, Sources: DedupSources(sources)}
}

// parseCreative requires a {type,title,data} object, fenced or bare. A
// payload that cannot be decoded yields the fixed invalid-format error
// rather than leaking raw model output.
func parseCreative(text string) *types.AgentResult {
	payload, ok := ExtractJSON(text)
	if !ok {
		logging.ParseWarn("Creative reply contained no JSON payload")
		return &types.AgentResult{ErrorText: InvalidCreativeText}
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil || env.Type == "" || len(env.Data) == 0 {
		logging.ParseWarn("Creative payload malformed: %v", err)
		return &types.AgentResult{ErrorText: InvalidCreativeText}
	}

	return &types.AgentResult{
		Text:     "I have created the following content: " + env.Title,
		Artifact: env.artifact(),
	}
}

// parseResearch expects a fenced {researchLog, report} object, optionally
// carrying a creativeOutput artifact. A fence with broken JSON is an error;
// a missing fence degrades to the raw text with a synthetic log entry.
func parseResearch(text string, sources []types.Source) *types.AgentResult {
	payload, _, ok := ExtractFence(text)
	if !ok {
		if text == "" {
			text = emptyResearchText
		}
		logging.Parse("Research reply had no structured payload; degrading to raw text")
		return &types.AgentResult{
			Text:        text,
			Sources:     DedupSources(sources),
			ResearchLog: []string{DegradedResearchNote},
		}
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		logging.ParseWarn("Research payload malformed: %v", err)
		return &types.AgentResult{ErrorText: InvalidResearchText}
	}

	result := &types.AgentResult{
		Text:        env.Report,
		Sources:     DedupSources(sources),
		ResearchLog: env.ResearchLog,
	}
	if result.Text == "" {
		result.Text = defaultReportText
	}
	if co := env.CreativeOutput; co != nil {
		result.Artifact = types.DecodeArtifact(types.ArtifactKind(co.Type), co.Title, co.Data)
	}
	return result
}

// Normalize is the defensive render-time pass for stored text that still
// carries an un-stripped fenced payload. It re-parses the three known
// shapes and strips the block from the display text; anything else is left
// untouched. Running it on its own output is a no-op.
func Normalize(text string) (cleaned string, researchLog []string, artifact *types.Artifact) {
	payload, block, ok := ExtractFence(text)
	if !ok {
		return text, nil, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return text, nil, nil
	}

	switch {
	case env.Report != "" && env.ResearchLog != nil:
		cleaned = env.Report
		researchLog = env.ResearchLog
		if co := env.CreativeOutput; co != nil {
			artifact = types.DecodeArtifact(types.ArtifactKind(co.Type), co.Title, co.Data)
		}
	case env.ResearchLog != nil:
		cleaned = strings.TrimSpace(strings.Replace(text, block, "", 1))
		researchLog = env.ResearchLog
	case env.Type != "" && env.Title != "" && len(env.Data) > 0:
		cleaned = strings.TrimSpace(strings.Replace(text, block, "", 1))
		artifact = env.artifact()
	default:
		cleaned = text
	}
	return cleaned, researchLog, artifact
}

// DedupSources removes duplicate citations by URI, keeping the first-seen
// title. Order of first appearance is preserved.
func DedupSources(sources []types.Source) []types.Source {
	if len(sources) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(sources))
	out := make([]types.Source, 0, len(sources))
	for _, s := range sources {
		if s.URI == "" {
			continue
		}
		if _, dup := seen[s.URI]; dup {
			continue
		}
		seen[s.URI] = struct{}{}
		out = append(out, s)
	}
	return out
}
