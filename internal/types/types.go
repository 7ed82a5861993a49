// Package types defines the shared data contracts of the Cognos agent
// subsystem: conversation turns, behavior modes, provider identities,
// personalization profiles, and the normalized result every dispatch
// converges to.
package types

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	RoleTool  Role = "tool"
)

// BehaviorMode selects which instruction block and parsing rule govern a turn.
// Exactly one mode is active per dispatch; modes are not composable.
type BehaviorMode string

const (
	ModeStandard          BehaviorMode = "standard"
	ModeCreative          BehaviorMode = "creative"
	ModeDeepResearch      BehaviorMode = "deep"
	ModeLegendaryResearch BehaviorMode = "legendary"
	ModeLiveCoPilot       BehaviorMode = "copilot"
)

// Valid reports whether m is one of the five supported modes.
func (m BehaviorMode) Valid() bool {
	switch m {
	case ModeStandard, ModeCreative, ModeDeepResearch, ModeLegendaryResearch, ModeLiveCoPilot:
		return true
	}
	return false
}

// IsResearch reports whether m is one of the research modes.
func (m BehaviorMode) IsResearch() bool {
	return m == ModeDeepResearch || m == ModeLegendaryResearch
}

// ProviderKind identifies a backend AI provider.
type ProviderKind string

const (
	ProviderGoogle    ProviderKind = "google"
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
)

// ProviderIdentity is immutable per dispatch call and selects the adapter
// and the schema view used for the call.
type ProviderIdentity struct {
	Kind    ProviderKind `json:"kind"`
	ModelID string       `json:"model_id"`
	Premium bool         `json:"premium"`
}

// Attachment is a single binary resource attached to a turn.
type Attachment struct {
	Data     []byte `json:"data"`
	MimeType string `json:"mime_type"`
	Name     string `json:"name"`
}

// Source is one attribution entry from a search-grounded call.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ToolOutcome carries the result of a capability-registry tool execution.
type ToolOutcome struct {
	Name string `json:"name"`
	Data any    `json:"data"`
}

// ConversationTurn is one exchange unit. Turns are owned by the calling
// chat-history collaborator; this subsystem only reads and produces them.
type ConversationTurn struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Text        string       `json:"text"`
	Attachment  *Attachment  `json:"attachment,omitempty"`
	Sources     []Source     `json:"sources,omitempty"`
	ToolOutcome *ToolOutcome `json:"tool_outcome,omitempty"`
	Artifact    *Artifact    `json:"artifact,omitempty"`
	ErrorText   string       `json:"error_text,omitempty"`
	ResearchLog []string     `json:"research_log,omitempty"`
	Mode        BehaviorMode `json:"mode,omitempty"`
	Persona     string       `json:"persona,omitempty"`
}

// CustomField is one user-defined key/value fact.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PersonalizationProfile carries the user-supplied personalization fields,
// the active persona, and per-provider credentials.
type PersonalizationProfile struct {
	Name         string                  `json:"name,omitempty"`
	Interests    string                  `json:"interests,omitempty"`
	About        string                  `json:"about,omitempty"`
	Persona      string                  `json:"persona,omitempty"`
	CustomFields []CustomField           `json:"custom_fields,omitempty"`
	APIKeys      map[ProviderKind]string `json:"api_keys,omitempty"`
}

// HasContent reports whether any personalization field is non-empty.
// The instruction composer appends a personalization block only when true.
func (p *PersonalizationProfile) HasContent() bool {
	if p == nil {
		return false
	}
	if p.Name != "" || p.Interests != "" || p.About != "" {
		return true
	}
	for _, f := range p.CustomFields {
		if f.Key != "" && f.Value != "" {
			return true
		}
	}
	return false
}

// CredentialFor returns the stored API key for the given provider, or "".
func (p *PersonalizationProfile) CredentialFor(kind ProviderKind) string {
	if p == nil || p.APIKeys == nil {
		return ""
	}
	return p.APIKeys[kind]
}

// AgentResult is the uniform output contract every dispatch path converges
// to. Exactly one of Text, Artifact, or ErrorText is the primary payload;
// Sources and ResearchLog are additive.
type AgentResult struct {
	Text        string       `json:"text"`
	Sources     []Source     `json:"sources,omitempty"`
	ToolOutcome *ToolOutcome `json:"tool_outcome,omitempty"`
	Artifact    *Artifact    `json:"artifact,omitempty"`
	ErrorText   string       `json:"error_text,omitempty"`
	ResearchLog []string     `json:"research_log,omitempty"`
}

// IsError reports whether the result carries an error payload.
func (r *AgentResult) IsError() bool {
	return r != nil && r.ErrorText != ""
}
