package types

import "encoding/json"

// ArtifactKind tags a generated artifact. Kind strings match the wire
// values the model is instructed to emit.
type ArtifactKind string

const (
	ArtifactWebpage      ArtifactKind = "webpage"
	ArtifactComponent    ArtifactKind = "react_app"
	ArtifactMathSolution ArtifactKind = "math_solution"
	ArtifactSlides       ArtifactKind = "slides"
	ArtifactPlaybook     ArtifactKind = "playbook"
	ArtifactDiagram      ArtifactKind = "visualization"
	ArtifactImage        ArtifactKind = "image"
	ArtifactVideoScript  ArtifactKind = "video_script"
	ArtifactAudioScript  ArtifactKind = "audio_script"
	ArtifactFlashcards   ArtifactKind = "flashcards"
	ArtifactSpreadsheet  ArtifactKind = "spreadsheet"
)

// WebpagePayload carries a self-contained web page.
type WebpagePayload struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// ComponentPayload carries a renderable UI component.
type ComponentPayload struct {
	JSX string `json:"jsx"`
	CSS string `json:"css"`
}

// MathStep is one step of a worked mathematical solution.
type MathStep struct {
	Explanation string `json:"explanation"`
	Formula     string `json:"formula"`
}

// MathSolutionPayload carries a worked solution; all math fields are LaTeX.
type MathSolutionPayload struct {
	Problem string     `json:"problem"`
	Answer  string     `json:"answer"`
	Steps   []MathStep `json:"steps"`
}

// Slide is one slide of a presentation.
type Slide struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// SlidesPayload carries a slide deck.
type SlidesPayload struct {
	Slides []Slide `json:"slides"`
}

// PlaybookSection is one section of a step-by-step guide.
type PlaybookSection struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// PlaybookPayload carries a structured guide.
type PlaybookPayload struct {
	Sections []PlaybookSection `json:"sections"`
}

// DiagramPayload carries a self-contained SVG.
type DiagramPayload struct {
	SVG string `json:"svg"`
}

// ImagePayload carries a generated image as base64-encoded bytes.
type ImagePayload struct {
	Base64 string `json:"base64"`
}

// Artifact is a structured, non-text content unit produced in creative or
// research modes. It is a tagged union: Kind selects which payload pointer
// is set; Raw holds the original JSON for kinds the renderer does not know
// (and for known kinds whose payload failed strict decoding). Constructed
// once by the response parser, immutable thereafter.
type Artifact struct {
	Kind  ArtifactKind `json:"type"`
	Title string       `json:"title"`

	Webpage      *WebpagePayload      `json:"-"`
	Component    *ComponentPayload    `json:"-"`
	MathSolution *MathSolutionPayload `json:"-"`
	Slides       *SlidesPayload       `json:"-"`
	Playbook     *PlaybookPayload     `json:"-"`
	Diagram      *DiagramPayload      `json:"-"`
	Image        *ImagePayload        `json:"-"`

	Raw json.RawMessage `json:"data,omitempty"`
}

// DecodeArtifact builds an Artifact from a wire kind, title, and raw data
// payload. Known kinds decode into their typed payload; unknown kinds and
// payloads that do not match the expected shape are kept verbatim in Raw so
// rendering can still duck-type them. Never fails.
func DecodeArtifact(kind ArtifactKind, title string, data json.RawMessage) *Artifact {
	a := &Artifact{Kind: kind, Title: title, Raw: data}
	if len(data) == 0 {
		return a
	}
	switch kind {
	case ArtifactWebpage:
		var p WebpagePayload
		if json.Unmarshal(data, &p) == nil {
			a.Webpage = &p
		}
	case ArtifactComponent:
		var p ComponentPayload
		if json.Unmarshal(data, &p) == nil {
			a.Component = &p
		}
	case ArtifactMathSolution:
		var p MathSolutionPayload
		if json.Unmarshal(data, &p) == nil {
			a.MathSolution = &p
		}
	case ArtifactSlides:
		var p SlidesPayload
		if json.Unmarshal(data, &p) == nil {
			a.Slides = &p
		}
	case ArtifactPlaybook:
		var p PlaybookPayload
		if json.Unmarshal(data, &p) == nil {
			a.Playbook = &p
		}
	case ArtifactDiagram:
		var p DiagramPayload
		if json.Unmarshal(data, &p) == nil {
			a.Diagram = &p
		}
	case ArtifactImage:
		var p ImagePayload
		if json.Unmarshal(data, &p) == nil {
			a.Image = &p
		}
	}
	return a
}
