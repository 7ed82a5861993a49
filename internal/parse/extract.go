// Package parse turns raw model output into normalized agent results. The
// model's structured replies arrive as one fenced ```json block (or, on
// JSON-output calls, a bare object); everything here is tolerant of the
// model ignoring that contract and degrades to plain text instead of
// failing.
package parse

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```json\\s*\\n?(.*?)\\n?\\s*```")

// ExtractFence returns the payload of the first ```json fence in text,
// along with the full fenced block for stripping.
func ExtractFence(text string) (payload, block string, ok bool) {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[0], true
}

// ExtractJSON finds the first JSON object in text: fenced block first, then
// a bare balanced-brace object. Used where the model may answer with raw
// JSON instead of a fence.
func ExtractJSON(text string) (string, bool) {
	if payload, _, ok := ExtractFence(text); ok {
		return payload, true
	}
	return extractObject(text)
}

// extractObject scans for the first balanced top-level JSON object,
// tracking string literals and escapes so braces inside strings don't
// confuse the depth count.
func extractObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}
	}
	return "", false
}
