package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFence(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "plain fence",
			text:   "```json\n{\"a\": 1}\n```",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "fence inside prose",
			text:   "Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy.",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "nested braces",
			text:   "```json\n{\"outer\": {\"inner\": {\"x\": [1, 2]}}}\n```",
			want:   `{"outer": {"inner": {"x": [1, 2]}}}`,
			wantOK: true,
		},
		{
			name:   "multiple fences returns first",
			text:   "```json\n{\"first\": true}\n```\ntext\n```json\n{\"second\": true}\n```",
			want:   `{"first": true}`,
			wantOK: true,
		},
		{
			name:   "no fence",
			text:   "just some prose with {braces} in it",
			wantOK: false,
		},
		{
			name:   "unterminated fence",
			text:   "```json\n{\"a\": 1}",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, block, ok := ExtractFence(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, payload)
				assert.Contains(t, tt.text, block)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	t.Run("prefers fence", func(t *testing.T) {
		payload, ok := ExtractJSON("{\"bare\": 1}\n```json\n{\"fenced\": 1}\n```")
		assert.True(t, ok)
		assert.Equal(t, `{"fenced": 1}`, payload)
	})

	t.Run("bare object", func(t *testing.T) {
		payload, ok := ExtractJSON(`{"type": "slides", "data": {"slides": []}}`)
		assert.True(t, ok)
		assert.Equal(t, `{"type": "slides", "data": {"slides": []}}`, payload)
	})

	t.Run("braces inside strings do not close the object", func(t *testing.T) {
		payload, ok := ExtractJSON(`{"text": "a } brace and a \" quote", "n": 1}`)
		assert.True(t, ok)
		assert.Equal(t, `{"text": "a } brace and a \" quote", "n": 1}`, payload)
	})

	t.Run("no object", func(t *testing.T) {
		_, ok := ExtractJSON("no json here")
		assert.False(t, ok)
	})

	t.Run("unbalanced object", func(t *testing.T) {
		_, ok := ExtractJSON(`{"open": {`)
		assert.False(t, ok)
	})
}
