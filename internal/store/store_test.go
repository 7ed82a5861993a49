package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognos/internal/types"
)

func TestMemoryStoreBasics(t *testing.T) {
	kv := NewMemoryStore()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("a", []byte("1")))
	require.NoError(t, kv.Set("ab", []byte("2")))
	require.NoError(t, kv.Set("b", []byte("3")))

	v, ok, err := kv.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	keys, err := kv.List("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ab"}, keys)

	require.NoError(t, kv.Delete("a"))
	_, ok, err = kv.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Close())
	assert.ErrorIs(t, kv.Set("x", nil), ErrClosed)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "test.db")
	kv, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("session/1", []byte(`{"id": "1"}`)))
	require.NoError(t, kv.Set("session/2", []byte(`{"id": "2"}`)))
	require.NoError(t, kv.Set("profile", []byte(`{}`)))

	v, ok, err := kv.Get("session/1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id": "1"}`, string(v))

	// Overwrite
	require.NoError(t, kv.Set("session/1", []byte(`{"id": "1b"}`)))
	v, _, err = kv.Get("session/1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "1b"}`, string(v))

	keys, err := kv.List("session/")
	require.NoError(t, err)
	assert.Equal(t, []string{"session/1", "session/2"}, keys)

	require.NoError(t, kv.Delete("session/2"))
	keys, err = kv.List("session/")
	require.NoError(t, err)
	assert.Equal(t, []string{"session/1"}, keys)
}

func TestHistoryLifecycle(t *testing.T) {
	h := NewHistory(NewMemoryStore())

	s, err := h.Create("First chat", "gemini-2.5-flash")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)

	s.Turns = append(s.Turns, types.ConversationTurn{
		ID:   "t1",
		Role: types.RoleUser,
		Text: "look at this",
		Attachment: &types.Attachment{
			Data:     []byte{1, 2, 3},
			MimeType: "image/png",
			Name:     "shot.png",
		},
	})
	require.NoError(t, h.Save(s))

	loaded, err := h.Load(s.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Turns, 1)
	require.NotNil(t, loaded.Turns[0].Attachment)
	assert.Empty(t, loaded.Turns[0].Attachment.Data, "attachment payloads are stripped on save")
	assert.Equal(t, "shot.png", loaded.Turns[0].Attachment.Name)

	// The in-memory copy keeps its payload.
	assert.Equal(t, []byte{1, 2, 3}, s.Turns[0].Attachment.Data)

	_, err = h.Load("nope")
	assert.Error(t, err)

	s2, err := h.Create("Second chat", "gemini-2.5-flash")
	require.NoError(t, err)
	sessions, err := h.List()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	_ = s2

	require.NoError(t, h.Delete(s.ID))
	sessions, err = h.List()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
}

func TestProfilesRoundTrip(t *testing.T) {
	p := NewProfiles(NewMemoryStore())

	empty, err := p.Load()
	require.NoError(t, err)
	assert.False(t, empty.HasContent())

	profile := &types.PersonalizationProfile{
		Name:    "Ada",
		Persona: "genius",
		APIKeys: map[types.ProviderKind]string{types.ProviderOpenAI: "sk-1"},
	}
	require.NoError(t, p.Save(profile))

	loaded, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", loaded.Name)
	assert.Equal(t, "sk-1", loaded.CredentialFor(types.ProviderOpenAI))
}
