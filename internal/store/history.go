package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"cognos/internal/logging"
	"cognos/internal/types"
)

const sessionKeyPrefix = "session/"

// Session is one persisted conversation.
type Session struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	ModelID   string                   `json:"modelId"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
	Turns     []types.ConversationTurn `json:"turns"`
}

// History stores conversation sessions in a KV.
type History struct {
	kv KV
}

// NewHistory creates a history service over the given store.
func NewHistory(kv KV) *History {
	return &History{kv: kv}
}

// Create starts a new empty session.
func (h *History) Create(title, modelID string) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Title:     title,
		ModelID:   modelID,
		CreatedAt: time.Now(),
	}
	if err := h.Save(s); err != nil {
		return nil, err
	}
	logging.Store("Created session %s", s.ID)
	return s, nil
}

// Save persists a session. Attachment payloads are stripped before writing;
// only the metadata survives, which keeps sessions small.
func (h *History) Save(s *Session) error {
	s.UpdatedAt = time.Now()

	stored := *s
	stored.Turns = make([]types.ConversationTurn, len(s.Turns))
	copy(stored.Turns, s.Turns)
	for i := range stored.Turns {
		if f := stored.Turns[i].Attachment; f != nil && len(f.Data) > 0 {
			meta := *f
			meta.Data = nil
			stored.Turns[i].Attachment = &meta
		}
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", s.ID, err)
	}
	return h.kv.Set(sessionKeyPrefix+s.ID, data)
}

// Load retrieves a session by id.
func (h *History) Load(id string) (*Session, error) {
	data, ok, err := h.kv.Get(sessionKeyPrefix + id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &s, nil
}

// List returns all sessions, newest first. Sessions that fail to decode
// are skipped rather than poisoning the whole listing.
func (h *History) List() ([]*Session, error) {
	keys, err := h.kv.List(sessionKeyPrefix)
	if err != nil {
		return nil, err
	}
	sessions := make([]*Session, 0, len(keys))
	for _, key := range keys {
		data, ok, err := h.kv.Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var s Session
		if err := json.Unmarshal(data, &s); err != nil {
			logging.StoreError("Skipping undecodable session at %s: %v", key, err)
			continue
		}
		sessions = append(sessions, &s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// Delete removes a session.
func (h *History) Delete(id string) error {
	return h.kv.Delete(sessionKeyPrefix + id)
}
